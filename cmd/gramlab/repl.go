package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gramlab/analysis"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	init *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Check input sentences interactively",
		Long: `repl starts an interactive session for a grammar. Every line is
checked as input text, unless it is one of these commands:

  :grammar   print the productions
  :sets      print FIRST and FOLLOW sets
  :ll        print the LL(1) table
  :slr       print the SLR(1) tables
  :symbols   toggle reading lines as blank separated terminal names
  :trace     toggle printing of parser steps
  :quit      end the session (as does <ctrl>D)`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	replFlags.init = cmd.Flags().String("init", "", "file with lines to check before going interactive")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	r, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	r.Grammar().Dump() // only visible in debug mode
	repl, err := readline.New(r.Grammar().Name + "> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{report: r, repl: repl}
	pterm.Info.Println("Welcome to gramlab")
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*replFlags.init)
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	report  *analysis.Report
	repl    *readline.Instance
	symbols bool // lines are terminal names, not text
	trace   bool
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			intp.Eval(line)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or checks a line of input. It returns true if the
// session should end.
func (intp *Intp) Eval(line string) bool {
	w := os.Stdout
	x := intp.report.Export()
	switch line {
	case ":quit", ":q":
		return true
	case ":grammar":
		renderGrammar(w, x)
	case ":sets":
		renderSets(w, intp.report, x)
	case ":ll":
		renderLL1(w, x)
	case ":slr":
		renderSLR1(w, x)
	case ":symbols":
		intp.symbols = !intp.symbols
		pterm.Info.Printfln("reading terminal names: %v", intp.symbols)
	case ":trace":
		intp.trace = !intp.trace
		pterm.Info.Printfln("printing parser steps: %v", intp.trace)
	default:
		if strings.HasPrefix(line, ":") {
			pterm.Error.Printfln("unknown command %s", line)
			break
		}
		v, err := checkInput(intp.report, line, intp.symbols, intp.trace)
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		renderVerdict(w, v)
	}
	return false
}
