package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/gramlab/analysis"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	traceLevel *string
}{}

var rootCmd = &cobra.Command{
	Use:   "gramlab",
	Short: "Analyse grammars for LL(1) and SLR(1) parsability",
	Long: `gramlab computes FIRST and FOLLOW sets of a context-free grammar,
builds LL(1) and SLR(1) parse tables and checks input sentences with
table driven parsers.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.traceLevel = rootCmd.PersistentFlags().String("trace-level", "Error",
		"trace level [Debug|Info|Error]")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.TraceLevelFromString(*rootFlags.traceLevel)
	tracer().SetTraceLevel(level) // all keys share one tracer
	tracer().Infof("Trace level is %s", level)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// readSource reads a grammar file. The grammar is named after the file.
func readSource(path string) (analysis.Source, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return analysis.Source{}, fmt.Errorf("cannot read grammar file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return analysis.Source{Name: name, Text: string(text)}, nil
}

func readGrammar(path string) (*analysis.Report, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return analysis.AnalyzeText(src.Name, src.Text)
}
