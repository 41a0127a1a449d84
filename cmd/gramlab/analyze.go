package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/gramlab/analysis"
	"github.com/npillmayer/gramlab/lr"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	inputs *[]string
	json   *bool
	dot    *string
	html   *string
	trace  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze <grammar file path>...",
		Short:   "Print FIRST/FOLLOW sets and parse tables of grammars",
		Example: `  gramlab analyze expr.txt -i "id + id * id"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.inputs = cmd.Flags().StringArrayP("input", "i", nil, "input text to check (repeatable)")
	analyzeFlags.json = cmd.Flags().Bool("json", false, "print the report as JSON")
	analyzeFlags.dot = cmd.Flags().String("dot", "", "write the SLR(1) automaton in GraphViz format to a file")
	analyzeFlags.html = cmd.Flags().String("html", "", "write the SLR(1) tables as HTML to a file")
	analyzeFlags.trace = cmd.Flags().Bool("trace", false, "print parser steps for inputs")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) > 1 && (*analyzeFlags.dot != "" || *analyzeFlags.html != "") {
		return fmt.Errorf("--dot and --html need a single grammar")
	}
	sources := make([]analysis.Source, 0, len(args))
	for _, path := range args {
		src, err := readSource(path)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}
	reports, err := analysis.AnalyzeAll(cmd.Context(), sources)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, r := range reports {
		var verdicts []*analysis.Verdict
		for _, input := range *analyzeFlags.inputs {
			v, err := r.CheckText(input, analysis.WithTraces(*analyzeFlags.trace))
			if err != nil {
				return err
			}
			verdicts = append(verdicts, v)
		}
		if *analyzeFlags.json {
			data, err := r.Export(verdicts...).JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(data))
			continue
		}
		renderReport(w, r)
		for _, v := range verdicts {
			renderVerdict(w, v)
		}
	}
	if *analyzeFlags.dot != "" {
		if err := writeFile(*analyzeFlags.dot, reports[0], writeDot); err != nil {
			return err
		}
	}
	if *analyzeFlags.html != "" {
		if err := writeFile(*analyzeFlags.html, reports[0], writeHTML); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, r *analysis.Report, write func(*os.File, *analysis.Report) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f, r); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	tracer().Infof("wrote %s", path)
	return nil
}

func writeDot(f *os.File, r *analysis.Report) error {
	return r.SLR1Tables().CFSM().ToGraphViz(f)
}

func writeHTML(f *os.File, r *analysis.Report) error {
	if err := lr.ActionTableAsHTML(r.SLR1Tables(), f); err != nil {
		return err
	}
	return lr.GotoTableAsHTML(r.SLR1Tables(), f)
}
