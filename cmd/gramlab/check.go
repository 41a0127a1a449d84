package main

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/gramlab/analysis"
	"github.com/spf13/cobra"
)

var checkFlags = struct {
	symbols *bool
	json    *bool
	trace   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "check <grammar file path> <input>...",
		Short: "Check input sentences with the LL(1) and SLR(1) parsers of a grammar",
		Example: `  gramlab check expr.txt "id+id" "id*(id"
  gramlab check --symbols expr.txt "id + id"`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCheck,
	}
	checkFlags.symbols = cmd.Flags().Bool("symbols", false, "inputs are blank separated terminal names")
	checkFlags.json = cmd.Flags().Bool("json", false, "print verdicts as JSON")
	checkFlags.trace = cmd.Flags().Bool("trace", false, "print parser steps")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	r, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	verdicts := make([]*analysis.Verdict, 0, len(args)-1)
	for _, input := range args[1:] {
		v, err := checkInput(r, input, *checkFlags.symbols, *checkFlags.trace)
		if err != nil {
			return err
		}
		verdicts = append(verdicts, v)
	}
	w := cmd.OutOrStdout()
	if *checkFlags.json {
		data, err := json.MarshalIndent(verdicts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	rejected := 0
	for _, v := range verdicts {
		if !renderVerdict(w, v) {
			rejected++
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d inputs rejected", rejected, len(verdicts))
	}
	return nil
}

func checkInput(r *analysis.Report, input string, symbols, trace bool) (*analysis.Verdict, error) {
	if symbols {
		return r.CheckFields(input, analysis.WithTraces(trace)), nil
	}
	return r.CheckText(input, analysis.WithTraces(trace))
}
