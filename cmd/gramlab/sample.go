package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gramlab/grammar"
	"github.com/spf13/cobra"
)

var sampleFlags = struct {
	count  *int
	maxLen *int
	check  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "sample <grammar file path>",
		Short: "Print sentences of the language of a grammar",
		Long: `sample enumerates sentences of a grammar by leftmost derivation,
shortest first. With --check every sentence is fed to the parsers of the
grammar, which have to accept it.`,
		Args: cobra.ExactArgs(1),
		RunE: runSample,
	}
	sampleFlags.count = cmd.Flags().IntP("count", "n", 10, "maximum number of sentences")
	sampleFlags.maxLen = cmd.Flags().IntP("max-len", "l", 8, "maximum number of terminals per sentence")
	sampleFlags.check = cmd.Flags().Bool("check", false, "run the parsers on every sentence")
	rootCmd.AddCommand(cmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	r, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	sentences := grammar.Sentences(r.Grammar(), *sampleFlags.maxLen, *sampleFlags.count)
	rejected := 0
	for _, s := range sentences {
		if !*sampleFlags.check {
			fmt.Fprintln(w, strings.Join(s, " "))
			continue
		}
		if !renderVerdict(w, r.Check(s)) {
			rejected++
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d sentences rejected", rejected, len(sentences))
	}
	return nil
}
