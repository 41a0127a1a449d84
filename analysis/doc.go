/*
Package analysis runs the complete analysis pipeline for a grammar.

A grammar is subjected to FIRST/FOLLOW analysis, then LL(1) table construction
and SLR(1) table construction are attempted. A conflict during table
construction is not an error: it is a finding about the grammar, reported by
IsLL1 and IsSLR1 and by the conflict diagnostics of the report. Only an
invalid grammar stops an analysis.

    report, err := analysis.AnalyzeText("Expr", text)
    if err != nil {
        ...  // invalid notation or grammar
    }
    fmt.Printf("LL(1): %v, SLR(1): %v\n", report.IsLL1(), report.IsSLR1())
    verdict := report.Check([]string{"id", "+", "id"})

Reports are immutable and may be shared between goroutines. AnalyzeAll
analyses a batch of grammars in parallel.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package analysis

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramlab.analysis'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.analysis")
}
