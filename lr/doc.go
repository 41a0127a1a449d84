/*
Package lr implements prerequisites for LR parsing and SLR(1) table construction.

Static Grammar Analysis

After a grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST and
FOLLOW sets for the grammar and determines all epsilon-derivable non-terminals.

Although FIRST and FOLLOW-sets are mainly intended to be used for internal
purposes of constructing the parser tables, methods for getting FIRST(N)
and FOLLOW(N) of non-terminals are defined to be public.

    ga := lr.Analysis(g)  // analyser for grammar g
    for _, N := range g.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))   // get FIRST-set for N
    }

    // Output:
    FIRST(S) = { a b d }
    FIRST(A) = { b d ε }
    FIRST(B) = { b ε }
    FIRST(D) = { d ε }

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar. The CFSM will then be transformed into a GOTO table (LR(0)-table)
and an ACTION table for a SLR(1) parser. The CFSM will not be thrown away,
but is made available to the client.  This is intended
for debugging purposes, but may be useful for error recovery, too.
It can be exported to Graphviz's Dot-format.

Example:

    lrgen := lr.NewTableGenerator(ga)  // ga is an LRAnalysis, see above
    if err := lrgen.CreateTables(); err != nil {
        var c *lr.Conflict
        if errors.As(err, &c) {
            fmt.Printf("not SLR(1): %v\n", c)
        }
    }

Table construction either succeeds completely or reports the first conflict
found. In the latter case no tables are available.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramlab.lr'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.lr")
}
