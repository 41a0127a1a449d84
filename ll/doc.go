/*
Package ll implements LL(1) prediction tables and a table-driven predictive
parser.

The prediction table of a grammar maps pairs (non-terminal, lookahead) to the
production to expand. It is built from FIRST and FOLLOW sets, as computed by
package lr:

    ga := lr.Analysis(g)
    table, err := ll.BuildTable(ga)
    if err != nil {
        var c *ll.Conflict
        if errors.As(err, &c) {
            fmt.Printf("not LL(1): %v\n", c)
        }
    }

A grammar is LL(1) if no cell of the table receives two different productions.
Left-recursive grammars are never LL(1). Entering the same production twice
into a cell is not a conflict.

Using the table, a predictive parser recognizes input sentences:

    p := ll.NewParser(table)
    accepted, err := p.Parse(scanner.Fields(g, "id + id * id"))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramlab.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.ll")
}
