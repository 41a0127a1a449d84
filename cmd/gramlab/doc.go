/*
Command gramlab analyses context-free grammars for LL(1) and SLR(1)
parsability and checks input sentences against them.

Grammars are read from text files in a simple notation, one non-terminal
per line:

	E  -> T E'
	E' -> + T E' | ε
	T  -> F T'
	T' -> * F T' | ε
	F  -> ( E ) | id

Subcommands print FIRST and FOLLOW sets, the LL(1) prediction table, the
SLR(1) ACTION and GOTO tables, and the verdicts of both parsers for input
sentences. "gramlab repl" starts an interactive session for a grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramlab.cmd'
func tracer() tracing.Trace {
	return tracing.Select("gramlab.cmd")
}
