/*
Package grammar implements the grammar model for context-free grammars.

Building a Grammar

Grammars are created either from an ordered list of definitions, or by using a
grammar builder object. Clients add rules, consisting of non-terminal symbols
and terminals. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T("a").End()     // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  b
    b.LHS("B").Epsilon()               // B  ->
    b.LHS("D").T("d").End()            // D  ->  d
    b.LHS("D").Epsilon()               // D  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S -> A a
   1: A -> B D
   2: B -> b
   3: B -> ε
   4: D -> d
   5: D -> ε

The first non-terminal defined is the start symbol. Terminals are never
declared explicitly, but inferred: every symbol occuring on a right-hand side
which does not have productions of its own is a terminal. Every grammar
additionally owns the end marker terminal "$".

Grammars are immutable once created. All the analysis packages of this module
only read them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramlab.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.grammar")
}
