/*
Package gramlab is a toolbox for analysing context-free grammars.

GramLab decides whether a grammar can be parsed deterministically by a
predictive top-down parser (LL(1)) and by a shift-reduce bottom-up parser
(SLR(1)), builds the tables for the methods which are feasible and runs
table-driven parsers over input sentences. Package structure is
as follows:

■ grammar: Package grammar implements the immutable grammar model, a builder
and a reader for a textual grammar notation (sub-package notation).

■ lr: Package lr implements FIRST/FOLLOW analysis, the LR(0) automaton (CFSM)
and SLR(1) tables. The SLR(1) parser lives in sub-package slr.

■ ll: Package ll implements LL(1) table construction and the predictive parser.

■ analysis: Package analysis ties everything together, reporting feasibility of
both methods for a grammar.

■ cmd/gramlab: A command line tool and REPL on top of package analysis.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gramlab
