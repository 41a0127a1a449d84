/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of this module.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The most common use is scanning sentences of a grammar. ForGrammar builds a
DFA matching the terminals of a grammar literally:

	LM, err := lexmach.ForGrammar(g)
	if err != nil {
		// do error handling
	}
	scan, err := LM.Scanner("id+id * id")
	if err != nil {
		// do error handling
	}
	accepted, err := parser.Parse(scan)

Clients who need more liberty in how to create the scanner may initialize
lexmachine themselves, by providing literals and regular expressions:

	var literals []string       // The tokens representing literal strings
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   gramlab.Token
	}

	LM, err := NewLMAdapter(init, literals, tokenIds)

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
