/*
Package scanner defines an interface for scanners to be used with the parsers
of this module.

Parsers consume tokens whose type is the ID of a terminal symbol of the
grammar. Input ends with the first token for the end marker; scanners produce
it, repeatedly, once the input is exhausted, so clients may omit the end
marker. Input not matching any terminal is delivered as a token of type
gramlab.IllegalTokType, for which no parser table has an entry.

Two scanner implementations are provided: (1) a tokenizer over pre-split
symbol names, and (2) an adapter for lexmachine, living in sub-package
`lexmach`, which scans raw text for the terminals of a grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramlab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() gramlab.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Symbol tokenizer ------------------------------------------------------

// SymbolTokenizer delivers a sequence of symbol names as tokens. Create one
// with Symbols or Fields.
type SymbolTokenizer struct {
	g     *grammar.Grammar
	names []string
	pos   int
	Error func(error) // error handler
}

var _ Tokenizer = (*SymbolTokenizer)(nil)

// Symbols creates a tokenizer for a sequence of terminal names of grammar g.
// Names which are not terminals of g are reported to the error handler and
// delivered as illegal tokens.
func Symbols(g *grammar.Grammar, names ...string) *SymbolTokenizer {
	return &SymbolTokenizer{
		g:     g,
		names: names,
		Error: logError,
	}
}

// Fields creates a tokenizer for input consisting of terminal names separated
// by white space.
func Fields(g *grammar.Grammar, input string) *SymbolTokenizer {
	return Symbols(g, strings.Fields(input)...)
}

// SetErrorHandler sets an error handler for the scanner.
func (st *SymbolTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		st.Error = logError
		return
	}
	st.Error = h
}

// NextToken is part of the Tokenizer interface.
func (st *SymbolTokenizer) NextToken() gramlab.Token {
	if st.pos >= len(st.names) {
		return EOFToken(st.g, uint64(len(st.names)))
	}
	name := st.names[st.pos]
	span := gramlab.Span{uint64(st.pos), uint64(st.pos + 1)}
	st.pos++
	A := st.g.SymbolByName(name)
	if A == nil || !A.IsTerminal() {
		st.Error(fmt.Errorf("%q at position %d is not a terminal of grammar %s", name, span.From(), st.g.Name))
		return MakeDefaultToken(gramlab.IllegalTokType, name, span)
	}
	if A.IsEOF() {
		st.pos = len(st.names)
	}
	return MakeDefaultToken(gramlab.TokType(A.ID), name, span)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// symbol tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   gramlab.TokType
	lexeme string
	Val    interface{}
	span   gramlab.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ gramlab.TokType, lexeme string, span gramlab.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// EOFToken creates the token for the end marker of grammar g, at position pos.
func EOFToken(g *grammar.Grammar, pos uint64) DefaultToken {
	return MakeDefaultToken(gramlab.TokType(g.EOF().ID), gramlab.EndMarker, gramlab.Span{pos, pos})
}

func (t DefaultToken) TokType() gramlab.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() gramlab.Span {
	return t.span
}

// ---------------------------------------------------------------------------

// Drain reads tokens from a tokenizer up to and including the first token for
// the end marker of grammar g.
func Drain(g *grammar.Grammar, scan Tokenizer) []gramlab.Token {
	eof := gramlab.TokType(g.EOF().ID)
	var tokens []gramlab.Token
	for {
		tok := scan.NextToken()
		tokens = append(tokens, tok)
		if tok.TokType() == eof {
			return tokens
		}
	}
}
