/*
Package slr provides an SLR(1)-parser. Clients have to use the tools
of package lr to prepare the necessary parse tables. The SLR parser
utilizes these tables to recognize a given input, provided through a
scanner interface.

This parser is intended for small to moderate grammars, e.g. for studying
grammars, for configuration input or small domain-specific languages.

Package slr can only handle SLR(1) grammars. All SLR-grammars are deterministic
(but not vice versa).

Usage

Clients construct a grammar, usually by using a grammar builder or the
notation reader:

	b := grammar.NewBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("a").End()  // Var  --> Sign a
	b.LHS("Sign").T("+").End()           // Sign --> +
	b.LHS("Sign").T("-").End()           // Sign --> -
	b.LHS("Sign").Epsilon()              // Sign -->
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	ga := lr.Analysis(g)
	lrgen := lr.NewTableGenerator(ga)
	if err := lrgen.CreateTables(); err != nil { ... }  // cannot use an SLR parser

Finally parse some input:

	p := slr.NewParser(g, lrgen.GotoTable(), lrgen.ActionTable())
	accepted, err := p.Parse(scanner.Symbols(g, "+", "a"))

If the input is rejected, err is a *gramlab.SyntaxError describing the
offending token.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr"
	"github.com/npillmayer/gramlab/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramlab.lr'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.lr")
}

// ErrNotInitialized is returned by Parse if the parser has no tables.
var ErrNotInitialized = errors.New("SLR(1)-parser not initialized")

// Parser is an SLR(1)-parser type. Create and initialize one with slr.NewParser(...).
// The tables of a parser are never modified, but a parser holds the trace of
// its last run and therefore must not be shared between goroutines.
type Parser struct {
	G       *grammar.Grammar
	gotoT   *lr.GotoTable   // GOTO table
	actionT *lr.ActionTable // ACTION table
	record  bool            // record a trace of parser steps
	trace   []gramlab.Step
}

// We store pairs of state-IDs and symbols on the parse stack.
type stackitem struct {
	stateID int             // ID of a CFSM state
	sym     *grammar.Symbol // grammar symbol (terminal or non-terminal), nil for the start state
	span    gramlab.Span    // input span over which this symbol reaches
}

// Option configures a parser.
type Option func(p *Parser)

// RecordTrace sets or clears recording of parser steps. See Trace.
func RecordTrace(b bool) Option {
	return func(p *Parser) {
		p.record = b
	}
}

// NewParser creates an SLR(1) parser.
func NewParser(g *grammar.Grammar, gotoTable *lr.GotoTable, actionTable *lr.ActionTable, opts ...Option) *Parser {
	parser := &Parser{
		G:       g,
		gotoT:   gotoTable,
		actionT: actionTable,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Trace returns the steps of the last parse, if recording is switched on.
func (p *Parser) Trace() []gramlab.Step {
	return p.trace
}

// Accepts is a shortcut for parsing a sequence of terminal names. A missing
// end marker is appended. Unknown names are rejected.
func (p *Parser) Accepts(symbols ...string) bool {
	scan := scanner.Symbols(p.G, symbols...)
	scan.SetErrorHandler(func(e error) { tracer().Debugf("%v", e) })
	accepted, _ := p.Parse(scan)
	return accepted
}

// Parse starts a new parse, given a scanner tokenizing the input. Parsing
// starts in state 0 of the CFSM.
// The parser must have been initialized.
//
// The parser returns true if the input string has been accepted. If the input
// is rejected, Parse returns false and a *gramlab.SyntaxError.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	p.trace = nil
	if p.G == nil || p.gotoT == nil || p.actionT == nil {
		tracer().Errorf("SLR(1)-parser not initialized")
		return false, ErrNotInitialized
	}
	tokens := scanner.Drain(p.G, scan)
	stack := make([]stackitem, 0, 64)
	stack = append(stack, stackitem{stateID: 0}) // push S0
	// http://www.cse.unt.edu/~sweany/CSCE3650/HANDOUTS/LRParseAlg.pdf
	pos := 0
	for {
		token := tokens[pos]
		la := p.terminal(token)
		state := stack[len(stack)-1] // TOS
		action := p.actionT.Action(state.stateID, la)
		tracer().Debugf("action(%d,%q) = %v", state.stateID, token.Lexeme(), action)
		if p.record {
			p.trace = append(p.trace, gramlab.Step{
				Stack:  stackNames(stack),
				Input:  inputNames(tokens[pos:]),
				Action: action.String(),
			})
		}
		switch action.Kind() {
		case lr.NoAction:
			return false, p.syntaxError(pos, token, state.stateID)
		case lr.AcceptAction:
			return true, nil
		case lr.ShiftAction:
			stack = append(stack, // push a terminal state onto stack
				stackitem{stateID: action.State(), sym: la, span: token.Span()})
			pos++
		case lr.ReduceAction:
			var err error
			if stack, err = p.reduce(stack, action.Production(), token); err != nil {
				return false, err
			}
		}
	}
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn should be represented on the stack as states
//
//    [TOS]  Sn(Xn, span_n) ... S1(X1, span1)  ...
//
func (p *Parser) reduce(stack []stackitem, rule *grammar.Production, la gramlab.Token) ([]stackitem, error) {
	tracer().Debugf("reduce %v", rule)
	var handlespan gramlab.Span
	for k := rule.Len() - 1; k >= 0; k-- {
		tos := stack[len(stack)-1]
		if tos.sym != rule.At(k) {
			tracer().Errorf("Expected %v on top of stack, got %v", rule.At(k), tos.sym)
		}
		if handlespan.IsNull() {
			handlespan = tos.span
		} else {
			handlespan = gramlab.Span{tos.span.From(), handlespan.To()}
		}
		stack = stack[:len(stack)-1] // pop TOS
	}
	if rule.IsEpsilon() { // epsilon was just before lookahead
		pos := la.Span().From()
		handlespan = gramlab.Span{pos, pos}
	}
	state := stack[len(stack)-1] // TOS
	nextstate, ok := p.gotoT.Goto(state.stateID, rule.LHS)
	if !ok {
		return stack, fmt.Errorf("SLR(1) tables corrupt: no GOTO(%d,%s)", state.stateID, rule.LHS)
	}
	tracer().Debugf("reduced to next state = %d", nextstate)
	return append(stack, // push a non-terminal state onto stack
		stackitem{stateID: nextstate, sym: rule.LHS, span: handlespan}), nil
}

// --- Helpers ----------------------------------------------------------

// terminal returns the terminal for a token, or nil for illegal tokens.
func (p *Parser) terminal(token gramlab.Token) *grammar.Symbol {
	if token.TokType() == gramlab.IllegalTokType {
		return nil
	}
	A := p.G.Symbol(int(token.TokType()))
	if A == nil || !A.IsTerminal() {
		return nil
	}
	return A
}

func (p *Parser) syntaxError(pos int, token gramlab.Token, stateID int) *gramlab.SyntaxError {
	expected := p.actionT.Expected(stateID)
	names := make([]string, len(expected))
	for i, A := range expected {
		names[i] = A.Name
	}
	msg := "unexpected token"
	if p.terminal(token) == nil {
		msg = "not a terminal of grammar " + p.G.Name
	} else if token.TokType() == gramlab.TokType(p.G.EOF().ID) {
		msg = "unexpected end of input"
	}
	return &gramlab.SyntaxError{Position: pos, Token: token.Lexeme(), Expected: names,
		Span: token.Span(), Msg: msg}
}

func stackNames(stack []stackitem) []string {
	names := make([]string, 0, 2*len(stack))
	for _, item := range stack {
		if item.sym != nil {
			names = append(names, item.sym.Name)
		}
		names = append(names, strconv.Itoa(item.stateID))
	}
	return names
}

func inputNames(tokens []gramlab.Token) []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Lexeme()
	}
	return names
}
