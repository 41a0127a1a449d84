package ll

import (
	"errors"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr/scanner"
)

// ErrNotInitialized is returned by Parse if the parser has no table.
var ErrNotInitialized = errors.New("LL(1)-parser not initialized")

// Parser is a predictive LL(1) parser. Create one with NewParser.
// The table of a parser is never modified, but a parser holds the trace of
// its last run and therefore must not be shared between goroutines.
type Parser struct {
	table  *Table
	record bool
	trace  []gramlab.Step
}

// Option configures a parser.
type Option func(p *Parser)

// RecordTrace sets or clears recording of parser steps. See Trace.
func RecordTrace(b bool) Option {
	return func(p *Parser) {
		p.record = b
	}
}

// NewParser creates a predictive parser for a prediction table.
func NewParser(table *Table, opts ...Option) *Parser {
	p := &Parser{table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Trace returns the steps of the last parse, if recording is switched on.
func (p *Parser) Trace() []gramlab.Step {
	return p.trace
}

// Accepts is a shortcut for parsing a sequence of terminal names. A missing
// end marker is appended. Unknown names are rejected.
func (p *Parser) Accepts(symbols ...string) bool {
	if p.table == nil {
		return false
	}
	scan := scanner.Symbols(p.table.g, symbols...)
	scan.SetErrorHandler(func(e error) { tracer().Debugf("%v", e) })
	accepted, _ := p.Parse(scan)
	return accepted
}

// Parse recognizes the input delivered by a scanner. It returns true if the
// input is a sentence of the grammar. If the input is rejected, Parse
// returns false and a *gramlab.SyntaxError.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	p.trace = nil
	if p.table == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return false, ErrNotInitialized
	}
	g := p.table.g
	tokens := scanner.Drain(g, scan)
	stack := []*grammar.Symbol{g.EOF(), g.Start()}
	pos := 0
	for {
		token := tokens[pos]
		a := p.terminal(token)
		X := stack[len(stack)-1] // TOS
		var (
			action string
			expand *grammar.Production
			serr   *gramlab.SyntaxError
		)
		switch {
		case X.IsEOF():
			if a != X {
				serr = p.syntaxError(pos, token, []*grammar.Symbol{X}, "expected end of input")
			} else {
				action = "accept"
			}
		case X.IsTerminal():
			if a != X {
				serr = p.syntaxError(pos, token, []*grammar.Symbol{X}, "unexpected token")
			} else {
				action = "match " + X.Name
			}
		default:
			var ok bool
			if expand, ok = p.table.Lookup(X, a); ok {
				action = expand.String()
			} else {
				serr = p.syntaxError(pos, token, p.table.Expected(X), "no prediction for "+X.Name)
			}
		}
		if serr != nil {
			action = "error"
		}
		tracer().Debugf("%s: %s", X, action)
		if p.record {
			p.trace = append(p.trace, gramlab.Step{
				Stack:  stackNames(stack),
				Input:  inputNames(tokens[pos:]),
				Action: action,
			})
		}
		switch {
		case serr != nil:
			return false, serr
		case X.IsEOF():
			return true, nil
		case X.IsTerminal():
			stack = stack[:len(stack)-1]
			pos++
		default:
			stack = stack[:len(stack)-1]
			for k := expand.Len() - 1; k >= 0; k-- {
				stack = append(stack, expand.At(k))
			}
		}
	}
}

// terminal returns the terminal for a token, or nil for illegal tokens.
func (p *Parser) terminal(token gramlab.Token) *grammar.Symbol {
	if token.TokType() == gramlab.IllegalTokType {
		return nil
	}
	A := p.table.g.Symbol(int(token.TokType()))
	if A == nil || !A.IsTerminal() {
		return nil
	}
	return A
}

func (p *Parser) syntaxError(pos int, token gramlab.Token, expected []*grammar.Symbol, msg string) *gramlab.SyntaxError {
	names := make([]string, len(expected))
	for i, A := range expected {
		names[i] = A.Name
	}
	if p.terminal(token) == nil {
		msg = "not a terminal of grammar " + p.table.g.Name
	}
	return &gramlab.SyntaxError{Position: pos, Token: token.Lexeme(), Expected: names,
		Span: token.Span(), Msg: msg}
}

func stackNames(stack []*grammar.Symbol) []string {
	names := make([]string, len(stack))
	for i, A := range stack {
		names[i] = A.Name
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
