/*
Package notation reads grammars in a small textual notation.

Every non-empty line holds the alternatives of one non-terminal:

    # expression grammar
    E  -> T E'
    E' -> + T E' | ε
    T  -> F T'
    T' -> * F T' | e
    F  -> ( E ) | id

Symbols are separated by blanks; '|' and '-' are self-delimiting. An
alternative consisting of 'ε' or 'e' alone denotes the empty word. The word
"epsilon" is not accepted as a synonym. Text following '#' is a comment.
The left-hand side of the first line is the start symbol. Lines with the same
left-hand side are merged.

Symbols which appear on a left-hand side are non-terminals, all other symbols
are terminals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gramlab.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.grammar")
}

// Error is an error of the grammar notation, located at a line.
type Error struct {
	Line int // 1-based
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Token types of the notation
const (
	tokSymbol int = iota + 1
	tokArrow
	tokBar
	tokNewline
)

var (
	lexer     *lexmachine.Lexer
	lexerErr  error
	lexerOnce sync.Once
)

func token(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// notationLexer returns the lexer for the notation, compiling it on first use.
func notationLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte("#[^\n]*"), skip)
		lx.Add([]byte("( |\t|\r)+"), skip)
		lx.Add([]byte("\n"), token(tokNewline))
		lx.Add([]byte(`\-\>`), token(tokArrow))
		lx.Add([]byte(`\|`), token(tokBar))
		lx.Add([]byte(`\-`), token(tokSymbol))
		lx.Add([]byte("[^ \t\r\n#\\|\\-]+"), token(tokSymbol))
		if lexerErr = lx.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile notation lexer: %v", lexerErr)
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

type lexeme struct {
	typ  int
	text string
}

// tokenize splits a text into lines of tokens.
func tokenize(text string) ([][]lexeme, error) {
	lx, err := notationLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	lines := [][]lexeme{nil}
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, &Error{Line: len(lines), Msg: err.Error()}
		}
		t := tok.(*lexmachine.Token)
		if t.Type == tokNewline {
			lines = append(lines, nil)
			continue
		}
		n := len(lines) - 1
		lines[n] = append(lines[n], lexeme{typ: t.Type, text: string(t.Lexeme)})
	}
	return lines, nil
}

func isEpsilon(name string) bool {
	return name == gramlab.Epsilon || name == "e"
}

// Read parses a grammar in notation format into an ordered list of
// definitions, suitable for grammar.NewGrammar. Malformed lines and
// duplicate alternatives of a non-terminal are reported as *Error.
func Read(text string) ([]grammar.Definition, error) {
	lines, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	var defs []grammar.Definition
	seen := make(map[string]map[string]bool)
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		lineno := i + 1
		def, err := readLine(line, lineno)
		if err != nil {
			return nil, err
		}
		if seen[def.LHS] == nil {
			seen[def.LHS] = make(map[string]bool)
		}
		for _, alt := range def.Alternatives {
			key := strings.Join(alt, " ")
			if seen[def.LHS][key] {
				return nil, &Error{Line: lineno,
					Msg: fmt.Sprintf("duplicate alternative %s -> %s", def.LHS, altString(alt))}
			}
			seen[def.LHS][key] = true
		}
		defs = append(defs, def)
	}
	tracer().Debugf("read %d definitions", len(defs))
	return defs, nil
}

func readLine(line []lexeme, lineno int) (grammar.Definition, error) {
	def := grammar.Definition{}
	fail := func(format string, args ...interface{}) (grammar.Definition, error) {
		return def, &Error{Line: lineno, Msg: fmt.Sprintf(format, args...)}
	}
	if len(line) < 2 || line[0].typ != tokSymbol || line[1].typ != tokArrow {
		if len(line) > 1 && line[0].typ == tokSymbol && line[1].typ == tokSymbol {
			return fail("left-hand side must be a single symbol")
		}
		return fail("expected 'LHS -> alternatives'")
	}
	def.LHS = line[0].text
	if err := checkSymbol(def.LHS); err != "" {
		return fail("invalid left-hand side: %s", err)
	}
	var alt []string
	epsilon := false
	endAlternative := func() error {
		switch {
		case epsilon && len(alt) > 0:
			return &Error{Line: lineno, Msg: "epsilon must stand alone in an alternative"}
		case !epsilon && len(alt) == 0:
			return &Error{Line: lineno, Msg: "empty alternative, use ε for the empty word"}
		}
		def.Alternatives = append(def.Alternatives, alt)
		alt, epsilon = []string{}, false
		return nil
	}
	alt = []string{}
	for _, lx := range line[2:] {
		switch lx.typ {
		case tokArrow:
			return fail("unexpected '->'")
		case tokBar:
			if err := endAlternative(); err != nil {
				return def, err
			}
		default:
			if isEpsilon(lx.text) {
				if epsilon {
					return fail("epsilon must stand alone in an alternative")
				}
				epsilon = true
				continue
			}
			if err := checkSymbol(lx.text); err != "" {
				return fail("%s", err)
			}
			alt = append(alt, lx.text)
		}
	}
	if err := endAlternative(); err != nil {
		return def, err
	}
	return def, nil
}

// checkSymbol returns a message for names which may not be used as symbols.
func checkSymbol(name string) string {
	switch {
	case strings.EqualFold(name, "epsilon"):
		return fmt.Sprintf("%q is not a symbol, use ε or e for the empty word", name)
	case isEpsilon(name):
		return "epsilon is not a symbol"
	case name == gramlab.EndMarker:
		return fmt.Sprintf("%q is reserved for the end marker", name)
	}
	return ""
}

func altString(alt []string) string {
	if len(alt) == 0 {
		return gramlab.Epsilon
	}
	return strings.Join(alt, " ")
}

// Format writes the definitions of a grammar in notation format.
func Format(g *grammar.Grammar) string {
	var b strings.Builder
	for _, def := range g.Definitions() {
		alts := make([]string, len(def.Alternatives))
		for i, alt := range def.Alternatives {
			alts[i] = altString(alt)
		}
		fmt.Fprintf(&b, "%s -> %s\n", def.LHS, strings.Join(alts, " | "))
	}
	return b.String()
}
