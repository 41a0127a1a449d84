package lexmach

import (
	"strings"
	"unicode"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'gramlab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gramlab.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	eof   gramlab.TokType // token type which ends the input
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', "if", …) and a map for translating token strings to
// their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{eof: gramlab.IllegalTokType}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(Literal(lit)), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// ForGrammar creates an adapter which scans for the terminals of grammar g.
// Every terminal is matched literally, white space between terminals is
// skipped, and the longest match wins. Token types are the IDs of the
// terminals.
func ForGrammar(g *grammar.Grammar) (*LMAdapter, error) {
	terminals := g.Terminals()
	literals := make([]string, 0, len(terminals))
	tokenIds := make(map[string]int, len(terminals))
	for _, A := range terminals {
		literals = append(literals, A.Name)
		tokenIds[A.Name] = A.ID
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	adapter, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		return nil, err
	}
	adapter.eof = gramlab.TokType(g.EOF().ID)
	return adapter, nil
}

// Literal creates a lexmachine pattern matching s literally. ASCII
// punctuation and symbol characters are escaped.
func Literal(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{
		scanner: s,
		input:   []byte(input),
		eof:     lm.eof,
		Error:   logError,
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
//
// Input which cannot be matched is reported to the error handler and
// delivered as a token of type gramlab.IllegalTokType. After the end of input
// the scanner delivers the end marker token repeatedly.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   []byte
	eof     gramlab.TokType
	done    bool
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

func (lms *LMScanner) endOfInput() gramlab.Token {
	n := uint64(len(lms.input))
	return scanner.MakeDefaultToken(lms.eof, gramlab.EndMarker, gramlab.Span{n, n})
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() gramlab.Token {
	if lms.done {
		return lms.endOfInput()
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		start := lms.scanner.TC
		if ui, is := err.(*machines.UnconsumedInput); is {
			start = ui.StartTC
			lms.scanner.TC = ui.FailTC
		}
		if lms.scanner.TC <= start { // force progress
			lms.scanner.TC = start + 1
		}
		if lms.scanner.TC > len(lms.input) {
			lms.scanner.TC = len(lms.input)
		}
		if start > lms.scanner.TC {
			start = lms.scanner.TC
		}
		return scanner.MakeDefaultToken(
			gramlab.IllegalTokType,
			string(lms.input[start:lms.scanner.TC]),
			gramlab.Span{uint64(start), uint64(lms.scanner.TC)},
		)
	}
	if eof {
		lms.done = true
		return lms.endOfInput()
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d = %q", token.Type, token.Lexeme)
	if gramlab.TokType(token.Type) == lms.eof {
		lms.done = true
	}
	return scanner.MakeDefaultToken(
		gramlab.TokType(token.Type),
		string(token.Lexeme),
		gramlab.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
