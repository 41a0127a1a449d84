package gramlab

import (
	"fmt"
	"strings"
)

// EndMarker is the name of the reserved terminal denoting end of input.
// It is never a user terminal.
const EndMarker = "$"

// Epsilon is the display name for the empty word. Epsilon is never a grammar
// symbol, it is used for presentation purposes only.
const Epsilon = "ε"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Parsers of this module use the ID of
// a terminal symbol as its token type.
type TokType int

// IllegalTokType is the token type of input which does not match any terminal.
// No parser table has an entry for it.
const IllegalTokType TokType = -1

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an identifier:
//
//    TokType = 7           // ID of terminal 'id' within the grammar
//    Lexeme  = "id"        // lexeme how it appeared in the input stream
//    Span    = 4…6         // occured from position 4 in the input stream
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Parser traces ---------------------------------------------------------

// Step is a snapshot of a parser configuration, taken before the parser
// performs Action. Stack is listed bottom first, Input starts with the lookahead.
type Step struct {
	Stack  []string `json:"stack"`
	Input  []string `json:"input"`
	Action string   `json:"action"`
}

func (st Step) String() string {
	return fmt.Sprintf("[%s] | %s | %s", strings.Join(st.Stack, " "),
		strings.Join(st.Input, " "), st.Action)
}

// SyntaxError is the reason a parser gives for rejecting its input.
// Rejection is an ordinary outcome of a parse, not a failure of the parser.
type SyntaxError struct {
	Position int      `json:"position"` // index of the offending token within the input
	Token    string   `json:"token"`    // lexeme of the offending token
	Expected []string `json:"expected"` // terminals the parser would have accepted, if known
	Span     Span     `json:"span"`     // input span of the offending token, as reported by the scanner
	Msg      string   `json:"message"`
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at token #%d %q: %s", e.Position, e.Token, e.Msg)
	}
	return fmt.Sprintf("syntax error at token #%d %q: %s; expected one of [%s]",
		e.Position, e.Token, e.Msg, strings.Join(e.Expected, " "))
}
