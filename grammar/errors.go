package grammar

import (
	"fmt"
	"strings"
)

// ErrorKind classifies grammar construction errors.
type ErrorKind int

// Grammar construction fails for one of these reasons.
const (
	EmptyGrammar            ErrorKind = iota + 1 // no definitions at all
	MissingStartProductions                      // start symbol without alternatives
	MissingProductions                           // other non-terminal without alternatives
	DuplicateProduction                          // identical alternatives for one non-terminal
	ReservedSymbol                               // empty symbol name or use of the end marker
	InconsistentSymbol                           // symbol used as terminal and non-terminal
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyGrammar:
		return "empty grammar"
	case MissingStartProductions:
		return "start symbol has no productions"
	case MissingProductions:
		return "non-terminal has no productions"
	case DuplicateProduction:
		return "duplicate production"
	case ReservedSymbol:
		return "reserved symbol"
	case InconsistentSymbol:
		return "inconsistent symbol"
	}
	return "unknown grammar error"
}

// Error is returned when a grammar cannot be constructed. It is fatal for an
// analysis: without a grammar there is nothing to analyse.
type Error struct {
	Kind        ErrorKind
	Symbol      string   // offending symbol, if any
	Alternative []string // offending alternative, for DuplicateProduction
}

func (e *Error) Error() string {
	switch {
	case e.Kind == DuplicateProduction:
		return fmt.Sprintf("grammar: %s: %s -> %s", e.Kind, e.Symbol, altString(e.Alternative))
	case e.Symbol != "":
		return fmt.Sprintf("grammar: %s: %q", e.Kind, e.Symbol)
	}
	return "grammar: " + e.Kind.String()
}

// Is makes errors.Is match grammar errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func altString(alt []string) string {
	if len(alt) == 0 {
		return "ε"
	}
	return strings.Join(alt, " ")
}
