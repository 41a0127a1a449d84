package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/gramlab"
)

// --- Symbols ---------------------------------------------------------------

type symbolKind uint8

const (
	nonTerminal symbolKind = iota
	terminal
)

// Symbol represents a grammar symbol, either a terminal or a non-terminal.
// Symbols are unique within a grammar and compared by identity. IDs are dense,
// starting at 0: non-terminals first (in declaration order), followed by the
// terminals (in order of first appearance), with the end marker last.
type Symbol struct {
	Name string
	ID   int
	kind symbolKind
}

// IsTerminal returns true if this symbol is a terminal (including the end marker).
func (A *Symbol) IsTerminal() bool {
	return A.kind == terminal
}

// IsEOF returns true for the end marker.
func (A *Symbol) IsEOF() bool {
	return A.kind == terminal && A.Name == gramlab.EndMarker
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Productions -----------------------------------------------------------

// Production is a pair (left-hand non-terminal, right-hand sequence of symbols).
// An empty right-hand side denotes an epsilon production. Serial is the index
// of the production within the grammar (declaration order).
type Production struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns a copy of the right-hand side of a production.
func (p *Production) RHS() []*Symbol {
	return append([]*Symbol(nil), p.rhs...)
}

// Len returns the length of the right-hand side.
func (p *Production) Len() int {
	return len(p.rhs)
}

// At returns the symbol at position i of the right-hand side, or nil if i is
// out of range.
func (p *Production) At(i int) *Symbol {
	if i < 0 || i >= len(p.rhs) {
		return nil
	}
	return p.rhs[i]
}

// IsEpsilon is true for productions with an empty right-hand side.
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 0
}

// RHSNames returns the names of the right-hand side symbols.
func (p *Production) RHSNames() []string {
	names := make([]string, len(p.rhs))
	for i, A := range p.rhs {
		names[i] = A.Name
	}
	return names
}

func (p *Production) String() string {
	return fmt.Sprintf("%s -> %s", p.LHS.Name, altString(p.RHSNames()))
}

// --- Grammar ---------------------------------------------------------------

// Definition groups the alternatives of a non-terminal. A list of definitions
// is the input for grammar construction; its order matters: the first
// definition names the start symbol, and alternatives keep their order.
type Definition struct {
	LHS          string
	Alternatives [][]string // an empty alternative denotes epsilon
}

// Grammar is an immutable context-free grammar. Create one with NewGrammar or
// with a Builder.
type Grammar struct {
	Name         string
	start        *Symbol
	eof          *Symbol
	nonterminals []*Symbol
	terminals    []*Symbol // the end marker is the last one
	symbols      []*Symbol // indexed by symbol ID
	byName       map[string]*Symbol
	productions  []*Production
	alternatives map[*Symbol][]*Production
}

// NewGrammar creates a grammar from an ordered list of definitions.
// Repeated definitions for the same non-terminal are merged, in order.
// The left-hand side of the first definition is the start symbol.
//
// NewGrammar returns an *Error if the grammar is empty, a non-terminal has no
// alternatives, a non-terminal lists an alternative twice, or a symbol name
// is reserved (empty, the end marker or the epsilon sign).
func NewGrammar(name string, defs []Definition) (*Grammar, error) {
	if len(defs) == 0 {
		return nil, &Error{Kind: EmptyGrammar}
	}
	lhsOrder := make([]string, 0, len(defs))
	alts := make(map[string][][]string, len(defs))
	for _, def := range defs {
		if err := checkName(def.LHS); err != nil {
			return nil, err
		}
		if _, seen := alts[def.LHS]; !seen {
			lhsOrder = append(lhsOrder, def.LHS)
			alts[def.LHS] = [][]string{}
		}
		alts[def.LHS] = append(alts[def.LHS], def.Alternatives...)
	}
	for i, lhs := range lhsOrder {
		if len(alts[lhs]) == 0 {
			if i == 0 {
				return nil, &Error{Kind: MissingStartProductions, Symbol: lhs}
			}
			return nil, &Error{Kind: MissingProductions, Symbol: lhs}
		}
		seen := make(map[string]struct{}, len(alts[lhs]))
		for _, alt := range alts[lhs] {
			for _, sym := range alt {
				if err := checkName(sym); err != nil {
					return nil, err
				}
			}
			key := altKey(alt)
			if _, dup := seen[key]; dup {
				return nil, &Error{Kind: DuplicateProduction, Symbol: lhs, Alternative: alt}
			}
			seen[key] = struct{}{}
		}
	}
	g := &Grammar{
		Name:         name,
		byName:       make(map[string]*Symbol),
		alternatives: make(map[*Symbol][]*Production),
	}
	for _, lhs := range lhsOrder {
		A := g.addSymbol(lhs, nonTerminal)
		g.nonterminals = append(g.nonterminals, A)
	}
	for _, lhs := range lhsOrder {
		for _, alt := range alts[lhs] {
			for _, sym := range alt {
				if _, ok := g.byName[sym]; !ok {
					g.terminals = append(g.terminals, g.addSymbol(sym, terminal))
				}
			}
		}
	}
	g.eof = g.addSymbol(gramlab.EndMarker, terminal)
	g.terminals = append(g.terminals, g.eof)
	g.start = g.nonterminals[0]
	for _, lhs := range lhsOrder {
		A := g.byName[lhs]
		for _, alt := range alts[lhs] {
			p := &Production{Serial: len(g.productions), LHS: A}
			for _, sym := range alt {
				p.rhs = append(p.rhs, g.byName[sym])
			}
			g.productions = append(g.productions, p)
			g.alternatives[A] = append(g.alternatives[A], p)
		}
	}
	tracer().Debugf("grammar %q: %d non-terminals, %d terminals, %d productions",
		name, len(g.nonterminals), len(g.terminals), len(g.productions))
	return g, nil
}

func (g *Grammar) addSymbol(name string, kind symbolKind) *Symbol {
	A := &Symbol{Name: name, ID: len(g.symbols), kind: kind}
	g.symbols = append(g.symbols, A)
	g.byName[name] = A
	return A
}

func checkName(name string) error {
	if name == "" || name == gramlab.EndMarker || name == gramlab.Epsilon {
		return &Error{Kind: ReservedSymbol, Symbol: name}
	}
	return nil
}

// altKey is a structural key for an alternative. Lengths are prepended to the
// names, so different splits of the same characters never collide.
func altKey(alt []string) string {
	var b strings.Builder
	for _, s := range alt {
		fmt.Fprintf(&b, "%d:%s;", len(s), s)
	}
	return b.String()
}

// Start returns the start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// EOF returns the end marker symbol.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// NonTerminals returns the non-terminals in declaration order.
func (g *Grammar) NonTerminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterminals...)
}

// Terminals returns the terminals in order of first appearance, followed by
// the end marker.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terminals...)
}

// Symbols returns all symbols, indexed by ID.
func (g *Grammar) Symbols() []*Symbol {
	return append([]*Symbol(nil), g.symbols...)
}

// SymbolCount returns the number of symbols, including the end marker.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols)
}

// Symbol returns the symbol with a given ID, or nil.
func (g *Grammar) Symbol(id int) *Symbol {
	if id < 0 || id >= len(g.symbols) {
		return nil
	}
	return g.symbols[id]
}

// SymbolByName returns the symbol with a given name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.byName[name]
}

// Alternatives returns the productions for non-terminal A, in declaration order.
func (g *Grammar) Alternatives(A *Symbol) []*Production {
	return append([]*Production(nil), g.alternatives[A]...)
}

// Productions returns all productions, indexed by serial number.
func (g *Grammar) Productions() []*Production {
	return append([]*Production(nil), g.productions...)
}

// Production returns the production with serial number n, or nil.
func (g *Grammar) Production(n int) *Production {
	if n < 0 || n >= len(g.productions) {
		return nil
	}
	return g.productions[n]
}

// DirectlyNullable is true if A has an epsilon alternative. This is not
// transitive: A -> B with B -> ε does not make A directly nullable.
// Use lr.LRAnalysis.Nullable for the transitive property.
func (g *Grammar) DirectlyNullable(A *Symbol) bool {
	for _, p := range g.alternatives[A] {
		if p.IsEpsilon() {
			return true
		}
	}
	return false
}

// Definitions returns the grammar as a list of definitions, suitable for
// re-creating it with NewGrammar.
func (g *Grammar) Definitions() []Definition {
	defs := make([]Definition, 0, len(g.nonterminals))
	for _, A := range g.nonterminals {
		def := Definition{LHS: A.Name}
		for _, p := range g.alternatives[A] {
			def.Alternatives = append(def.Alternatives, p.RHSNames())
		}
		defs = append(defs, def)
	}
	return defs
}

// Augment creates an augmented start symbol S' and the production S' -> S.
// The name of S' is derived from the start symbol by appending apostrophes
// until it is unique. Neither the symbol nor the production is registered with
// the grammar: the ID of S' is SymbolCount(), the production's serial number
// is len(Productions()).
func (g *Grammar) Augment() (*Symbol, *Production) {
	name := g.start.Name + "'"
	for g.byName[name] != nil {
		name += "'"
	}
	S := &Symbol{Name: name, ID: len(g.symbols), kind: nonTerminal}
	p := &Production{Serial: len(g.productions), LHS: S, rhs: []*Symbol{g.start}}
	return S, p
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, A := range g.nonterminals {
		alts := make([]string, 0, len(g.alternatives[A]))
		for _, p := range g.alternatives[A] {
			alts = append(alts, altString(p.RHSNames()))
		}
		fmt.Fprintf(&b, "%s -> %s\n", A.Name, strings.Join(alts, " | "))
	}
	return b.String()
}

// Dump is a debugging helper, tracing all productions at Debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -------------------------", g.Name)
	for _, p := range g.productions {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("----------------------------------------")
}
