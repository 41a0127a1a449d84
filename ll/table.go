package ll

import (
	"fmt"

	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr"
	"github.com/npillmayer/gramlab/lr/sparse"
)

// Conflict is returned by BuildTable if a grammar is not LL(1). It denotes
// the first cell of the prediction table which would receive two different
// productions.
type Conflict struct {
	NonTerminal *grammar.Symbol
	Lookahead   *grammar.Symbol
	Existing    *grammar.Production
	Competing   *grammar.Production
}

func (c *Conflict) Error() string {
	return fmt.Sprintf("LL(1) conflict for %s on %q: %v vs. %v",
		c.NonTerminal, c.Lookahead.Name, c.Existing, c.Competing)
}

// Table is an LL(1) prediction table. Rows are non-terminals, columns are
// terminals, entries are productions. Tables are immutable once built.
type Table struct {
	g      *grammar.Grammar
	matrix *sparse.IntMatrix // values are production serials
}

// BuildTable builds the prediction table for an analysed grammar.
//
// For every production A -> α and every terminal a in FIRST(α), the table
// predicts A -> α for (A, a). If α is nullable, A -> α is predicted for every
// terminal in FOLLOW(A), including the end marker.
//
// If the grammar is not LL(1), BuildTable returns a *Conflict and no table.
func BuildTable(ga *lr.LRAnalysis) (*Table, error) {
	g := ga.Grammar()
	rows := len(g.NonTerminals())
	T := &Table{
		g:      g,
		matrix: sparse.NewIntMatrix(rows, g.SymbolCount(), sparse.DefaultNullValue),
	}
	for _, p := range g.Productions() {
		first := ga.FirstOfSequence(p.RHS())
		for _, a := range first.Symbols() {
			if err := T.put(p.LHS, a, p); err != nil {
				return nil, err
			}
		}
		if first.HasEpsilon() {
			for _, b := range ga.Follow(p.LHS).Symbols() {
				if err := T.put(p.LHS, b, p); err != nil {
					return nil, err
				}
			}
		}
	}
	tracer().Infof("LL(1) table for %s has %d entries", g.Name, T.matrix.ValueCount())
	return T, nil
}

// put enters a production, checking for conflicts.
func (t *Table) put(A, a *grammar.Symbol, p *grammar.Production) error {
	existing, ok := t.Lookup(A, a)
	if !ok {
		tracer().Debugf("M[%s,%s] = %v", A, a, p)
		t.matrix.Set(A.ID, a.ID, int32(p.Serial))
		return nil
	}
	if existing == p {
		return nil
	}
	tracer().Infof("LL(1) conflict at M[%s,%s]", A, a)
	return &Conflict{NonTerminal: A, Lookahead: a, Existing: existing, Competing: p}
}

// Grammar returns the grammar of the table.
func (t *Table) Grammar() *grammar.Grammar {
	return t.g
}

// Lookup returns the production predicted for non-terminal A and lookahead a.
func (t *Table) Lookup(A, a *grammar.Symbol) (*grammar.Production, bool) {
	if A == nil || a == nil || A.IsTerminal() || !a.IsTerminal() {
		return nil, false
	}
	v := t.matrix.Value(A.ID, a.ID)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Production(int(v)), true
}

// Expected returns the terminals for which a production of A is predicted.
func (t *Table) Expected(A *grammar.Symbol) []*grammar.Symbol {
	var syms []*grammar.Symbol
	if A == nil || A.IsTerminal() {
		return syms
	}
	row := t.matrix.Row(A.ID)
	for _, a := range t.g.Terminals() {
		if _, ok := row[a.ID]; ok {
			syms = append(syms, a)
		}
	}
	return syms
}

// Size returns the number of non-empty cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Each calls f for every non-empty cell, ordered by non-terminal and terminal.
func (t *Table) Each(f func(A, a *grammar.Symbol, p *grammar.Production)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(t.g.Symbol(i), t.g.Symbol(j), t.g.Production(int(v)))
	})
}
