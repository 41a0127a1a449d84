package lr

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
)

// === Terminal Sets =========================================================

// TerminalSet is a set of terminals, ordered by symbol ID, plus a flag for
// epsilon. Epsilon is not a symbol and may therefore never be inserted as a
// member; FOLLOW sets never carry the flag.
//
// Terminal sets returned by an LRAnalysis are read-only for clients.
type TerminalSet struct {
	set     *treeset.Set
	epsilon bool
}

// We need this for the sets of terminals. It sorts symbols by ID.
func symbolComparator(s1, s2 interface{}) int {
	A := s1.(*grammar.Symbol)
	B := s2.(*grammar.Symbol)
	return utils.IntComparator(A.ID, B.ID)
}

func newTerminalSet() *TerminalSet {
	return &TerminalSet{set: treeset.NewWith(symbolComparator)}
}

// add inserts a terminal, returning true if it had not been present.
func (ts *TerminalSet) add(A *grammar.Symbol) bool {
	if A == nil || !A.IsTerminal() {
		panic(fmt.Sprintf("lr: cannot insert non-terminal %v into terminal set", A))
	}
	if ts.set.Contains(A) {
		return false
	}
	ts.set.Add(A)
	return true
}

func (ts *TerminalSet) addEpsilon() bool {
	if ts.epsilon {
		return false
	}
	ts.epsilon = true
	return true
}

// mergeExceptEpsilon unions the terminals of other into ts, returning true
// if ts changed.
func (ts *TerminalSet) mergeExceptEpsilon(other *TerminalSet) bool {
	changed := false
	for _, x := range other.set.Values() {
		if ts.add(x.(*grammar.Symbol)) {
			changed = true
		}
	}
	return changed
}

// Contains checks if terminal A is a member of the set.
func (ts *TerminalSet) Contains(A *grammar.Symbol) bool {
	if ts == nil || A == nil {
		return false
	}
	return ts.set.Contains(A)
}

// HasEpsilon returns true if epsilon is a member of the set.
func (ts *TerminalSet) HasEpsilon() bool {
	return ts != nil && ts.epsilon
}

// Size returns the number of terminals in the set, not counting epsilon.
func (ts *TerminalSet) Size() int {
	if ts == nil {
		return 0
	}
	return ts.set.Size()
}

// Symbols returns the terminals of the set, ordered by ID.
func (ts *TerminalSet) Symbols() []*grammar.Symbol {
	if ts == nil {
		return nil
	}
	syms := make([]*grammar.Symbol, 0, ts.set.Size())
	for _, x := range ts.set.Values() {
		syms = append(syms, x.(*grammar.Symbol))
	}
	return syms
}

// Names returns the names of the members, ordered by ID, with epsilon last.
func (ts *TerminalSet) Names() []string {
	names := make([]string, 0, ts.Size()+1)
	for _, A := range ts.Symbols() {
		names = append(names, A.Name)
	}
	if ts.HasEpsilon() {
		names = append(names, gramlab.Epsilon)
	}
	return names
}

func (ts *TerminalSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for _, n := range ts.Names() {
		b.WriteString(" ")
		b.WriteString(n)
	}
	b.WriteString(" }")
	return b.String()
}

// === Grammar Analysis ======================================================

// LRAnalysis is an object for grammar analysis (compute FIRST and FOLLOW sets).
type LRAnalysis struct {
	g            *grammar.Grammar
	first        map[*grammar.Symbol]*TerminalSet
	follow       map[*grammar.Symbol]*TerminalSet
	firstPasses  int
	followPasses int
}

// Analysis creates an analyser for a grammar and computes the FIRST and FOLLOW
// sets. The analyser is immutable afterwards and may be shared between
// goroutines.
func Analysis(g *grammar.Grammar) *LRAnalysis {
	ga := &LRAnalysis{
		g:      g,
		first:  make(map[*grammar.Symbol]*TerminalSet, g.SymbolCount()),
		follow: make(map[*grammar.Symbol]*TerminalSet, len(g.NonTerminals())),
	}
	ga.computeFirst()
	ga.computeFollow()
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LRAnalysis) Grammar() *grammar.Grammar {
	return ga.g
}

// First returns FIRST(A) for a grammar symbol A. For terminals this is {A}.
func (ga *LRAnalysis) First(A *grammar.Symbol) *TerminalSet {
	return ga.first[A]
}

// Follow returns FOLLOW(A) for a non-terminal A, or nil for terminals.
func (ga *LRAnalysis) Follow(A *grammar.Symbol) *TerminalSet {
	return ga.follow[A]
}

// Nullable is true if A derives the empty string.
func (ga *LRAnalysis) Nullable(A *grammar.Symbol) bool {
	return ga.first[A].HasEpsilon()
}

// Passes returns the number of passes the fixed-point computations for FIRST
// and FOLLOW needed, including the final pass without changes.
func (ga *LRAnalysis) Passes() (first, follow int) {
	return ga.firstPasses, ga.followPasses
}

// FirstOfSequence computes FIRST(X1 X2 … Xn) for a sequence of symbols. For
// the empty sequence the result is {ε}. The result is a fresh set.
func (ga *LRAnalysis) FirstOfSequence(syms []*grammar.Symbol) *TerminalSet {
	result := newTerminalSet()
	for _, X := range syms {
		fx := ga.first[X]
		if fx == nil {
			panic(fmt.Sprintf("lr: symbol %v not part of grammar %s", X, ga.g.Name))
		}
		result.mergeExceptEpsilon(fx)
		if !fx.HasEpsilon() {
			return result
		}
	}
	result.addEpsilon()
	return result
}

func (ga *LRAnalysis) computeFirst() {
	ga.initFirst()
	for ga.firstPass() {
	}
	tracer().Debugf("FIRST sets complete after %d passes", ga.firstPasses)
}

func (ga *LRAnalysis) initFirst() {
	for _, A := range ga.g.Terminals() {
		fa := newTerminalSet()
		fa.add(A)
		ga.first[A] = fa
	}
	for _, N := range ga.g.NonTerminals() {
		fn := newTerminalSet()
		if ga.g.DirectlyNullable(N) {
			fn.addEpsilon()
		}
		ga.first[N] = fn
	}
}

// firstPass iterates once over all productions, returning true if any FIRST
// set has grown.
func (ga *LRAnalysis) firstPass() bool {
	changed := false
	ga.firstPasses++
	for _, p := range ga.g.Productions() {
		fn := ga.first[p.LHS]
		f := ga.FirstOfSequence(p.RHS())
		grown := fn.mergeExceptEpsilon(f)
		if f.HasEpsilon() && fn.addEpsilon() {
			grown = true
		}
		if grown {
			tracer().Debugf("FIRST(%s) = %v", p.LHS, fn)
			changed = true
		}
	}
	return changed
}

func (ga *LRAnalysis) computeFollow() {
	ga.initFollow()
	for ga.followPass() {
	}
	tracer().Debugf("FOLLOW sets complete after %d passes", ga.followPasses)
}

func (ga *LRAnalysis) initFollow() {
	for _, N := range ga.g.NonTerminals() {
		ga.follow[N] = newTerminalSet()
	}
	ga.follow[ga.g.Start()].add(ga.g.EOF())
}

// followPass iterates once over all productions, returning true if any
// FOLLOW set has grown.
func (ga *LRAnalysis) followPass() bool {
	changed := false
	ga.followPasses++
	for _, p := range ga.g.Productions() {
		rhs := p.RHS()
		for i, B := range rhs {
			if B.IsTerminal() {
				continue
			}
			fb := ga.follow[B]
			beta := ga.FirstOfSequence(rhs[i+1:])
			grown := fb.mergeExceptEpsilon(beta)
			if beta.HasEpsilon() && fb.mergeExceptEpsilon(ga.follow[p.LHS]) {
				grown = true
			}
			if grown {
				tracer().Debugf("FOLLOW(%s) = %v", B, fb)
				changed = true
			}
		}
	}
	return changed
}

// Dump is a debugging helper, tracing FIRST and FOLLOW of every non-terminal.
func (ga *LRAnalysis) Dump() {
	tracer().Debugf("--- analysis of %s ----------------------", ga.g.Name)
	for _, N := range ga.g.NonTerminals() {
		tracer().Debugf("FIRST(%s) = %v, FOLLOW(%s) = %v", N, ga.First(N), N, ga.Follow(N))
	}
	tracer().Debugf("----------------------------------------")
}
