package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr/iteratable"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Compute the closure of an item.
func (ga *LRAnalysis) closure(i Item) *iteratable.Set {
	S := newItemSet()
	S.Add(i)
	return ga.closureSet(S)
}

// Compute the closure of an item set.
// https://www.cs.bgu.ac.il/~comp151/wiki.files/ps6.html#sec-2-7-3
func (ga *LRAnalysis) closureSet(S *iteratable.Set) *iteratable.Set {
	C := S.Copy() // add start items to closure
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		A := item.PeekSymbol()           // get symbol A after dot
		if A != nil && !A.IsTerminal() { // A is non-terminal
			R := newItemSet()
			for _, p := range ga.g.Alternatives(A) {
				R.Add(StartItem(p))
			}
			if New := R.Difference(C); !New.Empty() {
				C.Union(New)
			}
		}
	}
	return C
}

func (ga *LRAnalysis) gotoSet(closure *iteratable.Set, A *grammar.Symbol) *iteratable.Set {
	// for every item in closure C
	// if item in C:  N -> ... *A ...
	//     advance N -> ... A * ...
	gotoset := newItemSet()
	closure.Each(func(x interface{}) {
		if i := asItem(x); i.PeekSymbol() == A {
			gotoset.Add(i.Advance())
		}
	})
	return gotoset
}

func (ga *LRAnalysis) gotoSetClosure(i *iteratable.Set, A *grammar.Symbol) *iteratable.Set {
	gotoset := ga.gotoSet(i, A)
	if gotoset.Empty() {
		return gotoset
	}
	gclosure := ga.closureSet(gotoset)
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(i), A, itemSetString(gclosure))
	return gclosure
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int             // serial ID of this state
	items  *iteratable.Set // configuration items within this state
	key    string          // canonical hash of items
	Accept bool            // does this state contain the completed start item?
}

// Edge is a CFSM edge between 2 states, directed and labeled with a symbol.
type Edge struct {
	From  *CFSMState
	To    *CFSMState
	Label *grammar.Symbol
}

// Items returns the items of a state, ordered by production serial and dot.
func (s *CFSMState) Items() []Item {
	return sortedItems(s.items)
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

type transition struct {
	from  int
	label *grammar.Symbol
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram. Will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes, or even to
// compute your own tables from it.
type CFSM struct {
	g       *grammar.Grammar          // this CFSM is for Grammar g
	start   *grammar.Production       // S' -> S
	states  *treeset.Set              // all the states
	byKey   map[string]*CFSMState     // states by canonical item set hash
	edges   *arraylist.List           // all the edges between states
	trans   map[transition]*CFSMState // edges by source state and label
	S0      *CFSMState                // start state
	cfsmIds int                       // serial IDs for CFSM states
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *grammar.Grammar, start *grammar.Production) *CFSM {
	return &CFSM{
		g:      g,
		start:  start,
		states: treeset.NewWith(stateComparator),
		byKey:  make(map[string]*CFSMState),
		edges:  arraylist.New(),
		trans:  make(map[transition]*CFSMState),
	}
}

// Add a state to the CFSM. Checks first if a structurally equal state is
// present. Returns the state and true if it has been created.
func (c *CFSM) addState(iset *iteratable.Set) (*CFSMState, bool) {
	key := itemSetHash(iset)
	if s, ok := c.byKey[key]; ok {
		if !s.items.Equals(iset) {
			panic(fmt.Sprintf("hash collision between item sets of state %d and %s", s.ID, itemSetString(iset)))
		}
		return s, false
	}
	s := &CFSMState{ID: c.cfsmIds, items: iset, key: key}
	c.cfsmIds++
	iset.Each(func(x interface{}) {
		if i := asItem(x); i.prod == c.start && i.IsComplete() {
			s.Accept = true
		}
	})
	c.states.Add(s)
	c.byKey[key] = s
	return s, true
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym *grammar.Symbol) *Edge {
	e := &Edge{From: s0, To: s1, Label: sym}
	c.edges.Add(e)
	c.trans[transition{from: s0.ID, label: sym}] = s1
	return e
}

// Grammar returns the grammar the CFSM has been built for.
func (c *CFSM) Grammar() *grammar.Grammar {
	return c.g
}

// AugmentedStart returns the production S' -> S.
func (c *CFSM) AugmentedStart() *grammar.Production {
	return c.start
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	states := make([]*CFSMState, 0, c.states.Size())
	for _, x := range c.states.Values() {
		states = append(states, x.(*CFSMState))
	}
	return states
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if id < 0 || id >= c.states.Size() {
		return nil
	}
	return c.states.Values()[id].(*CFSMState)
}

// Transition returns the target of the edge from s labeled with A, or nil.
func (c *CFSM) Transition(s *CFSMState, A *grammar.Symbol) *CFSMState {
	return c.trans[transition{from: s.ID, label: A}]
}

// Edges returns all edges in order of creation.
func (c *CFSM) Edges() []*Edge {
	edges := make([]*Edge, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		edges = append(edges, it.Value().(*Edge))
	}
	return edges
}

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a LRAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an LR-parser recognizing grammar G.
type TableGenerator struct {
	g           *grammar.Grammar
	ga          *LRAnalysis
	dfa         *CFSM
	gototable   *GotoTable
	actiontable *ActionTable
	conflict    *Conflict
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis) *TableGenerator {
	lrgen := &TableGenerator{}
	lrgen.g = ga.Grammar()
	lrgen.ga = ga
	return lrgen
}

// Analysis returns the grammar analysis the generator works on.
func (lrgen *TableGenerator) Analysis() *LRAnalysis {
	return lrgen.ga
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = lrgen.buildCFSM()
	}
	return lrgen.dfa
}

// GotoTable returns the GOTO table for LR-parsing a grammar. The tables have to be
// built by calling CreateTables() previously. GotoTable is nil if table
// construction failed.
func (lrgen *TableGenerator) GotoTable() *GotoTable {
	if lrgen.gototable == nil {
		tracer().Errorf("tables not available")
	}
	return lrgen.gototable
}

// ActionTable returns the ACTION table for SLR(1)-parsing a grammar. The tables
// have to be built by calling CreateTables() previously. ActionTable is nil if
// table construction failed.
func (lrgen *TableGenerator) ActionTable() *ActionTable {
	if lrgen.actiontable == nil {
		tracer().Errorf("tables not available")
	}
	return lrgen.actiontable
}

// Conflict returns the conflict which prevented table construction, or nil.
func (lrgen *TableGenerator) Conflict() *Conflict {
	return lrgen.conflict
}

// CreateTables creates the necessary data structures for an SLR parser.
// If the grammar is not SLR(1), a *Conflict is returned and neither table
// is available afterwards.
func (lrgen *TableGenerator) CreateTables() error {
	lrgen.gototable, lrgen.actiontable, lrgen.conflict = nil, nil, nil
	lrgen.CFSM()
	gototable := lrgen.BuildGotoTable()
	actiontable, err := lrgen.BuildSLR1ActionTable()
	if err != nil {
		if c, ok := err.(*Conflict); ok {
			lrgen.conflict = c
		}
		tracer().Infof("grammar %s is not SLR(1): %v", lrgen.g.Name, err)
		return err
	}
	lrgen.gototable, lrgen.actiontable = gototable, actiontable
	tracer().Infof("SLR(1) tables for %s: %d states", lrgen.g.Name, lrgen.dfa.Size())
	return nil
}

// gotoSymbols returns the symbols to explore from every state: terminals
// (excluding the end marker) first, then non-terminals.
func gotoSymbols(g *grammar.Grammar) []*grammar.Symbol {
	syms := make([]*grammar.Symbol, 0, g.SymbolCount())
	for _, A := range g.Terminals() {
		if !A.IsEOF() {
			syms = append(syms, A)
		}
	}
	return append(syms, g.NonTerminals()...)
}

// Construct the characteristic finite state machine CFSM for a grammar.
// States are explored breadth first, so state IDs are deterministic.
func (lrgen *TableGenerator) buildCFSM() *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	_, startRule := G.Augment()
	cfsm := emptyCFSM(G, startRule)
	closure0 := lrgen.ga.closure(StartItem(startRule))
	cfsm.S0, _ = cfsm.addState(closure0)
	cfsm.S0.Dump()
	symbols := gotoSymbols(G)
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		for _, A := range symbols {
			gotoset := lrgen.ga.gotoSetClosure(s.items, A)
			if gotoset.Empty() {
				continue
			}
			snew, isNew := cfsm.addState(gotoset)
			if isNew {
				snew.Dump()
				S.Add(snew)
			}
			cfsm.addEdge(s, snew, A)
		}
	}
	tracer().Debugf("CFSM for %s has %d states", G.Name, cfsm.Size())
	return cfsm
}

// ===========================================================================

// BuildGotoTable builds the GOTO table. This is normally not called directly, but rather
// via CreateTables().
func (lrgen *TableGenerator) BuildGotoTable() *GotoTable {
	dfa := lrgen.CFSM()
	gototable := newGotoTable(lrgen.g, dfa.Size())
	for _, e := range dfa.Edges() {
		if !e.Label.IsTerminal() {
			gototable.set(e.From.ID, e.Label, e.To.ID)
		}
	}
	return gototable
}

// BuildSLR1ActionTable constructs the SLR(1) Action table. This method is normally not called
// by clients, but rather via CreateTables(). It builds an action table including
// lookahead (using the FOLLOW-set created by the grammar analyzer).
//
// For building an ACTION table we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state.
// If an item has a terminal immediately after the dot, we produce a shift
// entry. If an item's dot is behind the complete RHS of a rule,
// we produce a reduce-entry for the rule for each terminal from FOLLOW(LHS),
// or an accept entry for the augmented start rule.
//
// Entering an action which is already present is a no-op. Entering a
// different action for an occupied cell stops construction with a *Conflict.
func (lrgen *TableGenerator) BuildSLR1ActionTable() (*ActionTable, error) {
	dfa := lrgen.CFSM()
	actions := newActionTable(lrgen.g, dfa.Size())
	for _, state := range dfa.States() {
		for _, i := range state.Items() {
			A := i.PeekSymbol()
			switch {
			case A != nil && A.IsTerminal(): // create a shift entry
				to := dfa.Transition(state, A)
				if err := actions.put(state.ID, A, Shift(to.ID)); err != nil {
					return nil, err
				}
			case A != nil: // non-terminal after dot, handled by GOTO
			case i.prod == dfa.start:
				if err := actions.put(state.ID, lrgen.g.EOF(), Accept()); err != nil {
					return nil, err
				}
			default: // we are at the end of a rule
				for _, la := range lrgen.ga.Follow(i.prod.LHS).Symbols() {
					if err := actions.put(state.ID, la, Reduce(i.prod)); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return actions, nil
}
