package lr

import (
	"fmt"

	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr/sparse"
)

// ActionKind discriminates parser actions.
type ActionKind uint8

// Kinds of parser actions. NoAction denotes an empty table cell, i.e. a
// syntax error.
const (
	NoAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

// Action is an entry of an SLR(1) ACTION table. Create actions with Shift,
// Reduce or Accept. Actions are comparable values.
type Action struct {
	kind  ActionKind
	state int
	prod  *grammar.Production
}

// Shift creates an action to shift the lookahead and go to state.
func Shift(state int) Action {
	return Action{kind: ShiftAction, state: state}
}

// Reduce creates an action to reduce by production p.
func Reduce(p *grammar.Production) Action {
	return Action{kind: ReduceAction, prod: p}
}

// Accept creates the accept action.
func Accept() Action {
	return Action{kind: AcceptAction}
}

// Kind returns the kind of an action.
func (a Action) Kind() ActionKind {
	return a.kind
}

// State returns the target state of a shift action.
func (a Action) State() int {
	return a.state
}

// Production returns the production of a reduce action, or nil.
func (a Action) Production() *grammar.Production {
	return a.prod
}

// Code returns the conventional short form of an action: "s4", "r2", "acc",
// or the empty string for NoAction.
func (a Action) Code() string {
	switch a.kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.state)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.prod.Serial)
	case AcceptAction:
		return "acc"
	}
	return ""
}

func (a Action) String() string {
	switch a.kind {
	case ShiftAction:
		return fmt.Sprintf("shift %d", a.state)
	case ReduceAction:
		return fmt.Sprintf("reduce %v", a.prod)
	case AcceptAction:
		return "accept"
	}
	return "error"
}

// ---------------------------------------------------------------------------

// ConflictKind is the type of an SLR(1) table conflict.
type ConflictKind uint8

// A conflict between the accept action and a reduce action counts as
// reduce/reduce.
const (
	ShiftReduce ConflictKind = iota + 1
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// Conflict is returned by table construction if a grammar is not SLR(1).
// It denotes the first cell of the ACTION table which would receive two
// different actions.
type Conflict struct {
	State     int
	Symbol    *grammar.Symbol
	Kind      ConflictKind
	Existing  Action
	Competing Action
}

func (c *Conflict) Error() string {
	return fmt.Sprintf("SLR(1) %s conflict in state %d on %q: %v vs. %v",
		c.Kind, c.State, c.Symbol.Name, c.Existing, c.Competing)
}

// === Tables ================================================================

// Encoding of actions as matrix values.
const (
	acceptValue int32 = -1
	reduceBase  int32 = -2 // reduce p is encoded as reduceBase - p.Serial
)

// ActionTable is the SLR(1) ACTION table, indexed by state and terminal.
// It is immutable once constructed by a TableGenerator.
type ActionTable struct {
	g      *grammar.Grammar
	matrix *sparse.IntMatrix
}

func newActionTable(g *grammar.Grammar, states int) *ActionTable {
	tracer().Debugf("ACTION table of size %d x %d", states, g.SymbolCount())
	return &ActionTable{
		g:      g,
		matrix: sparse.NewIntMatrix(states, g.SymbolCount(), sparse.DefaultNullValue),
	}
}

func (t *ActionTable) encode(a Action) int32 {
	switch a.kind {
	case ShiftAction:
		return int32(a.state)
	case ReduceAction:
		return reduceBase - int32(a.prod.Serial)
	case AcceptAction:
		return acceptValue
	}
	return t.matrix.NullValue()
}

func (t *ActionTable) decode(v int32) Action {
	switch {
	case v == t.matrix.NullValue():
		return Action{}
	case v >= 0:
		return Shift(int(v))
	case v == acceptValue:
		return Accept()
	}
	return Reduce(t.g.Production(int(reduceBase - v)))
}

// put enters an action, checking for conflicts.
func (t *ActionTable) put(state int, A *grammar.Symbol, a Action) error {
	existing := t.Action(state, A)
	if existing.kind == NoAction {
		tracer().Debugf("ACTION[%d,%s] = %v", state, A, a)
		t.matrix.Set(state, A.ID, t.encode(a))
		return nil
	}
	if existing == a {
		return nil
	}
	kind := ReduceReduce
	if existing.kind == ShiftAction || a.kind == ShiftAction {
		kind = ShiftReduce
	}
	return &Conflict{State: state, Symbol: A, Kind: kind, Existing: existing, Competing: a}
}

// Action returns the action for a state and a terminal. An empty cell is
// reported as an action of kind NoAction.
func (t *ActionTable) Action(state int, A *grammar.Symbol) Action {
	if A == nil || !A.IsTerminal() || state < 0 || state >= t.matrix.M() {
		return Action{}
	}
	return t.decode(t.matrix.Value(state, A.ID))
}

// Expected returns the terminals with a non-empty entry for a state.
func (t *ActionTable) Expected(state int) []*grammar.Symbol {
	var syms []*grammar.Symbol
	row := t.matrix.Row(state)
	for _, A := range t.g.Terminals() {
		if _, ok := row[A.ID]; ok {
			syms = append(syms, A)
		}
	}
	return syms
}

// States returns the number of rows of the table.
func (t *ActionTable) States() int {
	return t.matrix.M()
}

// Size returns the number of non-empty cells.
func (t *ActionTable) Size() int {
	return t.matrix.ValueCount()
}

// Each calls f for every non-empty cell, ordered by state and terminal.
func (t *ActionTable) Each(f func(state int, A *grammar.Symbol, a Action)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(i, t.g.Symbol(j), t.decode(v))
	})
}

// GotoTable is the GOTO table, indexed by state and non-terminal.
type GotoTable struct {
	g      *grammar.Grammar
	matrix *sparse.IntMatrix
}

func newGotoTable(g *grammar.Grammar, states int) *GotoTable {
	tracer().Debugf("GOTO table of size %d x %d", states, g.SymbolCount())
	return &GotoTable{
		g:      g,
		matrix: sparse.NewIntMatrix(states, g.SymbolCount(), sparse.DefaultNullValue),
	}
}

func (t *GotoTable) set(state int, A *grammar.Symbol, target int) {
	t.matrix.Set(state, A.ID, int32(target))
}

// Goto returns the successor state for a state and a non-terminal.
func (t *GotoTable) Goto(state int, A *grammar.Symbol) (int, bool) {
	if A == nil || A.IsTerminal() || state < 0 || state >= t.matrix.M() || A.ID >= t.matrix.N() {
		return 0, false
	}
	v := t.matrix.Value(state, A.ID)
	if v == t.matrix.NullValue() {
		return 0, false
	}
	return int(v), true
}

// States returns the number of rows of the table.
func (t *GotoTable) States() int {
	return t.matrix.M()
}

// Each calls f for every non-empty cell, ordered by state and non-terminal.
func (t *GotoTable) Each(f func(state int, A *grammar.Symbol, target int)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(i, t.g.Symbol(j), int(v))
	})
}
