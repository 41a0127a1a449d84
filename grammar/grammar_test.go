package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprDefinitions() []Definition {
	return []Definition{
		{LHS: "E", Alternatives: [][]string{{"E", "+", "T"}, {"T"}}},
		{LHS: "T", Alternatives: [][]string{{"T", "*", "F"}, {"F"}}},
		{LHS: "F", Alternatives: [][]string{{"(", "E", ")"}, {"id"}}},
	}
}

func TestNewGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	g, err := NewGrammar("Expr", exprDefinitions())
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start().Name != "E" {
		t.Errorf("Expected start symbol to be E, is %s", g.Start())
	}
	if len(g.NonTerminals()) != 3 {
		t.Errorf("Expected 3 non-terminals, have %d", len(g.NonTerminals()))
	}
	terms := []string{"+", "*", "(", ")", "id", "$"}
	if len(g.Terminals()) != len(terms) {
		t.Fatalf("Expected %d terminals, have %d", len(terms), len(g.Terminals()))
	}
	for i, T := range g.Terminals() {
		if T.Name != terms[i] || !T.IsTerminal() {
			t.Errorf("Expected terminal #%d to be %q, is %v", i, terms[i], T)
		}
	}
	if !g.EOF().IsEOF() || g.EOF().ID != g.SymbolCount()-1 {
		t.Errorf("Expected end marker to be the last symbol, is %d", g.EOF().ID)
	}
	for id, A := range g.Symbols() {
		if A.ID != id || g.Symbol(id) != A {
			t.Errorf("Expected symbol %v to have ID %d", A, id)
		}
	}
	if p := g.Production(4); p == nil || p.String() != "F -> ( E )" {
		t.Errorf("Expected production #4 to be F -> ( E ), is %v", p)
	}
	if n := len(g.Alternatives(g.SymbolByName("T"))); n != 2 {
		t.Errorf("Expected T to have 2 alternatives, has %d", n)
	}
}

func TestGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	for i, test := range []struct {
		defs []Definition
		kind ErrorKind
	}{
		{defs: nil, kind: EmptyGrammar},
		{defs: []Definition{{LHS: "S"}}, kind: MissingStartProductions},
		{defs: []Definition{
			{LHS: "S", Alternatives: [][]string{{"A"}}},
			{LHS: "A"},
		}, kind: MissingProductions},
		{defs: []Definition{
			{LHS: "S", Alternatives: [][]string{{"a", "b"}, {"c"}, {"a", "b"}}},
		}, kind: DuplicateProduction},
		{defs: []Definition{
			{LHS: "S", Alternatives: [][]string{{}, {}}},
		}, kind: DuplicateProduction},
		{defs: []Definition{
			{LHS: "S", Alternatives: [][]string{{"a", "$"}}},
		}, kind: ReservedSymbol},
		{defs: []Definition{
			{LHS: "", Alternatives: [][]string{{"a"}}},
		}, kind: ReservedSymbol},
		{defs: []Definition{
			{LHS: "S", Alternatives: [][]string{{"a", "ε"}}},
		}, kind: ReservedSymbol},
		{defs: []Definition{
			{LHS: "ε", Alternatives: [][]string{{"a"}}},
		}, kind: ReservedSymbol},
	} {
		_, err := NewGrammar("G", test.defs)
		var gerr *Error
		if !errors.As(err, &gerr) {
			t.Errorf("test %d: expected grammar error, got %v", i, err)
			continue
		}
		if gerr.Kind != test.kind {
			t.Errorf("test %d: expected error kind %q, is %q", i, test.kind, gerr.Kind)
		}
		if !errors.Is(err, &Error{Kind: test.kind}) {
			t.Errorf("test %d: expected errors.Is to match kind %q", i, test.kind)
		}
	}
}

func TestMergeDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	g, err := NewGrammar("G", []Definition{
		{LHS: "S", Alternatives: [][]string{{"a"}}},
		{LHS: "A", Alternatives: [][]string{{"b"}}},
		{LHS: "S", Alternatives: [][]string{{"A"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	alts := g.Alternatives(g.Start())
	if len(alts) != 2 || alts[1].String() != "S -> A" {
		t.Errorf("Expected definitions of S to be merged, have %v", alts)
	}
	if g.Production(1).LHS.Name != "S" {
		t.Errorf("Expected serial numbers to follow non-terminal order, production #1 is %v",
			g.Production(1))
	}
}

func TestDirectNullability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if !g.DirectlyNullable(g.SymbolByName("B")) {
		t.Errorf("Expected B to be directly nullable")
	}
	if g.DirectlyNullable(g.SymbolByName("A")) {
		t.Errorf("Expected A not to be directly nullable")
	}
	if !g.Production(3).IsEpsilon() || g.Production(3).String() != "B -> ε" {
		t.Errorf("Expected production #3 to be an epsilon production, is %v", g.Production(3))
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").T("A").End()
	b.LHS("A").T("a").End()
	if _, err := b.Grammar(); !errors.Is(err, &Error{Kind: InconsistentSymbol}) {
		t.Errorf("Expected inconsistent symbol error, got %v", err)
	}
	b = NewBuilder("G")
	b.LHS("S").N("X").End()
	if _, err := b.Grammar(); !errors.Is(err, &Error{Kind: MissingProductions}) {
		t.Errorf("Expected missing productions error, got %v", err)
	}
	b = NewBuilder("G")
	b.LHS("S").T("a").T("ε").End()
	if _, err := b.Grammar(); !errors.Is(err, &Error{Kind: ReservedSymbol}) {
		t.Errorf("Expected reserved symbol error for terminal ε, got %v", err)
	}
}

func TestAugment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	g, err := NewGrammar("G", []Definition{
		{LHS: "S", Alternatives: [][]string{{"S'"}, {"a"}}},
		{LHS: "S'", Alternatives: [][]string{{"b"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	S, p := g.Augment()
	if S.Name != "S''" {
		t.Errorf("Expected augmented start symbol to be S'', is %s", S)
	}
	if p.Len() != 1 || p.At(0) != g.Start() || p.LHS != S {
		t.Errorf("Expected augmented production S'' -> S, is %v", p)
	}
	if g.SymbolByName(S.Name) != nil || len(g.Productions()) != 3 {
		t.Errorf("Expected grammar to be left untouched by augmentation")
	}
	if S.ID != g.SymbolCount() || p.Serial != 3 {
		t.Errorf("Expected augmented IDs to follow the grammar's, are %d/%d", S.ID, p.Serial)
	}
}

func TestDefinitionsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	g, _ := NewGrammar("Expr", exprDefinitions())
	h, err := NewGrammar("Copy", g.Definitions())
	if err != nil {
		t.Fatal(err)
	}
	if g.String() != h.String() {
		t.Errorf("Expected copy to equal original:\n%s\nvs.\n%s", g, h)
	}
}
