package slr

import (
	"errors"
	"testing"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr"
	"github.com/npillmayer/gramlab/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Expr")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func parensGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Parens")
	b.LHS("S").T("(").N("S").T(")").N("S").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func makeParser(t *testing.T, g *grammar.Grammar, opts ...Option) *Parser {
	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	if err := lrgen.CreateTables(); err != nil {
		t.Fatalf("grammar %s is not SLR(1): %v", g.Name, err)
	}
	return NewParser(g, lrgen.GotoTable(), lrgen.ActionTable(), opts...)
}

func TestParseExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.lr")
	defer teardown()
	//
	g := exprGrammar(t)
	p := makeParser(t, g)
	accepted, err := p.Parse(scanner.Fields(g, "id + id * id"))
	if !accepted || err != nil {
		t.Errorf("Expected 'id + id * id' to be accepted, error is %v", err)
	}
	if !p.Accepts("id", "+", "id", "*", "id", "$") {
		t.Errorf("Expected input with explicit end marker to be accepted")
	}
	accepted, err = p.Parse(scanner.Fields(g, "id +"))
	if accepted {
		t.Fatalf("Expected 'id +' to be rejected")
	}
	var serr *gramlab.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected a syntax error, got %v", err)
	}
	if serr.Position != 2 || serr.Token != "$" || len(serr.Expected) != 2 {
		t.Errorf("Expected error at end marker with 2 expected terminals, have %v", serr)
	}
}

func TestParseRejectsIllegalToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.lr")
	defer teardown()
	//
	g := exprGrammar(t)
	p := makeParser(t, g)
	if p.Accepts("id", "+", "E") {
		t.Errorf("Expected non-terminal in input to be rejected")
	}
	if p.Accepts("id", "-", "id") {
		t.Errorf("Expected unknown terminal to be rejected")
	}
	if p.Accepts() {
		t.Errorf("Expected empty input to be rejected")
	}
}

func TestParseEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.lr")
	defer teardown()
	//
	g := parensGrammar(t)
	p := makeParser(t, g)
	for _, input := range [][]string{{}, {"(", ")"}, {"(", "(", ")", ")", "(", ")"}} {
		if !p.Accepts(input...) {
			t.Errorf("Expected %v to be accepted", input)
		}
	}
	if p.Accepts("(", ")", ")") {
		t.Errorf("Expected unbalanced input to be rejected")
	}
}

func TestTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.lr")
	defer teardown()
	//
	g := exprGrammar(t)
	p := makeParser(t, g, RecordTrace(true))
	if !p.Accepts("id") {
		t.Fatalf("Expected 'id' to be accepted")
	}
	trace := p.Trace()
	for _, step := range trace {
		t.Logf("%v", step)
	}
	if len(trace) != 5 {
		t.Fatalf("Expected 5 steps (shift, 3 x reduce, accept), have %d", len(trace))
	}
	first := trace[0]
	if len(first.Stack) != 1 || first.Stack[0] != "0" || len(first.Input) != 2 || first.Action != "shift 2" {
		t.Errorf("Unexpected first step %v", first)
	}
	if trace[4].Action != "accept" || trace[1].Action != "reduce F -> id" {
		t.Errorf("Unexpected steps %v, %v", trace[1], trace[4])
	}
	if _, err := NewParser(g, nil, nil).Parse(scanner.Symbols(g)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected parser without tables to fail, got %v", err)
	}
}

// Every sentence derivable up to a length bound must be accepted, and
// replacing any single token with a symbol outside of every lookahead set must
// lead to rejection.
func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.lr")
	defer teardown()
	//
	for _, g := range []*grammar.Grammar{exprGrammar(t), parensGrammar(t)} {
		p := makeParser(t, g)
		sentences := grammar.Sentences(g, 5, 100)
		if len(sentences) == 0 {
			t.Fatalf("Expected sentences for grammar %s", g.Name)
		}
		for _, s := range sentences {
			if !p.Accepts(s...) {
				t.Errorf("%s: expected %v to be accepted", g.Name, s)
			}
			for i := range s {
				corrupt := append([]string(nil), s...)
				corrupt[i] = "?"
				if p.Accepts(corrupt...) {
					t.Errorf("%s: expected %v to be rejected", g.Name, corrupt)
				}
			}
		}
	}
}
