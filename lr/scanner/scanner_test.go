package scanner

import (
	"testing"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprGrammar(t *testing.T) *grammar.Grammar {
	g, err := grammar.NewGrammar("Expr", []grammar.Definition{
		{LHS: "E", Alternatives: [][]string{{"E", "+", "T"}, {"T"}}},
		{LHS: "T", Alternatives: [][]string{{"T", "*", "F"}, {"F"}}},
		{LHS: "F", Alternatives: [][]string{{"(", "E", ")"}, {"id"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSymbolTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.scanner")
	defer teardown()
	//
	g := exprGrammar(t)
	var errs []error
	scan := Fields(g, "id + T ?")
	scan.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tokens := Drain(g, scan)
	if len(tokens) != 5 {
		t.Fatalf("Expected 5 tokens including end marker, have %d", len(tokens))
	}
	if tokens[0].TokType() != gramlab.TokType(g.SymbolByName("id").ID) {
		t.Errorf("Expected first token to be id, is %v", tokens[0])
	}
	for _, i := range []int{2, 3} {
		if tokens[i].TokType() != gramlab.IllegalTokType {
			t.Errorf("Expected token %q to be illegal", tokens[i].Lexeme())
		}
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, have %d", len(errs))
	}
	if tok := scan.NextToken(); tok.TokType() != gramlab.TokType(g.EOF().ID) {
		t.Errorf("Expected scanner to deliver end marker repeatedly")
	}
}

func TestEndMarkerEndsInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.scanner")
	defer teardown()
	//
	g := exprGrammar(t)
	with := Drain(g, Symbols(g, "id", "$"))
	without := Drain(g, Symbols(g, "id"))
	if len(with) != 2 || len(without) != 2 {
		t.Errorf("Expected trailing end marker to be optional, have %d and %d tokens", len(with), len(without))
	}
	if tokens := Drain(g, Symbols(g, "id", "$", "id")); len(tokens) != 2 {
		t.Errorf("Expected input to end at end marker, have %d tokens", len(tokens))
	}
}
