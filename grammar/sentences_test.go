package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSentences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	g, _ := NewGrammar("Expr", exprDefinitions())
	sentences := Sentences(g, 3, 0)
	expected := []string{"id", "( id )", "id * id", "id + id"}
	if len(sentences) != len(expected) {
		t.Fatalf("Expected %d sentences, have %d: %v", len(expected), len(sentences), sentences)
	}
	for i, s := range sentences {
		if strings.Join(s, " ") != expected[i] {
			t.Errorf("Expected sentence #%d to be %q, is %q", i, expected[i], strings.Join(s, " "))
		}
	}
}

func TestSentencesWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.grammar")
	defer teardown()
	//
	b := NewBuilder("Parens")
	b.LHS("S").T("(").N("S").T(")").N("S").End()
	b.LHS("S").Epsilon()
	g, _ := b.Grammar()
	sentences := Sentences(g, 4, 0)
	// ε, (), ()(), (())
	if len(sentences) != 4 || len(sentences[0]) != 0 {
		t.Errorf("Expected 4 sentences, starting with the empty one, have %v", sentences)
	}
	if few := Sentences(g, 4, 2); len(few) != 2 {
		t.Errorf("Expected enumeration to stop at 2 sentences, have %d", len(few))
	}
}
