package lexmach

import (
	"testing"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
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

var inputStrings = []string{
	"id",
	"id+id",
	"id + id * ( id )",
	"id ? id",
	"",
}

var tokenCounts = []int{1, 3, 7, 3, 0}

func TestForGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.scanner")
	defer teardown()
	//
	g := exprGrammar(t)
	LM, err := ForGrammar(g)
	if err != nil {
		t.Fatal(err)
	}
	eof := gramlab.TokType(g.EOF().ID)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		sc.SetErrorHandler(func(e error) { t.Logf("scanner error: %v", e) })
		token := sc.NextToken()
		count := 0
		for token.TokType() != eof {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
			if count > 20 {
				t.Fatalf("scanner does not terminate for input #%d", i)
			}
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if token = sc.NextToken(); token.TokType() != eof {
			t.Errorf("Expected end marker to be repeated for #%d", i)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestIllegalInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.scanner")
	defer teardown()
	//
	g := exprGrammar(t)
	LM, err := ForGrammar(g)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("id ? id")
	errors := 0
	sc.SetErrorHandler(func(error) { errors++ })
	tokens := scanner.Drain(g, sc)
	if len(tokens) != 4 || tokens[1].TokType() != gramlab.IllegalTokType {
		t.Fatalf("Expected illegal token at index 1, have %v", tokens)
	}
	if tokens[1].Lexeme() != "?" || errors != 1 {
		t.Errorf("Expected 1 error for '?', have %d for %q", errors, tokens[1].Lexeme())
	}
}

func TestCustomLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.scanner")
	defer teardown()
	//
	tokenIds := map[string]int{"NUM": 1, "+": 2, "let": 3}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\t)+`), Skip)
	}
	LM, err := NewLMAdapter(init, []string{"+", "let"}, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("let 1 + 22")
	types := []int{3, 1, 2, 1}
	for i, typ := range types {
		if tok := sc.NextToken(); int(tok.TokType()) != typ {
			t.Errorf("Expected token #%d to be of type %d, is %d (%q)", i, typ, tok.TokType(), tok.Lexeme())
		}
	}
	if Literal("a+b") != `a\+b` {
		t.Errorf("Expected literal pattern to escape '+', is %q", Literal("a+b"))
	}
}
