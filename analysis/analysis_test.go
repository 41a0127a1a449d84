package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/grammar/notation"
	"github.com/npillmayer/gramlab/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprLR = `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

const exprLL = `
E  -> T E'
E' -> + T E' | ε
T  -> F T'
T' -> * F T' | ε
F  -> ( E ) | id
`

const ambiguous = `S -> S + S | id`

func TestLeftRecursiveExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	r, err := AnalyzeText("Expr", exprLR)
	require.NoError(t, err)
	assert.False(t, r.IsLL1())
	assert.True(t, r.IsSLR1())
	require.NotNil(t, r.LL1Conflict())
	assert.Equal(t, "E", r.LL1Conflict().NonTerminal.Name)
	assert.Nil(t, r.SLR1Conflict())
	//
	v := r.Check([]string{"id", "+", "id", "*", "id"})
	assert.Nil(t, v.LL1)
	require.NotNil(t, v.SLR1)
	assert.True(t, v.SLR1.Accepted)
	v = r.Check([]string{"id", "+"})
	require.NotNil(t, v.SLR1)
	assert.False(t, v.SLR1.Accepted)
	require.NotNil(t, v.SLR1.Reason)
	assert.Equal(t, "$", v.SLR1.Reason.Token)
}

func TestRightRecursiveExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	r, err := AnalyzeText("ExprLL", exprLL)
	require.NoError(t, err)
	assert.True(t, r.IsLL1())
	assert.True(t, r.IsSLR1())
	v := r.Check([]string{"id", "+", "id", "*", "id"}, WithTraces(true))
	require.NotNil(t, v.LL1)
	assert.True(t, v.LL1.Accepted)
	assert.NotEmpty(t, v.LL1.Trace)
	assert.True(t, v.SLR1.Accepted)
	v = r.Check([]string{"+", "id"})
	assert.False(t, v.LL1.Accepted)
	assert.False(t, v.SLR1.Accepted)
	assert.Equal(t, 0, v.LL1.Reason.Position)
}

func TestAmbiguousGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	r, err := AnalyzeText("Ambiguous", ambiguous)
	require.NoError(t, err)
	assert.False(t, r.IsSLR1())
	c := r.SLR1Conflict()
	require.NotNil(t, c)
	assert.Equal(t, lr.ShiftReduce, c.Kind)
	assert.Equal(t, "+", c.Symbol.Name)
	x := r.Export()
	assert.False(t, x.IsSLR1)
	assert.Nil(t, x.SLRAction)
	assert.Contains(t, x.SLR1Conflict, "shift/reduce")
	v := r.Check([]string{"id"})
	assert.Nil(t, v.LL1)
	assert.Nil(t, v.SLR1)
}

func TestCheckText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	r, err := AnalyzeText("ExprLL", exprLL)
	require.NoError(t, err)
	v, err := r.CheckText("id+id*(id)")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "+", "id", "*", "(", "id", ")"}, v.Input)
	assert.True(t, v.LL1.Accepted)
	assert.True(t, v.SLR1.Accepted)
	v, err = r.CheckText("id ? id")
	require.NoError(t, err)
	assert.False(t, v.LL1.Accepted)
	assert.False(t, v.SLR1.Accepted)
}

func TestExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	r, err := AnalyzeText("ExprLL", exprLL)
	require.NoError(t, err)
	x := r.Export(r.Check([]string{"id"}))
	assert.Equal(t, []string{"(", "id"}, x.First["E"])
	assert.Equal(t, []string{"+", "ε"}, x.First["E'"])
	assert.Equal(t, []string{")", "$"}, x.Follow["E'"])
	assert.Equal(t, "E' -> ε", x.LL1Table["E'"]["$"])
	accepting, ok := x.SLRGoto[0]["E"]
	require.True(t, ok)
	assert.Equal(t, "acc", x.SLRAction[accepting]["$"])
	data, err := x.JSON()
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"first", "follow", "is_ll1", "is_slr1", "ll1_table", "slr_action", "slr_goto", "inputs"} {
		assert.Contains(t, decoded, key)
	}
}

func TestInvalidGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	_, err := AnalyzeText("Dup", "S -> a | b\nS -> a")
	var nerr *notation.Error
	assert.True(t, errors.As(err, &nerr))
	g, err := grammar.NewGrammar("Dup", []grammar.Definition{
		{LHS: "S", Alternatives: [][]string{{"a"}}},
		{LHS: "S", Alternatives: [][]string{{"a"}}},
	})
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, &grammar.Error{Kind: grammar.DuplicateProduction}))
}

func TestAnalyzeAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	sources := []Source{
		{Name: "Expr", Text: exprLR},
		{Name: "ExprLL", Text: exprLL},
		{Name: "Ambiguous", Text: ambiguous},
	}
	reports, err := AnalyzeAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for i, r := range reports {
		assert.Equal(t, sources[i].Name, r.Grammar().Name)
	}
	assert.Equal(t, []bool{false, true, false}, []bool{reports[0].IsLL1(), reports[1].IsLL1(), reports[2].IsLL1()})
	assert.Equal(t, []bool{true, true, false}, []bool{reports[0].IsSLR1(), reports[1].IsSLR1(), reports[2].IsSLR1()})
	//
	_, err = AnalyzeAll(context.Background(), append(sources, Source{Name: "Bad", Text: "S a"}))
	assert.Error(t, err)
}

func TestCheckTextReportsByteSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	r, err := AnalyzeText("ExprLL", exprLL)
	require.NoError(t, err)
	v, err := r.CheckText("id  + ")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "+"}, v.Input)
	for _, o := range []*Outcome{v.LL1, v.SLR1} {
		require.NotNil(t, o)
		require.NotNil(t, o.Reason)
		assert.Equal(t, 2, o.Reason.Position)
		assert.Equal(t, gramlab.Span{6, 6}, o.Reason.Span)
	}
}

func TestCheckFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramlab.analysis")
	defer teardown()
	//
	r, err := AnalyzeText("ExprLL", exprLL)
	require.NoError(t, err)
	v := r.CheckFields("id + id * id")
	assert.Equal(t, []string{"id", "+", "id", "*", "id"}, v.Input)
	assert.True(t, v.LL1.Accepted)
	assert.True(t, v.SLR1.Accepted)
	v = r.CheckFields("id +\tid $ id")
	assert.Equal(t, []string{"id", "+", "id"}, v.Input)
	assert.True(t, v.SLR1.Accepted)
	v = r.CheckFields("id ? id")
	assert.False(t, v.LL1.Accepted)
	assert.Equal(t, 1, v.SLR1.Reason.Position)
}
