package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/gramlab/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprLL = `# expression grammar without left recursion
E  -> T E'
E' -> + T E' | ε
T  -> F T'
T' -> * F T' | ε
F  -> ( E ) | id
`

func writeGrammar(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "expr.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSampleCommand(t *testing.T) {
	path := writeGrammar(t, exprLL)
	out, err := run(t, "sample", path, "-n", "5", "-l", "1")
	require.NoError(t, err)
	assert.Equal(t, "id\n", out)
}

func TestCheckCommand(t *testing.T) {
	path := writeGrammar(t, exprLL)
	out, err := run(t, "check", "--json", path, "id+id", "id+")
	require.NoError(t, err)
	var verdicts []*analysis.Verdict
	require.NoError(t, json.Unmarshal([]byte(out), &verdicts))
	require.Len(t, verdicts, 2)
	assert.True(t, verdicts[0].LL1.Accepted)
	assert.True(t, verdicts[0].SLR1.Accepted)
	assert.False(t, verdicts[1].LL1.Accepted)
	assert.Equal(t, "$", verdicts[1].SLR1.Reason.Token)
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeGrammar(t, exprLL)
	dot := filepath.Join(t.TempDir(), "cfsm.dot")
	out, err := run(t, "analyze", "--dot", dot, path)
	require.NoError(t, err)
	assert.Contains(t, out, "E' -> + T E'")
	assert.Contains(t, out, "{ ( id }")
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph"))
}

func TestMissingGrammarFile(t *testing.T) {
	_, err := run(t, "sample", filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}

func TestCheckCommandWritesVerdictsToOutput(t *testing.T) {
	path := writeGrammar(t, exprLL)
	out, err := run(t, "check", "--json=false", "--symbols", path, "id + id")
	require.NoError(t, err)
	assert.Contains(t, out, `LL(1) accepts "id + id"`)
	assert.Contains(t, out, `SLR(1) accepts "id + id"`)
}
