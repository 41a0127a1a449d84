package grammar

import (
	"strings"

	"golang.org/x/exp/slices"
)

// maxExpansions limits the work of Sentences for grammars with cycles of
// non-growing derivations (e.g., A -> B, B -> A).
const maxExpansions = 200000

// Sentences enumerates sentences of the language of g by leftmost derivation
// from the start symbol. Only sentences of at most maxLen terminals are
// produced, and at most maxCount of them (all, if maxCount <= 0).
// Sentences are returned shortest first, lexicographically within a length.
//
// Sentential forms are pruned when they contain more than maxLen terminals or
// grow longer than twice the sum of maxLen and the number of non-terminals. For grammars
// with long chains of nullable non-terminals this may miss some sentences;
// every sentence returned is in the language, though.
func Sentences(g *Grammar, maxLen, maxCount int) [][]string {
	limit := 2 * (maxLen + len(g.nonterminals))
	queue := [][]*Symbol{{g.start}}
	visited := map[string]struct{}{formKey(queue[0]): {}}
	found := map[string][]string{}
	for n := 0; len(queue) > 0 && n < maxExpansions; n++ {
		form := queue[0]
		queue = queue[1:]
		i := leftmostNonTerminal(form)
		if i < 0 {
			s := make([]string, len(form))
			for k, A := range form {
				s[k] = A.Name
			}
			found[strings.Join(s, " ")] = s
			if maxCount > 0 && len(found) >= maxCount {
				break
			}
			continue
		}
		for _, p := range g.alternatives[form[i]] {
			next := make([]*Symbol, 0, len(form)+len(p.rhs))
			next = append(next, form[:i]...)
			next = append(next, p.rhs...)
			next = append(next, form[i+1:]...)
			if len(next) > limit || countTerminals(next) > maxLen {
				continue
			}
			key := formKey(next)
			if _, ok := visited[key]; ok {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, next)
		}
	}
	sentences := make([][]string, 0, len(found))
	for _, s := range found {
		sentences = append(sentences, s)
	}
	slices.SortFunc(sentences, func(a, b []string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(strings.Join(a, " "), strings.Join(b, " "))
	})
	tracer().Debugf("enumerated %d sentences of length <= %d", len(sentences), maxLen)
	return sentences
}

func leftmostNonTerminal(form []*Symbol) int {
	for i, A := range form {
		if !A.IsTerminal() {
			return i
		}
	}
	return -1
}

func countTerminals(form []*Symbol) int {
	n := 0
	for _, A := range form {
		if A.IsTerminal() {
			n++
		}
	}
	return n
}

func formKey(form []*Symbol) string {
	var b strings.Builder
	for _, A := range form {
		b.WriteString(A.Name)
		b.WriteByte(0)
	}
	return b.String()
}
