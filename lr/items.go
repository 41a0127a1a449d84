package lr

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr/iteratable"
)

// Item is an LR(0) item: a production together with a dot position
// 0 ≤ dot ≤ len(RHS). Items are comparable values.
type Item struct {
	prod *grammar.Production
	dot  int
}

// StartItem returns the item with the dot at the start of production p.
func StartItem(p *grammar.Production) Item {
	return Item{prod: p}
}

// Production returns the production of an item.
func (i Item) Production() *grammar.Production {
	return i.prod
}

// Dot returns the dot position of an item.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, or nil if the item is complete.
func (i Item) PeekSymbol() *grammar.Symbol {
	return i.prod.At(i.dot)
}

// Advance returns the item with the dot moved one symbol to the right.
// Advancing a complete item is a no-op.
func (i Item) Advance() Item {
	if i.dot < i.prod.Len() {
		return Item{prod: i.prod, dot: i.dot + 1}
	}
	return i
}

// Prefix returns the symbols left of the dot.
func (i Item) Prefix() []*grammar.Symbol {
	return i.prod.RHS()[:i.dot]
}

// IsComplete is true if the dot is at the end of the production.
func (i Item) IsComplete() bool {
	return i.dot >= i.prod.Len()
}

func (i Item) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s ->", i.prod.LHS)
	for k, A := range i.prod.RHS() {
		if k == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	return b.String()
}

// --- Item sets -------------------------------------------------------------

func newItemSet() *iteratable.Set {
	return iteratable.NewSet(8)
}

func asItem(x interface{}) Item {
	return x.(Item)
}

// sortedItems returns the items of S ordered by (production serial, dot).
func sortedItems(S *iteratable.Set) []Item {
	items := make([]Item, 0, S.Size())
	S.Each(func(x interface{}) {
		items = append(items, asItem(x))
	})
	sort.Slice(items, func(a, b int) bool {
		if items[a].prod.Serial != items[b].prod.Serial {
			return items[a].prod.Serial < items[b].prod.Serial
		}
		return items[a].dot < items[b].dot
	})
	return items
}

// Canonical form of an item set, input for structhash.
type itemKey struct {
	Rule int
	Dot  int
}

type itemSetKey struct {
	Items []itemKey
}

// itemSetHash computes a key for an item set which is independent of the
// insertion order of the items. Equal keys denote structurally equal sets.
func itemSetHash(S *iteratable.Set) string {
	items := sortedItems(S)
	key := itemSetKey{Items: make([]itemKey, len(items))}
	for k, i := range items {
		key.Items[k] = itemKey{Rule: i.prod.Serial, Dot: i.dot}
	}
	h, err := structhash.Hash(key, 1)
	if err != nil {
		panic(fmt.Sprintf("lr: cannot hash item set: %v", err))
	}
	return h
}

func itemSetString(S *iteratable.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	for k, i := range sortedItems(S) {
		if k > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper, tracing the items of S.
func Dump(S *iteratable.Set) {
	for _, i := range sortedItems(S) {
		tracer().Debugf("    %v", i)
	}
}
