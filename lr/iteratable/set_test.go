package iteratable

import "testing"

func TestSetOperations(t *testing.T) {
	S := NewSet(0)
	if !S.Add(1, 2, 3) || S.Add(2) {
		t.Errorf("Expected Add to report new items only")
	}
	T := NewSet(3)
	T.Add(3, 1, 2)
	if !S.Equals(T) || !T.Equals(S) {
		t.Errorf("Expected sets to be equal regardless of order")
	}
	U := S.Copy().Difference(T)
	if !U.Empty() {
		t.Errorf("Expected difference to be empty, has %d items", U.Size())
	}
	S.Union(NewSet(1)).Add(4)
	if S.Equals(T) || S.Size() != 4 {
		t.Errorf("Expected S to have 4 items, has %d", S.Size())
	}
	if T.Size() != 3 {
		t.Errorf("Expected copy to decouple sets")
	}
}

func TestIterationVisitsAddedItems(t *testing.T) {
	S := NewSet(1)
	S.Add(1)
	S.IterateOnce()
	visited := 0
	for S.Next() {
		n := S.Item().(int)
		visited++
		if n < 5 {
			S.Add(n + 1)
		}
	}
	if visited != 5 {
		t.Errorf("Expected iteration to visit 5 items, visited %d", visited)
	}
	if S.Item() != nil {
		t.Errorf("Expected cursor to be exhausted")
	}
	if S.Next() || S.Item() != nil {
		t.Errorf("Expected exhausted cursor to stay exhausted")
	}
	S.IterateOnce()
	if !S.Next() || S.Item() != 1 {
		t.Errorf("Expected IterateOnce to restart iteration at item 1, is %v", S.Item())
	}
}
