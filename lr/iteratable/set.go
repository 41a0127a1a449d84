package iteratable

// Set is a set of comparable items with a built-in cursor for iteration.
type Set struct {
	items  []interface{}
	index  map[interface{}]struct{}
	cursor int
}

// NewSet creates an empty set. Capacity is a hint for the expected size.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		items: make([]interface{}, 0, capacity),
		index: make(map[interface{}]struct{}, capacity),
	}
}

// Add inserts items into the set. Returns true if at least one of them has
// not been present before.
func (s *Set) Add(items ...interface{}) bool {
	added := false
	for _, x := range items {
		if _, ok := s.index[x]; ok {
			continue
		}
		s.index[x] = struct{}{}
		s.items = append(s.items, x)
		added = true
	}
	return added
}

// Contains checks for membership of an item.
func (s *Set) Contains(x interface{}) bool {
	_, ok := s.index[x]
	return ok
}

// Size returns the number of items in the set.
func (s *Set) Size() int {
	return len(s.items)
}

// Empty is true for sets without items.
func (s *Set) Empty() bool {
	return len(s.items) == 0
}

// Values returns the items of the set in insertion order.
func (s *Set) Values() []interface{} {
	return append([]interface{}(nil), s.items...)
}

// Copy creates a shallow copy of the set. The cursor is not copied.
func (s *Set) Copy() *Set {
	c := NewSet(len(s.items))
	c.Add(s.items...)
	return c
}

// Union adds all items of other to s. Returns s.
func (s *Set) Union(other *Set) *Set {
	if other != nil {
		s.Add(other.items...)
	}
	return s
}

// Difference removes all items of other from s. Returns s.
func (s *Set) Difference(other *Set) *Set {
	if other == nil || other.Empty() {
		return s
	}
	kept := s.items[:0]
	for _, x := range s.items {
		if other.Contains(x) {
			delete(s.index, x)
			continue
		}
		kept = append(kept, x)
	}
	s.items = kept
	if s.cursor > len(s.items) {
		s.cursor = len(s.items) + 1
	}
	return s
}

// Equals is true if s and other contain the same items, in any order.
func (s *Set) Equals(other *Set) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	for _, x := range s.items {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// Each calls f for every item, in insertion order.
func (s *Set) Each(f func(interface{})) {
	for _, x := range s.items {
		f(x)
	}
}

// --- Iteration -------------------------------------------------------------

// IterateOnce resets the cursor. Use it together with Next and Item:
//
//    S.IterateOnce()
//    for S.Next() {
//        x := S.Item()
//        …  // may add items to S, they will be visited, too
//    }
func (s *Set) IterateOnce() {
	s.cursor = 0
}

// Next advances the cursor. It returns false if no items are left; the
// cursor is exhausted then and Item returns nil until IterateOnce is called.
func (s *Set) Next() bool {
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) + 1
		return false
	}
	s.cursor++
	return true
}

// Item returns the item under the cursor.
func (s *Set) Item() interface{} {
	if s.cursor == 0 || s.cursor > len(s.items) {
		return nil
	}
	return s.items[s.cursor-1]
}
