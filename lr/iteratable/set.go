package iteratable

// Set is an insertion-ordered, destructively-mutable set of arbitrary
// comparable values. The insertion order is preserved and used for
// deterministic iteration: callers that build conflict reports or other
// output depending on enumeration order get reproducible results across
// runs.
type Set struct {
	order     []interface{}
	index     map[interface{}]int
	cursor    int
	iterating bool
}

// New creates a Set containing the given initial items.
func New(items ...interface{}) *Set {
	s := &Set{index: make(map[interface{}]int)}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts x into the set, returning true if it was not already present.
func (s *Set) Add(x interface{}) bool {
	if _, ok := s.index[x]; ok {
		return false
	}
	s.index[x] = len(s.order)
	s.order = append(s.order, x)
	return true
}

// Contains reports whether x is a member of the set.
func (s *Set) Contains(x interface{}) bool {
	_, ok := s.index[x]
	return ok
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	return len(s.order)
}

// Empty reports whether the set has no elements.
func (s *Set) Empty() bool {
	return len(s.order) == 0
}

// Values returns a snapshot slice of the set's elements, in insertion order.
func (s *Set) Values() []interface{} {
	out := make([]interface{}, len(s.order))
	copy(out, s.order)
	return out
}

// Each calls f once for every element, in insertion order. Unlike
// IterateOnce/Next, it operates on a snapshot and is safe even if f
// mutates s; elements added by f are not visited.
func (s *Set) Each(f func(interface{})) {
	for _, v := range s.Values() {
		f(v)
	}
}

// Copy returns a new Set with the same elements, in the same order.
func (s *Set) Copy() *Set {
	c := New()
	for _, v := range s.order {
		c.Add(v)
	}
	return c
}

// Union merges other into s, in place, and returns s.
func (s *Set) Union(other *Set) *Set {
	for _, v := range other.order {
		s.Add(v)
	}
	return s
}

// Difference returns a new Set holding the elements of s that are not in
// other. It does not modify s or other.
func (s *Set) Difference(other *Set) *Set {
	d := New()
	for _, v := range s.order {
		if !other.Contains(v) {
			d.Add(v)
		}
	}
	return d
}

// Equals reports whether s and other contain exactly the same elements,
// independent of order.
func (s *Set) Equals(other *Set) bool {
	if other == nil || len(s.order) != len(other.order) {
		return false
	}
	for _, v := range s.order {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// IterateOnce (re)starts an iteration over s. Call Next to advance.
func (s *Set) IterateOnce() {
	s.cursor = -1
	s.iterating = true
}

// Next advances the iteration started by IterateOnce and reports whether
// there is a current item to read with Item. Because the iterator walks
// the live backing slice by index, elements Union'd or Added to s during
// the loop are visited before the loop ends; this is what makes closure
// fixpoints expressible as a single pass.
func (s *Set) Next() bool {
	if !s.iterating {
		s.IterateOnce()
	}
	s.cursor++
	return s.cursor < len(s.order)
}

// Item returns the element at the iterator's current position. Valid only
// after a call to Next that returned true.
func (s *Set) Item() interface{} {
	return s.order[s.cursor]
}
