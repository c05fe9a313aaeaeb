package utils

// OrderedSet is a string set that preserves first-insertion order. It backs
// catalog deduplication and the matched/unmatched split during reconciliation.
type OrderedSet struct {
	seen  map[string]struct{}
	order []string
}

// NewOrderedSet creates a set seeded with the given values; duplicates are
// ignored.
func NewOrderedSet(values ...string) *OrderedSet {
	s := &OrderedSet{seen: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add returns true if the value was newly added, false if already present.
func (s *OrderedSet) Add(v string) bool {
	if _, exists := s.seen[v]; exists {
		return false
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Contains reports whether the value is a member.
func (s *OrderedSet) Contains(v string) bool {
	_, exists := s.seen[v]
	return exists
}

// Remove returns true if the value was present and has been removed.
func (s *OrderedSet) Remove(v string) bool {
	if _, exists := s.seen[v]; !exists {
		return false
	}
	delete(s.seen, v)
	return true
}

// Values returns the remaining members in insertion order.
func (s *OrderedSet) Values() []string {
	out := make([]string, 0, len(s.seen))
	for _, v := range s.order {
		if _, ok := s.seen[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Size returns the number of members.
func (s *OrderedSet) Size() int {
	return len(s.seen)
}
