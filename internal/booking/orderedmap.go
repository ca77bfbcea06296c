package booking

// orderedSet keeps string keys in first-seen order. Go maps iterate in
// random order, so anything that feeds display sequencing goes through
// this instead.
type orderedSet struct {
	keys  []string
	index map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]struct{})}
}

// Add inserts the key if it has not been seen yet.
func (s *orderedSet) Add(key string) {
	if _, ok := s.index[key]; ok {
		return
	}
	s.index[key] = struct{}{}
	s.keys = append(s.keys, key)
}

// Keys returns the keys in insertion order.
func (s *orderedSet) Keys() []string {
	return s.keys
}
