package knowledge

import "sync/atomic"

// Store holds the currently active knowledge base and allows replacing
// it atomically while queries are in flight. Readers always observe a
// complete base, never a partially rebuilt one.
type Store struct {
	current atomic.Pointer[Base]
}

// NewStore creates a store seeded with the given base. A nil base is
// replaced by an empty one.
func NewStore(base *Base) *Store {
	if base == nil {
		base = &Base{}
	}
	s := &Store{}
	s.current.Store(base)
	return s
}

// Current returns the active base.
func (s *Store) Current() *Base {
	return s.current.Load()
}

// Replace swaps in a new base. Queries already running continue against
// the base they loaded.
func (s *Store) Replace(base *Base) {
	if base == nil {
		base = &Base{}
	}
	s.current.Store(base)
}
