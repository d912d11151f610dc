package attrs

import (
	"sort"
)

// Store is the keyed attribute container backing a Model.
//
// Keys are exactly the attributes explicitly set: an absent key is
// distinct from a key holding nil. A Store starts empty and is only ever
// discarded whole.
type Store struct {
	values map[string]any
}

// NewStore returns an empty attribute store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Get returns the raw value stored under name and whether it is present.
func (s *Store) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name, creating the key if absent.
func (s *Store) Set(name string, value any) {
	s.values[name] = value
}

// Has reports whether name is present, even when its value is nil.
func (s *Store) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Unset removes name from the store. Removing an absent key is a no-op.
func (s *Store) Unset(name string) {
	delete(s.values, name)
}

// Keys returns the stored attribute names, sorted for deterministic
// iteration.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored attributes.
func (s *Store) Len() int {
	return len(s.values)
}

// Raw returns a shallow copy of the underlying mapping.
func (s *Store) Raw() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent store with the same attributes.
func (s *Store) Clone() *Store {
	return &Store{values: s.Raw()}
}
