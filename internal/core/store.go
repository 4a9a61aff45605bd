package core

import "sync"

// Store is an append-only, insertion-ordered list of records belonging to
// one session. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a record to the end of the store. It never fails and never
// deduplicates.
func (s *Store) Append(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// List returns a copy of all records in insertion order.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
