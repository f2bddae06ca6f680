package store

import (
	"fmt"
	"sync"
)

// MemStore is an in-memory GlyphStore backed by a locked map. The zero
// value is not usable; call NewMemStore.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]Record)}
}

// Exists reports whether a record for name is present.
func (s *MemStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[name]
	return ok
}

// Get returns the record for name.
func (s *MemStore) Get(name string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[name]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return rec, nil
}

// Insert stores rec under rec.Name, replacing any existing record.
func (s *MemStore) Insert(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Name] = rec
	return nil
}

// Len returns the number of stored records.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
