// Package memory keeps cache entries in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"
)

// Store is a map-backed CacheStore
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// New creates an empty Store
func New() *Store {
	return &Store{entries: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return slices.Clone(v), ok, nil
}

// Put replaces the value stored under key
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = slices.Clone(value)
	return nil
}
