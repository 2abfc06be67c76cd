// internal/ratestore/memory.go
package ratestore

import (
	"context"
	"sync"

	"github.com/lilshrooms/frankie/internal/rates"
)

// MemoryStore is an in-process Store for tests and offline runs.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot []rates.CanonicalRate
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveSnapshot(_ context.Context, snapshot []rates.CanonicalRate) error {
	cp := make([]rates.CanonicalRate, len(snapshot))
	copy(cp, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = cp
	return nil
}

func (s *MemoryStore) CurrentRates(_ context.Context) ([]rates.CanonicalRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, nil
	}
	cp := make([]rates.CanonicalRate, len(s.snapshot))
	copy(cp, s.snapshot)
	return cp, nil
}
