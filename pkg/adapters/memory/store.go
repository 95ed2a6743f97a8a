// Package memory provides an in-memory RunStore, the default backend for CLI
// and test use.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/cinta/pkg/domain"
)

// Store implements ports.RunStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.RunResult
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.RunResult),
	}
}

// Save persists a copy of the result in memory.
func (s *Store) Save(ctx context.Context, runID string, result *domain.RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[runID] = copyResult(result)
	return nil
}

// Load retrieves a copy of the result so callers cannot mutate store state.
func (s *Store) Load(ctx context.Context, runID string) (*domain.RunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.data[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return copyResult(result), nil
}

// Delete removes the result.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, runID)
	return nil
}

// List returns stored run IDs, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func copyResult(result *domain.RunResult) *domain.RunResult {
	copied := *result
	copied.IDs = make([]string, len(result.IDs))
	copy(copied.IDs, result.IDs)
	return &copied
}
