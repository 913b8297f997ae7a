package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
)

// Ensure ModuleStore implements the interface.
var _ driven.ModuleStore = (*ModuleStore)(nil)

// ModuleStore is the in-memory implementation of driven.ModuleStore.
// It holds the ordered training-module list for one session; nothing is
// persisted. Entries stay unique and non-empty for the store's lifetime.
type ModuleStore struct {
	mu      sync.RWMutex
	entries []string
}

// NewModuleStore creates a module store populated from seed. The seed is
// trimmed and deduplicated, preserving the order of surviving entries.
func NewModuleStore(seed []string) *ModuleStore {
	return &ModuleStore{
		entries: domain.NormalizeSeed(seed),
	}
}

// RemoveAt removes and returns the entry at index.
func (s *ModuleStore) RemoveAt(_ context.Context, index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return "", fmt.Errorf("%w: %d (count %d)", domain.ErrInvalidIndex, index, len(s.entries))
	}

	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return removed, nil
}

// Clear removes all entries. Idempotent.
func (s *ModuleStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.entries[:0]
	return nil
}

// Add appends a trimmed entry, rejecting empty names and duplicates.
func (s *ModuleStore) Add(_ context.Context, name string) error {
	name = domain.NormalizeModuleName(name)
	if name == "" {
		return domain.ErrEmptyModule
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.entries {
		if existing == name {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateModule, name)
		}
	}

	s.entries = append(s.entries, name)
	return nil
}

// Count returns the current number of entries.
func (s *ModuleStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// All returns a snapshot copy of the entries in order.
func (s *ModuleStore) All(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]string, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot, nil
}

// At returns the entry at index, or false when out of range.
func (s *ModuleStore) At(_ context.Context, index int) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.entries) {
		return "", false, nil
	}
	return s.entries[index], true, nil
}
