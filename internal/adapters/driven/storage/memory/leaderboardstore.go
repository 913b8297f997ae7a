package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
)

// Ensure LeaderboardStore implements the interface.
var _ driven.LeaderboardStore = (*LeaderboardStore)(nil)

// LeaderboardStore is an in-memory implementation of driven.LeaderboardStore.
type LeaderboardStore struct {
	mu      sync.RWMutex
	entries []domain.ScoreEntry
}

// NewLeaderboardStore creates a new in-memory leaderboard store.
func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

// Save stores a score entry.
func (s *LeaderboardStore) Save(_ context.Context, entry domain.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Top returns the highest n scores, ordered by score descending.
func (s *LeaderboardStore) Top(_ context.Context, n int) ([]domain.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]domain.ScoreEntry, len(s.entries))
	copy(sorted, s.entries)
	// Stable keeps submission order among equal scores.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

// Prune drops every entry not among the keep highest scores.
func (s *LeaderboardStore) Prune(ctx context.Context, keep int) error {
	top, err := s.Top(ctx, keep)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = top
	return nil
}
