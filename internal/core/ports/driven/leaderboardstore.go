package driven

import (
	"context"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

// LeaderboardStore persists score entries.
type LeaderboardStore interface {
	// Save stores a score entry.
	Save(ctx context.Context, entry domain.ScoreEntry) error

	// Top returns the highest n scores, ordered by score descending.
	// Entries with equal scores keep submission order.
	Top(ctx context.Context, n int) ([]domain.ScoreEntry, error)

	// Prune drops every entry not among the keep highest scores.
	Prune(ctx context.Context, keep int) error
}
