package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
)

// leaderboardStore implements driven.LeaderboardStore.
type leaderboardStore struct {
	store *Store
}

var _ driven.LeaderboardStore = (*leaderboardStore)(nil)

// Save stores or updates a score entry.
func (s *leaderboardStore) Save(ctx context.Context, entry domain.ScoreEntry) error {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO scores (id, name, score, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			score = excluded.score,
			recorded_at = excluded.recorded_at
	`, entry.ID, entry.Name, entry.Score, entry.RecordedAt)
	if err != nil {
		return fmt.Errorf("saving score: %w", err)
	}

	return nil
}

// Top returns up to n entries ordered by score, highest first. Entries with
// equal scores rank older submissions first.
func (s *leaderboardStore) Top(ctx context.Context, n int) ([]domain.ScoreEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, score, recorded_at
		FROM scores
		ORDER BY score DESC, recorded_at ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("querying scores: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScoreEntry
	for rows.Next() {
		var entry domain.ScoreEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Score, &entry.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning score: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scores: %w", err)
	}

	return entries, nil
}

// Prune deletes every entry outside the top keep scores.
func (s *leaderboardStore) Prune(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM scores
		WHERE id NOT IN (
			SELECT id FROM scores
			ORDER BY score DESC, recorded_at ASC
			LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning scores: %w", err)
	}

	return nil
}
