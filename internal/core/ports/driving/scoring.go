package driving

import (
	"context"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

// ScoringService tracks points for a training session and manages the
// leaderboard.
type ScoringService interface {
	// StartSession resets scoring state for a new session.
	StartSession(ctx context.Context)

	// RecordIntention adds a left/right intention sample (0-100 percent)
	// to the current instruction period.
	RecordIntention(ctx context.Context, left, right int)

	// ChangeInstruction closes the current instruction period, awarding
	// points when the transition qualifies, and opens a new period in mode.
	ChangeInstruction(ctx context.Context, mode domain.InstructionMode) error

	// Finish ends the session, applies the session bonus when earned, and
	// returns the final score.
	Finish(ctx context.Context) int

	// CurrentScore returns the running score.
	CurrentScore(ctx context.Context) int

	// Submit records the current score on the leaderboard under name.
	// It reports whether the entry made the leaderboard.
	Submit(ctx context.Context, name string) (bool, error)

	// Leaderboard returns the retained top scores, highest first.
	Leaderboard(ctx context.Context) ([]domain.ScoreEntry, error)

	// IsHighScore reports whether a score would make the leaderboard.
	IsHighScore(ctx context.Context, score int) (bool, error)
}
