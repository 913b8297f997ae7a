package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driving"
	"github.com/airobo-labs/trainer-cli/internal/logger"
)

// Ensure Scoring implements the interface.
var _ driving.ScoringService = (*Scoring)(nil)

// intentionSample is one left/right intention reading (0-100 percent).
type intentionSample struct {
	left  int
	right int
}

// period is a completed, scored instruction period.
type period struct {
	mode   domain.InstructionMode
	avg    float64
	points int
}

// Scoring tracks points for a training session and manages the leaderboard.
// Instruction periods are closed by ChangeInstruction; only active
// (left/right) periods with at least one sample award points.
type Scoring struct {
	store driven.LeaderboardStore

	mu      sync.Mutex
	started bool
	score   int
	mode    domain.InstructionMode
	samples []intentionSample
	periods []period
}

// NewScoring creates a scoring service over the given leaderboard store.
func NewScoring(store driven.LeaderboardStore) *Scoring {
	return &Scoring{store: store}
}

// StartSession resets scoring state for a new session. Sessions start in
// relax mode.
func (s *Scoring) StartSession(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = true
	s.score = 0
	s.mode = domain.ModeRelax
	s.samples = nil
	s.periods = nil
}

// RecordIntention adds an intention sample to the current period.
// Samples outside a running session are dropped.
func (s *Scoring) RecordIntention(_ context.Context, left, right int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.samples = append(s.samples, intentionSample{left: left, right: right})
}

// ChangeInstruction closes the current period and opens a new one in mode.
// Points are awarded when the closed period was an active mode, the
// transition qualifies, and at least one sample was recorded.
func (s *Scoring) ChangeInstruction(_ context.Context, mode domain.InstructionMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: instruction mode %q", domain.ErrInvalidInput, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	if s.mode.IsActive() && s.mode.AwardsOnTransition(mode) && len(s.samples) > 0 {
		avg := s.periodAverageLocked()
		points := domain.PointsForIntention(avg)
		s.score += points
		s.periods = append(s.periods, period{mode: s.mode, avg: avg, points: points})
		logger.Debug("period %s closed: avg %.1f, %d points", s.mode, avg, points)
	}

	s.mode = mode
	s.samples = nil
	return nil
}

// Finish ends the session and returns the final score. A session whose
// active-period averages together exceed the bonus threshold earns the
// session bonus.
func (s *Scoring) Finish(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return s.score
	}
	s.started = false

	var sum float64
	var active int
	for _, p := range s.periods {
		if p.mode.IsActive() {
			sum += p.avg
			active++
		}
	}
	if active > 0 && sum/float64(active) > domain.SessionBonusThreshold {
		s.score += domain.SessionBonusPoints
		logger.Debug("session bonus awarded: %d points", domain.SessionBonusPoints)
	}

	return s.score
}

// CurrentScore returns the running score.
func (s *Scoring) CurrentScore(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Submit records the current score on the leaderboard under name and reports
// whether the entry survived the top-N cut.
func (s *Scoring) Submit(ctx context.Context, name string) (bool, error) {
	name = domain.NormalizeModuleName(name)
	if name == "" {
		return false, fmt.Errorf("%w: player name is empty", domain.ErrInvalidInput)
	}
	if len(name) > domain.MaxPlayerNameLen {
		return false, fmt.Errorf("%w: player name longer than %d characters",
			domain.ErrInvalidInput, domain.MaxPlayerNameLen)
	}

	s.mu.Lock()
	score := s.score
	s.mu.Unlock()

	entry := domain.ScoreEntry{
		ID:         uuid.NewString(),
		Name:       name,
		Score:      score,
		RecordedAt: time.Now().UTC(),
	}

	if err := s.store.Save(ctx, entry); err != nil {
		return false, fmt.Errorf("saving score: %w", err)
	}
	if err := s.store.Prune(ctx, domain.LeaderboardSize); err != nil {
		return false, fmt.Errorf("pruning leaderboard: %w", err)
	}

	top, err := s.store.Top(ctx, domain.LeaderboardSize)
	if err != nil {
		return false, fmt.Errorf("reading leaderboard: %w", err)
	}
	for _, e := range top {
		if e.ID == entry.ID {
			return true, nil
		}
	}
	return false, nil
}

// Leaderboard returns the retained top scores, highest first.
func (s *Scoring) Leaderboard(ctx context.Context) ([]domain.ScoreEntry, error) {
	return s.store.Top(ctx, domain.LeaderboardSize)
}

// IsHighScore reports whether a score would make the leaderboard.
func (s *Scoring) IsHighScore(ctx context.Context, score int) (bool, error) {
	top, err := s.store.Top(ctx, domain.LeaderboardSize)
	if err != nil {
		return false, fmt.Errorf("reading leaderboard: %w", err)
	}
	if len(top) < domain.LeaderboardSize {
		return true, nil
	}
	return score > top[len(top)-1].Score, nil
}

// periodAverageLocked averages the relevant side of the current period's
// samples. Caller must hold s.mu and ensure the period mode is active.
func (s *Scoring) periodAverageLocked() float64 {
	var sum int
	for _, sample := range s.samples {
		if s.mode == domain.ModeLeft {
			sum += sample.left
		} else {
			sum += sample.right
		}
	}
	return float64(sum) / float64(len(s.samples))
}
