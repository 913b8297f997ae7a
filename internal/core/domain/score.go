package domain

import "time"

const (
	// LeaderboardSize is the number of entries the leaderboard retains.
	LeaderboardSize = 10

	// MaxPlayerNameLen is the longest accepted player name.
	MaxPlayerNameLen = 20

	// SessionBonusPoints is awarded when the overall active-period average
	// intention exceeds SessionBonusThreshold at the end of a session.
	SessionBonusPoints = 200

	// SessionBonusThreshold is the overall average intention (percent)
	// required for the session bonus.
	SessionBonusThreshold = 90.0
)

// ScoreEntry is a single leaderboard record.
type ScoreEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Name is the player name, trimmed, at most MaxPlayerNameLen characters.
	Name string

	// Score is the total points for the session.
	Score int

	// RecordedAt is when the score was submitted.
	RecordedAt time.Time
}

// PointsForIntention converts the average intention of one instruction period
// (0-100 percent) into points.
func PointsForIntention(avg float64) int {
	switch {
	case avg >= 90:
		return 100
	case avg >= 80:
		return 75
	case avg >= 70:
		return 50
	case avg >= 60:
		return 25
	case avg >= 50:
		return 10
	default:
		return 0
	}
}
