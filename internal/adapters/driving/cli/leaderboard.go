package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

var (
	leaderboardJSON bool
	leaderboardTop  int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top session scores",
	Long:  `Shows the retained top session scores, highest first.`,
	RunE:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().BoolVar(&leaderboardJSON, "json", false, "output entries as JSON")
	leaderboardCmd.Flags().IntVar(&leaderboardTop, "top", domain.LeaderboardSize,
		"maximum number of entries to show")
	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	entries, err := scoringService.Leaderboard(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if leaderboardTop >= 0 && leaderboardTop < len(entries) {
		entries = entries[:leaderboardTop]
	}

	if leaderboardJSON {
		return outputLeaderboardJSON(cmd, entries)
	}

	return outputLeaderboardTable(cmd, entries)
}

// leaderboardEntry is the JSON shape for a leaderboard record.
type leaderboardEntry struct {
	Rank       int       `json:"rank"`
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}

func outputLeaderboardJSON(cmd *cobra.Command, entries []domain.ScoreEntry) error {
	out := make([]leaderboardEntry, 0, len(entries))
	for i, entry := range entries {
		out = append(out, leaderboardEntry{
			Rank:       i + 1,
			Name:       entry.Name,
			Score:      entry.Score,
			RecordedAt: entry.RecordedAt,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputLeaderboardTable(cmd *cobra.Command, entries []domain.ScoreEntry) error {
	if len(entries) == 0 {
		cmd.Println("No scores recorded yet.")
		return nil
	}

	cmd.Println("Leaderboard:")
	cmd.Println()
	for i, entry := range entries {
		cmd.Printf("  %2d. %-*s %6d\n", i+1, domain.MaxPlayerNameLen, entry.Name, entry.Score)
	}

	return nil
}
