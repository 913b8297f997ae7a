// Package leaderboard provides the high-score view for the TUI.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/styles"
	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driving"
)

// View is the leaderboard view.
type View struct {
	styles  *styles.Styles
	scoring driving.ScoringService

	entries []domain.ScoreEntry
	loaded  bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new leaderboard view.
func NewView(s *styles.Styles, scoring driving.ScoringService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		scoring: scoring,
		width:   80,
		height:  24,
	}
}

// Init loads the leaderboard.
func (v *View) Init() tea.Cmd {
	return v.loadCmd()
}

// loadCmd returns a command that loads the retained top scores.
func (v *View) loadCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := v.scoring.Leaderboard(context.Background())
		return messages.LeaderboardLoaded{Entries: entries, Err: err}
	}
}

// Update handles messages for the leaderboard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.LeaderboardLoaded:
		v.entries = msg.Entries
		v.err = msg.Err
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			v.loaded = false
			return v, v.loadCmd()
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	return v, nil
}

// View renders the leaderboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Leaderboard"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No scores recorded yet."))
		b.WriteString("\n")
	default:
		for i, entry := range v.entries {
			rank := v.styles.Subtitle.Render(fmt.Sprintf("%2d.", i+1))
			name := v.styles.Normal.Render(fmt.Sprintf("%-20s", entry.Name))
			score := v.styles.Success.Render(fmt.Sprintf("%6d", entry.Score))
			b.WriteString(fmt.Sprintf("%s %s %s\n", rank, name, score))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[r] Refresh  [esc] Menu"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the loaded leaderboard entries.
func (v *View) Entries() []domain.ScoreEntry {
	return v.entries
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
