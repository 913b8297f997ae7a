// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewModules is the training-module list view.
	ViewModules
	// ViewLeaderboard is the high-score view.
	ViewLeaderboard
	// ViewSettings is the headset settings view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewModules:
		return "modules"
	case ViewLeaderboard:
		return "leaderboard"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ListRendered carries a full snapshot of the module list from the session.
type ListRendered struct {
	Entries []string
}

// StatusChanged carries the derived status line from the session.
type StatusChanged struct {
	Text string
}

// WarningRaised signals a non-fatal problem the user should see.
type WarningRaised struct {
	Title   string
	Message string
}

// MutationDone signals that a remove, clear or add request finished.
// The session pushes the resulting list state separately.
type MutationDone struct {
	Err error
}

// LeaderboardLoaded carries the retained top scores.
type LeaderboardLoaded struct {
	Entries []domain.ScoreEntry
	Err     error
}

// HeadsetLoaded carries the current headset settings.
type HeadsetLoaded struct {
	Settings domain.HeadsetSettings
	Err      error
}

// HeadsetSaved signals headset settings were persisted.
type HeadsetSaved struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
