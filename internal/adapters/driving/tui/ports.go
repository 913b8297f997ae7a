// Package tui provides an interactive terminal user interface for the
// AiRobo trainer. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session manages the training-module list.
	Session driving.SessionService

	// Scoring tracks session points and the leaderboard.
	Scoring driving.ScoringService

	// Settings manages headset and experiment configuration.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionService,
	scoring driving.ScoringService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Session:  session,
		Scoring:  scoring,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Scoring == nil {
		return ErrMissingScoringService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
