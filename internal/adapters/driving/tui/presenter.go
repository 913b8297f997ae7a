package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
)

// Ensure Presenter implements the interface.
var _ driven.Presenter = (*Presenter)(nil)

// Presenter bridges the session's outbound port into the Bubbletea message
// loop. Every presenter call becomes a typed message delivered to the
// running program.
type Presenter struct {
	send func(tea.Msg)
}

// NewPresenter creates a presenter that forwards to send, typically
// tea.Program.Send.
func NewPresenter(send func(tea.Msg)) *Presenter {
	return &Presenter{send: send}
}

// RenderList forwards a full module list snapshot.
func (p *Presenter) RenderList(entries []string) {
	snapshot := make([]string, len(entries))
	copy(snapshot, entries)
	p.send(messages.ListRendered{Entries: snapshot})
}

// SetStatus forwards the derived status line.
func (p *Presenter) SetStatus(text string) {
	p.send(messages.StatusChanged{Text: text})
}

// ShowWarning forwards a warning for the active view to display.
func (p *Presenter) ShowWarning(title, message string) {
	p.send(messages.WarningRaised{Title: title, Message: message})
}
