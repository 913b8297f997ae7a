// Package modules provides the training-module list view for the TUI.
//
// The view never mutates the list itself. Key presses dispatch requests to
// the session service; the rendered list, status line and warnings all
// arrive as messages pushed through the session's presenter.
package modules

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/styles"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driving"
)

// warning is a presenter warning waiting to be dismissed.
type warning struct {
	title   string
	message string
}

// View is the training-module list view.
type View struct {
	styles  *styles.Styles
	session driving.SessionService

	// entries is the last snapshot pushed by the session.
	entries []string

	// status is the last status line pushed by the session.
	status string

	selected   int
	warning    *warning
	err        error
	addEnabled bool

	// adding is true while the add input is focused.
	adding   bool
	addInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new module list view.
func NewView(s *styles.Styles, session driving.SessionService, addEnabled bool) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	addInput := textinput.New()
	addInput.Placeholder = "Module name"
	addInput.CharLimit = 64

	return &View{
		styles:     s,
		session:    session,
		addEnabled: addEnabled,
		addInput:   addInput,
		width:      80,
		height:     24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the module list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.ListRendered:
		v.entries = msg.Entries
		if v.selected >= len(v.entries) {
			v.selected = len(v.entries) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		return v, nil

	case messages.StatusChanged:
		v.status = msg.Text
		return v, nil

	case messages.WarningRaised:
		v.warning = &warning{title: msg.Title, message: msg.Message}
		return v, nil

	case messages.MutationDone:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

// handleKey dispatches key presses.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	// A pending warning is dismissed by the next key press.
	if v.warning != nil {
		v.warning = nil
		return v, nil
	}

	if v.adding {
		return v.handleAddKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.entries)-1 {
			v.selected++
		}
		return v, nil

	case "d", "delete":
		return v, v.removeCmd(v.selected)

	case "c":
		return v, v.clearCmd()

	case "a":
		if !v.addEnabled {
			return v, nil
		}
		v.adding = true
		v.addInput.Reset()
		return v, v.addInput.Focus()

	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleAddKey handles keys while the add input is focused.
func (v *View) handleAddKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.adding = false
		v.addInput.Blur()
		return v, nil

	case tea.KeyEnter:
		name := v.addInput.Value()
		v.adding = false
		v.addInput.Blur()
		return v, v.addCmd(name)
	}

	var cmd tea.Cmd
	v.addInput, cmd = v.addInput.Update(msg)
	return v, cmd
}

// removeCmd requests removal of the entry at index.
func (v *View) removeCmd(index int) tea.Cmd {
	return func() tea.Msg {
		return messages.MutationDone{Err: v.session.RemoveAt(context.Background(), index)}
	}
}

// clearCmd requests removal of every entry.
func (v *View) clearCmd() tea.Cmd {
	return func() tea.Msg {
		return messages.MutationDone{Err: v.session.ClearAll(context.Background())}
	}
}

// addCmd requests insertion of a new entry.
func (v *View) addCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return messages.MutationDone{Err: v.session.Add(context.Background(), name)}
	}
}

// View renders the module list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Training Modules"))
	b.WriteString("\n\n")

	if v.warning != nil {
		b.WriteString(v.styles.Warning.Render(v.warning.title))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(v.warning.message))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("[any key] dismiss"))
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No modules configured."))
		b.WriteString("\n")
	} else {
		for i, entry := range v.entries {
			cursor := "  "
			line := v.styles.Normal.Render(entry)
			if i == v.selected {
				cursor = "> "
				line = v.styles.Selected.Render(entry)
			}
			b.WriteString(cursor + line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	if v.adding {
		b.WriteString(v.styles.InputField.Render(v.addInput.View()))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("[enter] add  [esc] cancel"))
		return b.String()
	}

	hints := "[j/k] Navigate  [d] Remove  [c] Clear All  [esc] Menu"
	if v.addEnabled {
		hints = "[j/k] Navigate  [d] Remove  [c] Clear All  [a] Add  [esc] Menu"
	}
	b.WriteString(v.styles.Muted.Render(hints))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the last rendered snapshot.
func (v *View) Entries() []string {
	return v.entries
}

// Status returns the last pushed status line.
func (v *View) Status() string {
	return v.status
}

// Selected returns the cursor position.
func (v *View) Selected() int {
	return v.selected
}

// Warning returns the pending warning title and message, if any.
func (v *View) Warning() (string, string, bool) {
	if v.warning == nil {
		return "", "", false
	}
	return v.warning.title, v.warning.message, true
}

// Err returns the last mutation error.
func (v *View) Err() error {
	return v.err
}
