package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	view := NewView(nil)
	assert.Equal(t, 0, view.Selected())
}

func TestView_Navigation(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	view, _ = view.Update(key("j"))
	assert.Equal(t, 1, view.Selected())

	view, _ = view.Update(key("k"))
	assert.Equal(t, 0, view.Selected())

	// Does not move past the ends
	view, _ = view.Update(key("k"))
	assert.Equal(t, 0, view.Selected())
}

func TestView_SelectNavigates(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, messages.ViewChanged{View: messages.ViewModules}, msg)
}

func TestView_QuitItem(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	// Move to the last item (Quit)
	for i := 0; i < 4; i++ {
		view, _ = view.Update(key("j"))
	}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_QKeyQuits(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	_, cmd := view.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_Render(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	out := view.View()
	assert.Contains(t, out, "AiRobo Trainer")
	assert.Contains(t, out, "Training Modules")
	assert.Contains(t, out, "Leaderboard")
	assert.Contains(t, out, "Settings")
}
