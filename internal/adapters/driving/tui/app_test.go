package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := newTestPorts()
	ports.Session = nil

	_, err := NewApp(ports)
	assert.ErrorIs(t, err, ErrMissingSessionService)
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated := model.(*App)

	assert.True(t, updated.Ready())
}

func TestApp_ViewChanged(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewModules})
	updated := model.(*App)

	assert.Equal(t, messages.ViewModules, updated.CurrentView())
}

func TestApp_ViewChanged_LeaderboardLoads(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.ViewChanged{View: messages.ViewLeaderboard})
	updated := model.(*App)

	assert.Equal(t, messages.ViewLeaderboard, updated.CurrentView())
	require.NotNil(t, cmd)

	// The init command loads the leaderboard.
	msg := cmd()
	loaded, ok := msg.(messages.LeaderboardLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
}

func TestApp_SessionOutputRoutedToModulesView(t *testing.T) {
	app := newTestApp(t)

	// Presenter output lands in the modules view even from the menu.
	model, _ := app.Update(messages.ListRendered{Entries: []string{"Avatar"}})
	updated := model.(*App)
	model, _ = updated.Update(messages.StatusChanged{Text: "1 item"})
	updated = model.(*App)

	assert.Equal(t, []string{"Avatar"}, updated.modulesView.Entries())
	assert.Equal(t, "1 item", updated.modulesView.Status())
}

func TestApp_StatusBarTracksSession(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewModules})
	updated := model.(*App)
	model, _ = updated.Update(messages.ListRendered{Entries: []string{"Avatar"}})
	updated = model.(*App)
	model, _ = updated.Update(messages.StatusChanged{Text: "1 item"})
	updated = model.(*App)

	out := updated.View()
	assert.Contains(t, out, "1 item")
	assert.Contains(t, out, "Avatar")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_HelpEscReturnsToMenu(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})
	updated := model.(*App)
	require.Equal(t, messages.ViewHelp, updated.CurrentView())

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated = model.(*App)
	assert.Equal(t, messages.ViewMenu, updated.CurrentView())
}

func TestApp_View(t *testing.T) {
	app := newTestApp(t)

	out := app.View()
	assert.Contains(t, out, "AiRobo Trainer")

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})
	updated := model.(*App)
	assert.Contains(t, updated.View(), "Help")
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ErrorOccurred{Err: assert.AnError})
	updated := model.(*App)

	assert.Equal(t, assert.AnError, updated.Err())
}
