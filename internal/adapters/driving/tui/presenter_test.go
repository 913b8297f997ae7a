package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driven/storage/memory"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
	"github.com/airobo-labs/trainer-cli/internal/core/services"
)

func TestPresenter_RenderList(t *testing.T) {
	var sent []tea.Msg
	p := NewPresenter(func(msg tea.Msg) { sent = append(sent, msg) })

	entries := []string{"Text Commands", "Avatar"}
	p.RenderList(entries)

	require.Len(t, sent, 1)
	msg, ok := sent[0].(messages.ListRendered)
	require.True(t, ok)
	assert.Equal(t, entries, msg.Entries)

	// The forwarded snapshot is independent of the input slice.
	entries[0] = "mutated"
	assert.Equal(t, "Text Commands", msg.Entries[0])
}

func TestPresenter_SetStatus(t *testing.T) {
	var sent []tea.Msg
	p := NewPresenter(func(msg tea.Msg) { sent = append(sent, msg) })

	p.SetStatus("2 items")

	require.Len(t, sent, 1)
	assert.Equal(t, messages.StatusChanged{Text: "2 items"}, sent[0])
}

func TestPresenter_ShowWarning(t *testing.T) {
	var sent []tea.Msg
	p := NewPresenter(func(msg tea.Msg) { sent = append(sent, msg) })

	p.ShowWarning("Invalid Selection", "No module at position 5.")

	require.Len(t, sent, 1)
	assert.Equal(t, messages.WarningRaised{
		Title:   "Invalid Selection",
		Message: "No module at position 5.",
	}, sent[0])
}

func TestPresenter_BridgesSessionOutput(t *testing.T) {
	var sent []tea.Msg
	session := services.NewSession(memory.NewModuleStore([]string{"A", "B"}), false)
	session.Attach(context.Background(), NewPresenter(func(msg tea.Msg) {
		sent = append(sent, msg)
	}))

	// Attach renders once: one list snapshot plus one status line.
	require.Len(t, sent, 2)
	assert.Equal(t, messages.ListRendered{Entries: []string{"A", "B"}}, sent[0])
	assert.Equal(t, messages.StatusChanged{Text: "2 items"}, sent[1])

	require.NoError(t, session.RemoveAt(context.Background(), 9))

	require.Len(t, sent, 3)
	warning, ok := sent[2].(messages.WarningRaised)
	require.True(t, ok)
	assert.Equal(t, "Invalid Selection", warning.Title)
}
