package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driven/storage/memory"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/services"
)

func newLoadedView(t *testing.T) *View {
	t.Helper()

	view := NewView(nil, services.NewSettings(memory.NewConfigStore()))
	view.SetDimensions(80, 24)

	cmd := view.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(messages.HeadsetLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)

	view, _ = view.Update(loaded)
	return view
}

func press(view *View, key string) (*View, tea.Cmd) {
	var msg tea.KeyMsg
	if key == "esc" {
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return view.Update(msg)
}

func TestView_InitLoadsDefaults(t *testing.T) {
	view := newLoadedView(t)

	assert.Equal(t, domain.DefaultHeadsetSettings(), view.Settings())
	assert.False(t, view.Dirty())
}

func TestView_CycleSamplingRate(t *testing.T) {
	view := newLoadedView(t)

	view, _ = press(view, "l")

	assert.Equal(t, 500, view.Settings().SamplingRateHz)
	assert.True(t, view.Dirty())

	// Filter selections reset when the rate changes
	assert.Equal(t, "None", view.Settings().BandpassFilter)
	assert.Equal(t, "None", view.Settings().NotchFilter)
}

func TestView_CycleSamplingRateWraps(t *testing.T) {
	view := newLoadedView(t)

	view, _ = press(view, "h")

	assert.Equal(t, 1000, view.Settings().SamplingRateHz)
}

func TestView_CycleNotchFilter(t *testing.T) {
	view := newLoadedView(t)

	view, _ = press(view, "j")
	view, _ = press(view, "j")
	view, _ = press(view, "l")

	assert.Equal(t, "50Hz", view.Settings().NotchFilter)
}

func TestView_GainBounds(t *testing.T) {
	view := newLoadedView(t)

	// Move to the gain field
	view, _ = press(view, "j")
	view, _ = press(view, "j")
	view, _ = press(view, "j")

	view, _ = press(view, "l")
	assert.Equal(t, 25, view.Settings().Gain)

	for i := 0; i < 30; i++ {
		view, _ = press(view, "h")
	}
	assert.Equal(t, 1, view.Settings().Gain)
}

func TestView_SavePersists(t *testing.T) {
	store := memory.NewConfigStore()
	service := services.NewSettings(store)
	view := NewView(nil, service)
	view.SetDimensions(80, 24)

	msg := view.Init()()
	view, _ = view.Update(msg)

	view, _ = press(view, "l") // rate 250 -> 500
	require.True(t, view.Dirty())

	view, cmd := press(view, "s")
	require.NotNil(t, cmd)
	view, _ = view.Update(cmd())

	assert.False(t, view.Dirty())
	assert.NoError(t, view.Err())
	assert.Equal(t, 500, store.GetInt("headset.sampling_rate_hz"))
}

func TestView_SaveWithoutChangesIsNoop(t *testing.T) {
	view := newLoadedView(t)

	_, cmd := press(view, "s")
	assert.Nil(t, cmd)
}

func TestView_EscReturnsToMenu(t *testing.T) {
	view := newLoadedView(t)

	_, cmd := press(view, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_Render(t *testing.T) {
	view := newLoadedView(t)

	out := view.View()
	assert.Contains(t, out, "Headset Settings")
	assert.Contains(t, out, "250 Hz")
	assert.Contains(t, out, "C3, CZ, C4")
}
