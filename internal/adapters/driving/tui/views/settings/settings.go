// Package settings provides the headset settings view for the TUI.
package settings

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

// field identifies an editable settings row.
type field int

const (
	fieldSamplingRate field = iota
	fieldBandpass
	fieldNotch
	fieldGain

	fieldCount
)

// View is the headset settings view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings domain.HeadsetSettings
	loaded   bool
	dirty    bool
	saved    bool
	err      error

	selected field

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		width:           80,
		height:          24,
	}
}

// Init loads the current headset settings.
func (v *View) Init() tea.Cmd {
	return v.loadCmd()
}

// Reset discards unsaved edits so the next Init reloads from storage.
func (v *View) Reset() {
	v.loaded = false
	v.dirty = false
	v.saved = false
	v.err = nil
	v.selected = fieldSamplingRate
}

// loadCmd returns a command that loads the headset settings.
func (v *View) loadCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := v.settingsService.Headset(context.Background())
		return messages.HeadsetLoaded{Settings: settings, Err: err}
	}
}

// saveCmd returns a command that persists the edited settings.
func (v *View) saveCmd(settings domain.HeadsetSettings) tea.Cmd {
	return func() tea.Msg {
		return messages.HeadsetSaved{Err: v.settingsService.SaveHeadset(context.Background(), settings)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.HeadsetLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
			v.loaded = true
		}
		return v, nil

	case messages.HeadsetSaved:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			v.dirty = false
			v.saved = true
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

// handleKey dispatches key presses.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if !v.loaded {
		if msg.String() == "esc" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < fieldCount-1 {
			v.selected++
		}
		return v, nil

	case "left", "h":
		v.cycleField(-1)
		return v, nil

	case "right", "l":
		v.cycleField(1)
		return v, nil

	case "s":
		if v.dirty {
			return v, v.saveCmd(v.settings)
		}
		return v, nil

	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// cycleField steps the selected field's value forward or backward.
func (v *View) cycleField(delta int) {
	switch v.selected {
	case fieldSamplingRate:
		rates := domain.SupportedSamplingRates()
		idx := indexOfInt(rates, v.settings.SamplingRateHz)
		v.settings.SamplingRateHz = rates[wrap(idx+delta, len(rates))]
		// Filter tables differ per rate, reset dependent fields
		v.settings.BandpassFilter = "None"
		v.settings.NotchFilter = "None"

	case fieldBandpass:
		names := domain.BandpassFilterNames(v.settings.SamplingRateHz)
		if len(names) == 0 {
			return
		}
		idx := indexOfString(names, v.settings.BandpassFilter)
		v.settings.BandpassFilter = names[wrap(idx+delta, len(names))]

	case fieldNotch:
		names := domain.NotchFilterNames()
		idx := indexOfString(names, v.settings.NotchFilter)
		v.settings.NotchFilter = names[wrap(idx+delta, len(names))]

	case fieldGain:
		gain := v.settings.Gain + delta
		if gain < 1 {
			gain = 1
		}
		if gain > 100 {
			gain = 100
		}
		v.settings.Gain = gain
	}

	v.dirty = true
	v.saved = false
}

// View renders the settings form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Headset Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	rows := []struct {
		field field
		label string
		value string
	}{
		{fieldSamplingRate, "Sampling rate", fmt.Sprintf("%d Hz", v.settings.SamplingRateHz)},
		{fieldBandpass, "Bandpass filter", v.settings.BandpassFilter},
		{fieldNotch, "Notch filter", v.settings.NotchFilter},
		{fieldGain, "Gain", fmt.Sprintf("%d", v.settings.Gain)},
	}

	for _, row := range rows {
		cursor := "  "
		label := v.styles.Normal.Render(fmt.Sprintf("%-16s", row.label))
		value := v.styles.Normal.Render(row.value)
		if row.field == v.selected {
			cursor = "> "
			value = v.styles.Selected.Render(row.value)
		}
		b.WriteString(cursor + label + value)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(
		fmt.Sprintf("Electrodes: %s", strings.Join(v.settings.Electrodes, ", "))))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Output path: " + v.settings.OutputPath))
	b.WriteString("\n\n")

	if v.saved {
		b.WriteString(v.styles.Success.Render("Settings saved."))
		b.WriteString("\n")
	} else if v.dirty {
		b.WriteString(v.styles.Warning.Render("Unsaved changes."))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Muted.Render("[j/k] Field  [h/l] Change  [s] Save  [esc] Menu"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the current edit state.
func (v *View) Settings() domain.HeadsetSettings {
	return v.settings
}

// Dirty reports whether there are unsaved edits.
func (v *View) Dirty() bool {
	return v.dirty
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func indexOfInt(values []int, v int) int {
	for i, val := range values {
		if val == v {
			return i
		}
	}
	return 0
}

func indexOfString(values []string, v string) int {
	for i, val := range values {
		if val == v {
			return i
		}
	}
	return 0
}
