package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolePresenter_RenderList(t *testing.T) {
	out := new(bytes.Buffer)
	p := newConsolePresenter(out, new(bytes.Buffer), false)

	p.RenderList([]string{"Text Commands", "Avatar"})

	assert.Equal(t, " 1. Text Commands\n 2. Avatar\n", out.String())
}

func TestConsolePresenter_RenderList_Empty(t *testing.T) {
	out := new(bytes.Buffer)
	p := newConsolePresenter(out, new(bytes.Buffer), false)

	p.RenderList(nil)

	assert.Equal(t, "No modules configured.\n", out.String())
}

func TestConsolePresenter_SetStatus(t *testing.T) {
	out := new(bytes.Buffer)
	p := newConsolePresenter(out, new(bytes.Buffer), false)

	p.SetStatus("2 items")

	// Buffers are not terminals, so no ANSI sequences appear.
	assert.Equal(t, "2 items\n", out.String())
}

func TestConsolePresenter_ShowWarning(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	p := newConsolePresenter(out, errOut, false)

	p.ShowWarning("Invalid Selection", "No module at position 4.")

	assert.Empty(t, out.String())
	assert.Equal(t, "Invalid Selection: No module at position 4.\n", errOut.String())
}

func TestConsolePresenter_SuppressInitial(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	p := newConsolePresenter(out, errOut, true)

	// The render triggered by attaching is dropped.
	p.RenderList([]string{"Avatar"})
	p.SetStatus("1 item")
	assert.Empty(t, out.String())

	// Warnings are never suppressed.
	p.ShowWarning("Duplicate Module", `"Avatar" is already in the list.`)
	assert.NotEmpty(t, errOut.String())

	// The next render is printed.
	p.RenderList([]string{"Avatar", "Video"})
	p.SetStatus("2 items")
	assert.Equal(t, " 1. Avatar\n 2. Video\n2 items\n", out.String())
}
