package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureOutput redirects logger output to a buffer for the test and
// restores stderr and quiet mode afterwards.
func captureOutput(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestSetVerbose(t *testing.T) {
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose mode to be enabled")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose mode to be disabled")
	}
}

func TestDebug_VerboseEnabled(t *testing.T) {
	buf := captureOutput(t, true)

	Debug("removed module %q at index %d", "Avatar", 1)

	got := buf.String()
	if !strings.Contains(got, "[DEBUG]") {
		t.Errorf("expected debug prefix, got %q", got)
	}
	if !strings.Contains(got, `removed module "Avatar" at index 1`) {
		t.Errorf("expected formatted message, got %q", got)
	}
}

func TestDebug_VerboseDisabled(t *testing.T) {
	buf := captureOutput(t, false)

	Debug("instruction changed to %s", "left")

	if buf.Len() != 0 {
		t.Errorf("expected no output when quiet, got %q", buf.String())
	}
}

func TestInfo(t *testing.T) {
	buf := captureOutput(t, true)

	Info("scored %d points", 75)

	got := buf.String()
	if !strings.Contains(got, "[INFO] scored 75 points") {
		t.Errorf("unexpected info output %q", got)
	}
}

func TestWarn(t *testing.T) {
	buf := captureOutput(t, true)

	Warn("config reload failed: %v", "permission denied")

	got := buf.String()
	if !strings.Contains(got, "[WARN] config reload failed: permission denied") {
		t.Errorf("unexpected warn output %q", got)
	}
}

func TestSection(t *testing.T) {
	buf := captureOutput(t, true)

	Section("Session")

	got := buf.String()
	if !strings.Contains(got, "=== Session ===") {
		t.Errorf("unexpected section output %q", got)
	}
}

func TestQuietByDefaultForAllLevels(t *testing.T) {
	buf := captureOutput(t, false)

	Debug("d")
	Info("i")
	Warn("w")
	Section("s")

	if buf.Len() != 0 {
		t.Errorf("expected silence, got %q", buf.String())
	}
}
