package file

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnExternalWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	reloaded := make(chan struct{}, 1)
	watcher, err := NewWatcher(store, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer watcher.Close()

	// Simulate an external edit
	content := "[modules]\nallow_add = true\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}

	assert.True(t, store.GetBool("modules.allow_add"))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	reloaded := make(chan struct{}, 1)
	watcher, err := NewWatcher(store, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(dir+"/other.txt", []byte("x"), 0600))

	select {
	case <-reloaded:
		t.Fatal("reload triggered by unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_Close(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	watcher, err := NewWatcher(store, nil)
	require.NoError(t, err)

	assert.NoError(t, watcher.Close())
}
