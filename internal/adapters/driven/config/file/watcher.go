package file

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/airobo-labs/trainer-cli/internal/logger"
)

// Watcher reloads a ConfigStore when its file changes on disk.
// Edits made through the store itself also trigger a reload; Load is
// idempotent so this is harmless.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	done     chan struct{}
	onReload func()
}

// NewWatcher starts watching the store's config file. The optional onReload
// callback runs after each successful reload.
func NewWatcher(store *ConfigStore, onReload func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	// Watch the directory rather than the file: editors and atomic saves
	// replace the file, which drops a direct file watch.
	if err := fsWatcher.Add(filepath.Dir(store.Path())); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	w := &Watcher{
		store:    store,
		watcher:  fsWatcher,
		done:     make(chan struct{}),
		onReload: onReload,
	}
	go w.loop()

	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Debug("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Debug("config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}
