package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driving"
	"github.com/airobo-labs/trainer-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Session coordinates the training-module list with the presentation layer.
// It owns one module store and at most one attached presenter; the store
// never sees the presenter and the presenter never sees the store.
//
// After every successful mutation the session re-derives the entire displayed
// list from the store rather than patching it, so the presenter can never
// drift from the model. The mutex serializes requests in arrival order.
type Session struct {
	store    driven.ModuleStore
	allowAdd bool

	mu        sync.Mutex
	presenter driven.Presenter
}

// NewSession creates a session service over the given module store.
// allowAdd enables the optional add-module extension; the stock
// configuration only supports removal and clearing.
func NewSession(store driven.ModuleStore, allowAdd bool) *Session {
	return &Session{
		store:    store,
		allowAdd: allowAdd,
	}
}

// Attach binds the presenter and renders the current state onto it, so the
// presentation layer never starts out stale.
func (s *Session) Attach(ctx context.Context, presenter driven.Presenter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.presenter = presenter
	if err := s.refreshLocked(ctx); err != nil {
		logger.Warn("initial render failed: %v", err)
	}
}

// RemoveAt handles a remove-at-index request. An invalid index becomes a
// presenter warning, never an error or a crash; the list is left unchanged.
func (s *Session) RemoveAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.RemoveAt(ctx, index)
	if errors.Is(err, domain.ErrInvalidIndex) {
		logger.Debug("remove rejected: %v", err)
		s.warnLocked("Invalid Selection",
			fmt.Sprintf("No module at position %d. Please select a valid module.", index))
		return nil
	}
	if err != nil {
		return fmt.Errorf("removing module: %w", err)
	}

	logger.Debug("removed module %q at index %d", removed, index)
	return s.refreshLocked(ctx)
}

// ClearAll handles a clear-all request. Clearing an already-empty list is an
// accepted no-op, not an error.
func (s *Session) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing modules: %w", err)
	}

	logger.Debug("cleared module list")
	return s.refreshLocked(ctx)
}

// Add handles an add-module request. Empty and duplicate names are
// user-correctable: they become presenter warnings rather than errors.
func (s *Session) Add(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.allowAdd {
		return domain.ErrAddDisabled
	}

	err := s.store.Add(ctx, name)
	switch {
	case errors.Is(err, domain.ErrEmptyModule):
		s.warnLocked("Invalid Name", "Module name must not be empty.")
		return nil
	case errors.Is(err, domain.ErrDuplicateModule):
		s.warnLocked("Duplicate Module",
			fmt.Sprintf("%q is already in the list.", domain.NormalizeModuleName(name)))
		return nil
	case err != nil:
		return fmt.Errorf("adding module: %w", err)
	}

	return s.refreshLocked(ctx)
}

// Refresh re-renders the presenter from current store state.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

// Modules returns a snapshot of the current entries.
func (s *Session) Modules(ctx context.Context) ([]string, error) {
	return s.store.All(ctx)
}

// Count returns the current number of entries.
func (s *Session) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// At returns the entry at index, or false when out of range.
func (s *Session) At(ctx context.Context, index int) (string, bool, error) {
	return s.store.At(ctx, index)
}

// refreshLocked pushes a full snapshot and derived status to the presenter.
// It is the only code path that writes the presenter's list display.
// Caller must hold s.mu.
func (s *Session) refreshLocked(ctx context.Context) error {
	if s.presenter == nil {
		return nil
	}

	entries, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("reading modules: %w", err)
	}

	s.presenter.RenderList(entries)
	s.presenter.SetStatus(StatusText(len(entries)))
	return nil
}

// warnLocked forwards a warning to the presenter, if any. Caller must hold s.mu.
func (s *Session) warnLocked(title, message string) {
	if s.presenter != nil {
		s.presenter.ShowWarning(title, message)
	}
}

// StatusText derives the status readout for a module count.
func StatusText(count int) string {
	switch count {
	case 0:
		return "No items"
	case 1:
		return "1 item"
	default:
		return fmt.Sprintf("%d items", count)
	}
}
