package driving

import (
	"context"

	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
)

// SessionService coordinates the training-module list with the presentation
// layer. Each request runs to completion before the next is handled, in the
// order the presentation layer raises them.
type SessionService interface {
	// Attach binds the presenter the service pushes state to and renders
	// the current state onto it. The service holds the reference for the
	// rest of its lifetime.
	Attach(ctx context.Context, presenter driven.Presenter)

	// RemoveAt handles a remove-at-index request. An invalid index is
	// surfaced to the presenter as a warning and leaves state unchanged;
	// it is never returned as an error. The returned error reports only
	// infrastructure failures.
	RemoveAt(ctx context.Context, index int) error

	// ClearAll handles a clear-all request. It always succeeds, including
	// on an already-empty list.
	ClearAll(ctx context.Context) error

	// Add handles an add-module request. Duplicate or empty names are
	// surfaced as warnings; when adding is disabled by configuration the
	// request is rejected with domain.ErrAddDisabled.
	Add(ctx context.Context, name string) error

	// Refresh re-renders the presenter from current state. It is the only
	// path that writes the presenter's list display.
	Refresh(ctx context.Context) error

	// Modules returns a snapshot of the current entries.
	Modules(ctx context.Context) ([]string, error)

	// Count returns the current number of entries.
	Count(ctx context.Context) (int, error)

	// At returns the entry at index, or false when out of range.
	At(ctx context.Context, index int) (string, bool, error)
}
