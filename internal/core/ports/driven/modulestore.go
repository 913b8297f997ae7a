package driven

import "context"

// ModuleStore holds the ordered list of training-module names the operator
// curates. Entries are unique and non-empty after trimming; indices visible
// to callers are always 0..count-1. The store is created once per session
// from a seed and is never persisted.
type ModuleStore interface {
	// RemoveAt removes and returns the entry at index. It fails with
	// domain.ErrInvalidIndex if the index is outside 0..count-1, leaving
	// the store unchanged.
	RemoveAt(ctx context.Context, index int) (string, error)

	// Clear removes all entries. It always succeeds, including when the
	// store is already empty.
	Clear(ctx context.Context) error

	// Add inserts a trimmed entry at the end of the list. It fails with
	// domain.ErrEmptyModule for empty input and domain.ErrDuplicateModule
	// for an entry already present. Both are user-correctable conditions.
	Add(ctx context.Context, name string) error

	// Count returns the current number of entries.
	Count(ctx context.Context) (int, error)

	// All returns a snapshot copy of the entries in their current order.
	// Mutating the returned slice does not affect the store.
	All(ctx context.Context) ([]string, error)

	// At returns the entry at index, or false when the index is out of
	// range. Unlike RemoveAt, a bad index is not an error here.
	At(ctx context.Context, index int) (string, bool, error)
}
