package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidIndex indicates a list index outside 0..count-1.
	// The selection in the presentation layer no longer matches the model.
	ErrInvalidIndex = errors.New("index out of range")

	// ErrEmptyModule indicates a module name that is empty after trimming.
	ErrEmptyModule = errors.New("module name is empty")

	// ErrDuplicateModule indicates a module name already present in the list.
	ErrDuplicateModule = errors.New("module already exists")

	// ErrAddDisabled indicates module insertion is not enabled for this
	// installation. The curated list only supports removal by default.
	ErrAddDisabled = errors.New("adding modules is disabled")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
