package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Task Errors.

	// ErrInvalidPosition indicates a task number outside 1..len(collection).
	ErrInvalidPosition = errors.New("invalid task number")

	// ErrInvalidPriority indicates a priority outside {low, medium, high}.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDueDate indicates a due date that is not shaped YYYY-MM-DD.
	ErrInvalidDueDate = errors.New("invalid due date")

	// Store Errors.

	// ErrCorruptStore indicates the persisted document exists but is malformed.
	// No recovery or backup is attempted.
	ErrCorruptStore = errors.New("task store is corrupt")

	// ErrStoreIO indicates the storage medium could not be read or written.
	ErrStoreIO = errors.New("task store I/O failure")

	// Settings Errors.

	// ErrInvalidSetting indicates an unknown configuration key or a value
	// outside the allowed set for that key.
	ErrInvalidSetting = errors.New("invalid setting")
)
