package store

import "errors"

// Failure kinds surfaced by store operations. Callers classify with
// errors.Is; the wrapped message carries the offending key or document.
var (
	// ErrStorageUnavailable covers any read or write failure of the
	// underlying document (missing file, permission error, I/O fault).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptDocument means the document exists but cannot be parsed
	// into the expected record sequence.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrAlreadyExists is a uniqueness violation on create.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound is a key lookup miss on mutate or delete.
	ErrNotFound = errors.New("not found")
)
