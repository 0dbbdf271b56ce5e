package localstore

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a key does not exist.
	ErrNotFound = errors.New("localstore: key not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("localstore: closed")

	// ErrInvalidKey is returned for keys that cannot be mapped to storage
	// (empty, or containing path separators).
	ErrInvalidKey = errors.New("localstore: invalid key")
)
