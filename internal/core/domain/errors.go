package domain

import "errors"

// Domain errors represent scan failures that abort the whole operation.
// Per-entry I/O failures are recovered locally and never surface here.
var (
	// ErrRootNotFound indicates the scan root does not exist.
	ErrRootNotFound = errors.New("root path not found")

	// ErrNotADirectory indicates the scan root exists but is not a directory.
	ErrNotADirectory = errors.New("root path is not a directory")
)
