package store

import "errors"

// Domain-level errors I prefer to bubble up from store implementations.
// Callers match with errors.Is; the wrapped detail carries the path and cause.
var (
	ErrLoad    = errors.New("load failed")
	ErrPersist = errors.New("persist failed")
)
