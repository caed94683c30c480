package errs

import (
	"errors"
	"fmt"
)

var ErrConcurrencyConflict = errors.New("concurrency conflict")

// ConcurrencyConflictError is returned when an update was made against a
// version that is no longer current.
type ConcurrencyConflictError struct {
	Entity  string
	ID      any
	Version int64
}

func NewConcurrencyConflictError(entity string, id any, version int64) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Entity: entity, ID: id, Version: version}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s: %s %v was modified after version %d", ErrConcurrencyConflict, e.Entity, e.ID, e.Version)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
