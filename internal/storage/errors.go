package storage

import (
	"errors"
	"fmt"
)

// The storage layer reports failures with exactly four kinds of error so the
// HTTP layer can map them to status codes without string matching. Every
// error leaves this package as one of these kinds or wrapped around one;
// kinds are never converted into one another.

// ValidationError indicates malformed or missing required input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError indicates a mutation aimed at an id that does not exist.
// Reads return nil on a miss and deletes are idempotent; neither raises this.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// ConflictError indicates a uniqueness violation, e.g. a duplicate project
// slug or user email.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// TransportError wraps a backing-store failure (connectivity, timeouts).
// Only the persistent store produces these.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("storage unavailable: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
