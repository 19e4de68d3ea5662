package app

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUsername: signup with a username that already exists.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidDay: a day outside the seven canonical weekday names.
	ErrInvalidDay = errors.New("day must be one of Monday..Sunday")

	// ErrNotFound is reserved for lookups that promise a row. Deletes are
	// idempotent and never return it.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable is the only error a caller may retry.
	ErrStoreUnavailable = errors.New("storage temporarily unavailable")
)

// ValidationError names the offending field so the caller can correct input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newRequiredError(field string) error {
	return &ValidationError{Field: field, Reason: "must not be empty"}
}
