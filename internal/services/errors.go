package services

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	// ErrAdminNotFound is a NotFound for the group's admin reference.
	ErrAdminNotFound = fmt.Errorf("admin %w", ErrNotFound)
)

// Error is a typed service failure: a Kind for callers to branch on,
// a human readable Message and an optional underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is matches the kind, so errors.Is(err, ErrNotFound) works for every not-found failure.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func userNotFound(id string) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("user not found with id: %s", id)}
}

func groupNotFound(id string) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("group not found with id: %s", id)}
}

func adminNotFound(id string) *Error {
	return &Error{Kind: ErrAdminNotFound, Message: fmt.Sprintf("admin user not found with id: %s", id)}
}

func alreadyExists(field, value string) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf("%s already exists: %s", field, value)}
}

func invalidInput(msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: ErrInternal, Message: msg, Err: err}
}
