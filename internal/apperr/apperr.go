// Package apperr defines the closed set of failure categories shared by
// every collaborator. Handlers map a Kind to an HTTP status instead of
// inspecting message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// Unknown covers anything that does not fit another kind.
	Unknown Kind = iota
	// Validation means the caller's input was malformed or missing.
	Validation
	// NotFound means a downstream confirmed the resource does not exist.
	NotFound
	// Conflict means a downstream rejected a duplicate key.
	Conflict
	// Unavailable means a dependency could not be reached.
	Unavailable
	// Configuration means a required operational setting is absent.
	Configuration
)

// Error carries a Kind, a human-readable message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err, or Unknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
