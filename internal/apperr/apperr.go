// Package apperr defines the application error type. Each package declares
// its sentinel values in an errors.go file and matches them with errors.Is.
package apperr

import "fmt"

// Error is an application error. Sentinel values are declared with just a
// Message; Fmt and Wrap derive copies that still match their sentinel.
type Error struct {
	Message string
	Err     error

	base *Error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches derived errors against the sentinel they were created from.
func (e *Error) Is(target error) bool {
	return e.base != nil && e.base == target
}

// Fmt returns a copy of the error with its message format verbs filled in.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		base:    e,
	}
}

// Wrap returns a copy of the error that records an underlying cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
		base:    e,
	}
}
