// Package apperr provides templated application errors that can be
// formatted with context and still be matched with errors.Is.
package apperr

import "fmt"

// Error is an application error. Message may contain fmt verbs which are
// filled in by Fmt.
type Error struct {
	Cause    error
	Message  string
	template string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.tmpl(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		template: e.tmpl(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the same error template as e, so a formatted
// error still matches the package-level variable it was created from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.tmpl() == e.tmpl()
}

func (e *Error) tmpl() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}
