package domain

import "errors"

// Error kinds shared by every bounded context. Specific failures wrap one of
// these so callers can branch on the kind without knowing every reason.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a domain failure with a human readable reason and a kind.
type Error struct {
	kind   error
	reason string
}

// NewError creates a domain error of the given kind.
func NewError(kind error, reason string) *Error {
	return &Error{kind: kind, reason: reason}
}

func (e *Error) Error() string { return e.reason }

// Kind returns the taxonomy sentinel this error belongs to.
func (e *Error) Kind() error { return e.kind }

// Unwrap lets errors.Is match the kind.
func (e *Error) Unwrap() error { return e.kind }

// KindOf returns the taxonomy sentinel for err, or nil when err is not a
// domain failure.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrUnauthorized} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
