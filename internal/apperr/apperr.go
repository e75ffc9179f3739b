package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation error")
	// ErrAuth marks a wrong credential or a missing/incorrect admin secret.
	ErrAuth = errors.New("authorization error")
	// ErrNotFound marks an unknown user, challenge, request or post.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a request that clashes with existing state.
	ErrConflict = errors.New("conflict")
)

// Error carries a client facing message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation builds an ErrValidation error.
func Validation(format string, args ...any) error { return newf(ErrValidation, format, args...) }

// Auth builds an ErrAuth error.
func Auth(format string, args ...any) error { return newf(ErrAuth, format, args...) }

// NotFound builds an ErrNotFound error.
func NotFound(format string, args ...any) error { return newf(ErrNotFound, format, args...) }

// Conflict builds an ErrConflict error.
func Conflict(format string, args ...any) error { return newf(ErrConflict, format, args...) }
