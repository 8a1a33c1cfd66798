package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// common errors
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrInternal = errors.New("internal error")

	// auth-specific errors
	ErrAuthRequired     = errors.New("authentication required")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrAccountPending   = errors.New("account awaiting approval")
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError lists the missing or malformed input fields for a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// Validation builds a ValidationError for the given field names.
func Validation(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// Status maps an error to its contractual HTTP status code. Unrecognized
// errors map to 500 so no raw storage or signing failure leaks a status
// of its own.
func Status(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthRequired),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrAccountPending):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. Internal errors
// are masked; everything in the taxonomy speaks for itself.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// Internalf wraps an unexpected failure so it maps to 500 while keeping
// the cause in the chain for logging.
func Internalf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInternal)...)
}
