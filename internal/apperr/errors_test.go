package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestStatus_Taxonomy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{Validation("title"), http.StatusBadRequest},
		{ErrInvalidOperation, http.StatusBadRequest},
		{ErrAuthRequired, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrBadCredentials, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrAccountPending, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{ErrInternal, http.StatusInternalServerError},
		{errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := Status(tc.err); got != tc.want {
			t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestStatus_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("creating account: %w", ErrConflict)
	if got := Status(wrapped); got != http.StatusConflict {
		t.Errorf("wrapped conflict: got %d, want 409", got)
	}

	internal := Internalf("listing articles")
	if got := Status(internal); got != http.StatusInternalServerError {
		t.Errorf("Internalf: got %d, want 500", got)
	}
}

func TestValidationError_ListsFields(t *testing.T) {
	t.Parallel()

	err := Validation("title", "content")
	msg := err.Error()
	if !strings.Contains(msg, "title") || !strings.Contains(msg, "content") {
		t.Errorf("expected both fields in message, got %q", msg)
	}
}

func TestMessage_MasksInternal(t *testing.T) {
	t.Parallel()

	if got := Message(errors.New("pq: connection refused")); got != "internal server error" {
		t.Errorf("internal detail leaked: %q", got)
	}
	if got := Message(ErrNotFound); got != "not found" {
		t.Errorf("taxonomy message changed: %q", got)
	}
}
