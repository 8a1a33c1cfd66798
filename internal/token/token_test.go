package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret")

	tok, err := svc.Issue("acct-123", "admin", "Ada Byron")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.AccountID != "acct-123" {
		t.Errorf("AccountID mismatch: got %q want %q", claims.AccountID, "acct-123")
	}
	if claims.Role != "admin" {
		t.Errorf("Role mismatch: got %q want %q", claims.Role, "admin")
	}
	if claims.Name != "Ada Byron" {
		t.Errorf("Name mismatch: got %q want %q", claims.Name, "Ada Byron")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewService("secret")

	// Build a token whose expiry is already in the past.
	past := time.Now().Add(-1 * time.Hour)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past.Add(-Lifetime)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
		AccountID: "acct-1",
		Role:      "admin",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	_, err = svc.Verify(tok)
	if !errors.Is(err, apperr.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewService("right-secret").Issue("acct-2", "admin", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewService("wrong-secret").Verify(tok)
	if !errors.Is(err, apperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := NewService("secret")
	tok, err := svc.Issue("acct-3", "superadmin", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	if !errors.Is(err, apperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewService("k").Verify("not.a.token")
	if !errors.Is(err, apperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
