// Package token issues and verifies the signed session tokens that prove a
// caller's identity. Tokens are stateless: verification needs only the
// signing secret, never a store lookup, so a deleted account's token stays
// valid until it expires. Tokens are never renewed in place, only reissued
// by a fresh login.
package token

import (
	"errors"
	"time"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
	"github.com/MarketPulse/MP-Backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Lifetime is the fixed validity window of an issued session token.
const Lifetime = 7 * 24 * time.Hour

// Claims embeds the registered JWT claims plus the identity fields the
// rest of the backend consumes.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
}

// Service signs and verifies session tokens with a single process-wide
// HS256 secret, read-only after startup.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token embedding the account's identity and role,
// expiring Lifetime from now.
func (s *Service) Issue(accountID, role, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
		AccountID: accountID,
		Role:      role,
		Name:      name,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded identity. Expired tokens fail with apperr.ErrTokenExpired;
// malformed or tampered tokens with apperr.ErrInvalidToken.
func (s *Service) Verify(tokenString string) (utils.Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return utils.Claims{}, apperr.ErrTokenExpired
		}
		return utils.Claims{}, apperr.ErrInvalidToken
	}
	if !token.Valid || claims.AccountID == "" {
		return utils.Claims{}, apperr.ErrInvalidToken
	}

	return utils.Claims{
		AccountID: claims.AccountID,
		Role:      claims.Role,
		Name:      claims.Name,
	}, nil
}
