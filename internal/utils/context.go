package utils

import (
	"context"
)

// Claims carries the identity fields a verified session token asserts.
// The gate attaches them to the request context; handlers use them for
// ownership checks and audit fields.
type Claims struct {
	AccountID string
	Role      string
	Name      string
}

type contextKey string

const ContextClaimsKey contextKey = "claims"

func GetClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(ContextClaimsKey).(Claims)
	return claims, ok
}

func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, ContextClaimsKey, claims)
}
