// Package gate is the access-control layer evaluated before any handler
// runs. Routes are classified by an ordered list of rules; the first rule
// matching a request decides whether it passes, is denied, or is
// redirected. UI routes redirect to the login page or a role dashboard,
// API routes answer with JSON 401/403.
package gate

import (
	"net/http"
	"strings"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
	"github.com/MarketPulse/MP-Backend/internal/utils"
)

// Verifier checks a raw session token and returns its claims.
type Verifier interface {
	Verify(token string) (utils.Claims, error)
}

// Kind distinguishes browser-facing routes (redirect on failure) from
// programmatic API routes (JSON errors, no redirects).
type Kind int

const (
	KindAPI Kind = iota
	KindUI
)

const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Rule matches requests by method and path prefix. Rules are evaluated in
// order; the first match decides. A request matching no rule passes
// through unprotected.
type Rule struct {
	Method string // empty matches any method
	Prefix string
	Kind   Kind
	Role   string // minimum role; empty means any authenticated caller

	// BounceAuthed marks a public page (the login form) that an
	// already-authenticated caller is redirected away from.
	BounceAuthed bool
}

func (r Rule) matches(req *http.Request) bool {
	if r.Method != "" && r.Method != req.Method {
		return false
	}
	return strings.HasPrefix(req.URL.Path, r.Prefix)
}

// roleRank orders the privilege tiers. Unknown roles rank below everything.
func roleRank(role string) int {
	switch role {
	case RoleSuperadmin:
		return 2
	case RoleAdmin:
		return 1
	default:
		return 0
	}
}

// DashboardPath returns the landing page for a role.
func DashboardPath(role string) string {
	if role == RoleSuperadmin {
		return "/superadmin/dashboard"
	}
	return "/admin/dashboard"
}

const loginPath = "/login"

// Gate holds the ordered rules and the token verifier.
type Gate struct {
	rules    []Rule
	verifier Verifier
}

func New(verifier Verifier, rules []Rule) *Gate {
	return &Gate{rules: rules, verifier: verifier}
}

// Middleware evaluates the rule list for each request before the router's
// handler runs. Verified claims are attached to the request context for
// downstream ownership checks.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rule, ok := g.match(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		raw, hasToken := ReadToken(r)
		claims, verifyErr := utils.Claims{}, error(nil)
		if hasToken {
			claims, verifyErr = g.verifier.Verify(raw)
		}
		authed := hasToken && verifyErr == nil

		if rule.BounceAuthed {
			// Login page: show the form unless the visitor already
			// holds a valid session.
			if authed {
				http.Redirect(w, r, DashboardPath(claims.Role), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if !authed {
			g.denyUnauthenticated(w, r, rule, hasToken)
			return
		}

		if roleRank(claims.Role) < roleRank(rule.Role) {
			g.denyForbidden(w, r, rule, claims)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), claims)))
	})
}

func (g *Gate) match(r *http.Request) (Rule, bool) {
	for _, rule := range g.rules {
		if rule.matches(r) {
			return rule, true
		}
	}
	return Rule{}, false
}

func (g *Gate) denyUnauthenticated(w http.ResponseWriter, r *http.Request, rule Rule, staleToken bool) {
	if rule.Kind == KindUI {
		if staleToken {
			// Invalid or expired cookie: clear it before bouncing.
			ClearSessionCookie(w)
		}
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}
	utils.RespondError(w, apperr.ErrAuthRequired)
}

func (g *Gate) denyForbidden(w http.ResponseWriter, r *http.Request, rule Rule, claims utils.Claims) {
	if rule.Kind == KindUI {
		// Send the caller to their own dashboard, not the login page:
		// they are authenticated, just not privileged enough.
		http.Redirect(w, r, DashboardPath(claims.Role), http.StatusSeeOther)
		return
	}
	utils.RespondError(w, apperr.ErrForbidden)
}
