package gate

import (
	"net/http"
	"strings"
	"time"
)

// SessionCookieName carries the signed session token for page routes.
// Programmatic clients may send the same token as a bearer header instead.
const SessionCookieName = "mp_session"

// SessionCookie builds the http-only session cookie. Secure is off only in
// development so cookies work over plain HTTP.
func SessionCookie(token string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

// ClearSessionCookie replaces the session cookie with an expired one.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadToken extracts the session token from the cookie or, failing that,
// from an Authorization bearer header.
func ReadToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	header := r.Header.Get("Authorization")
	if rest, ok := strings.CutPrefix(header, "Bearer "); ok && rest != "" {
		return rest, true
	}
	return "", false
}
