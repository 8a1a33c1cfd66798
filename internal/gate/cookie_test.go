package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestReadToken_PrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	got, ok := ReadToken(req)
	if !ok || got != "cookie-token" {
		t.Errorf("expected cookie token, got %q (ok=%v)", got, ok)
	}
}

func TestReadToken_FallsBackToBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	got, ok := ReadToken(req)
	if !ok || got != "header-token" {
		t.Errorf("expected bearer token, got %q (ok=%v)", got, ok)
	}
}

func TestReadToken_None(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ReadToken(req); ok {
		t.Error("expected no token")
	}

	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if _, ok := ReadToken(req); ok {
		t.Error("expected no token for non-bearer authorization")
	}
}

func TestSessionCookie_Attributes(t *testing.T) {
	c := SessionCookie("tok", 7*24*time.Hour, true)
	if !c.HttpOnly {
		t.Error("session cookie must be http-only")
	}
	if !c.Secure {
		t.Error("expected secure cookie outside development")
	}
	if c.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("unexpected max age %d", c.MaxAge)
	}
}
