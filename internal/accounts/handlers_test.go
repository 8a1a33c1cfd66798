package accounts_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MarketPulse/MP-Backend/internal/accounts"
	"github.com/MarketPulse/MP-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// These tests cover the request-validation paths that reject before any
// store call, so they need no database.

func TestRegister_MissingFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"ada","email":"ada@example.com"}`))
	rec := httptest.NewRecorder()
	accounts.RegisterHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, field := range []string{"name", "password"} {
		if !strings.Contains(body, field) {
			t.Errorf("expected missing field %q listed, got: %q", field, body)
		}
	}
}

func TestRegister_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	accounts.RegisterHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()
	accounts.LoginHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestApprove_RejectsNonActiveStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/admin/verify",
		strings.NewReader(`{"userId":"acct-1","status":"banned"}`))
	rec := httptest.NewRecorder()
	accounts.ApproveHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for status other than active, got %d", rec.Code)
	}
}

func TestDeleteAccount_SelfDeletionRejected(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/admin/users/{id}", accounts.DeleteAccountHandler)

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/acct-self", nil)
	claims := utils.Claims{AccountID: "acct-self", Role: "superadmin"}
	req = req.WithContext(utils.WithClaims(req.Context(), claims))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for self-deletion, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "may not delete itself") {
		t.Errorf("expected self-deletion message, got %q", body)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	accounts.LogoutHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "mp_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie to be cleared")
	}
}

func TestFoldEmail_CaseInsensitive(t *testing.T) {
	if accounts.FoldEmail("Ada@Example.COM") != accounts.FoldEmail("ada@example.com") {
		t.Error("folded emails should compare equal regardless of case")
	}
}
