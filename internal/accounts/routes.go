package accounts

import (
	"net/http"

	"github.com/MarketPulse/MP-Backend/internal/gate"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the public auth surface under /auth. Authentication
// itself happens in the gate; routes here that need claims (me, password)
// are listed as protected API prefixes in the gate rules.
func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", RegisterHandler)
	r.With(gate.LoginRateLimit).Post("/login", LoginHandler)
	r.Post("/logout", LogoutHandler)
	r.Post("/provision", ProvisionHandler)
	r.Get("/me", MeHandler)
	r.Post("/password", ChangePasswordHandler)

	return r
}

// SetupAdminRoutes mounts the superadmin administration surface under
// /admin. The gate requires a superadmin token for every route here.
func SetupAdminRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/verify", ListPendingHandler)
	r.Put("/verify", ApproveHandler)
	r.Get("/users", ListAccountsHandler)
	r.Put("/users/{id}", UpdateAccountHandler)
	r.Delete("/users/{id}", DeleteAccountHandler)

	return r
}
