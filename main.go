package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/MarketPulse/MP-Backend/internal/accounts"
	"github.com/MarketPulse/MP-Backend/internal/articles"
	"github.com/MarketPulse/MP-Backend/internal/config"
	"github.com/MarketPulse/MP-Backend/internal/db"
	"github.com/MarketPulse/MP-Backend/internal/gate"
	"github.com/MarketPulse/MP-Backend/internal/token"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

// uiStub stands in for externally rendered pages. The gate's redirect
// behavior targets these paths; their markup lives outside this backend.
func uiStub(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, name)
	}
}

// gateRules is the ordered access-control table. The first matching rule
// decides; a request matching none is unprotected. More specific prefixes
// come before broader ones.
func gateRules() []gate.Rule {
	return []gate.Rule{
		{Prefix: "/login", Kind: gate.KindUI, BounceAuthed: true},
		{Prefix: "/admin/verify", Kind: gate.KindAPI, Role: gate.RoleSuperadmin},
		{Prefix: "/admin/users", Kind: gate.KindAPI, Role: gate.RoleSuperadmin},
		{Prefix: "/superadmin", Kind: gate.KindUI, Role: gate.RoleSuperadmin},
		{Prefix: "/admin", Kind: gate.KindUI, Role: gate.RoleAdmin},
		{Method: http.MethodGet, Prefix: "/auth/me", Kind: gate.KindAPI},
		{Method: http.MethodPost, Prefix: "/auth/password", Kind: gate.KindAPI},
		{Method: http.MethodPost, Prefix: "/posts", Kind: gate.KindAPI, Role: gate.RoleAdmin},
		{Method: http.MethodPut, Prefix: "/posts", Kind: gate.KindAPI, Role: gate.RoleAdmin},
		{Method: http.MethodDelete, Prefix: "/posts", Kind: gate.KindAPI, Role: gate.RoleAdmin},
	}
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db.Connect(cfg.DatabaseURL)

	tokens := token.NewService(cfg.SessionSecret)
	accounts.Init(tokens, !cfg.IsDevelopment())
	articles.Init()

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(gate.CORSMiddleware)
	r.Use(gate.New(tokens, gateRules()).Middleware)

	r.Get("/", RootHandler)
	r.Get("/login", uiStub("login"))
	r.Get("/admin/dashboard", uiStub("admin dashboard"))
	r.Get("/superadmin/dashboard", uiStub("superadmin dashboard"))

	r.Mount("/auth", accounts.SetupRoutes())
	r.Mount("/admin", accounts.SetupAdminRoutes())
	r.Mount("/posts", articles.SetupRoutes())

	log.Printf("Server listening on port :%s...", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
