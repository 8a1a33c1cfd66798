package accounts

import (
	"log"

	"github.com/MarketPulse/MP-Backend/internal/db"
	"github.com/MarketPulse/MP-Backend/internal/token"
)

var (
	tokens        *token.Service
	secureCookies bool
)

func Init(tokenService *token.Service, secure bool) {
	Migrate()
	tokens = tokenService
	secureCookies = secure
}

// Migrate sets up the schema and tables without wiring the token service;
// the seed command uses it directly.
func Migrate() {
	if err := db.EnsureSchema(db.DB, "app_accounts"); err != nil {
		log.Fatal("Failed to ensure schema app_accounts: ", err)
	}

	if err := db.DB.AutoMigrate(&Account{}); err != nil {
		log.Fatal("Failed to auto-migrate account tables: ", err)
	}
}
