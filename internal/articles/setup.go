package articles

import (
	"log"

	"github.com/MarketPulse/MP-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_articles"); err != nil {
		log.Fatal("Failed to ensure schema app_articles: ", err)
	}

	if err := db.DB.AutoMigrate(&Article{}); err != nil {
		log.Fatal("Failed to auto-migrate article tables: ", err)
	}
}
