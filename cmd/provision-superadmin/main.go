// Provisions the first superadmin account directly over database/sql.
//
// Usage:
//
//	go run ./cmd/provision-superadmin -username root -email root@example.com -password 'initial'
//
// Refuses to run when any superadmin already exists. Expects the server to
// have migrated the schema at least once.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	username = flag.String("username", "superadmin", "Username for the superadmin account")
	email    = flag.String("email", "", "Email for the superadmin account (required)")
	password = flag.String("password", "", "Initial password, to be rotated after first login (required)")
	name     = flag.String("name", "Superadmin", "Display name")
)

func main() {
	flag.Parse()
	if *email == "" || *password == "" {
		log.Fatal("-email and -password are required")
	}

	_ = godotenv.Load(".env.local")
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	dbc, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer dbc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var existing int
	err = dbc.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM app_accounts.accounts WHERE role = 'superadmin'`,
	).Scan(&existing)
	if err != nil {
		log.Fatalf("counting superadmins: %v", err)
	}
	if existing > 0 {
		log.Fatalf("refusing to run: %d superadmin account(s) already exist", existing)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	id := uuid.New().String()
	_, err = dbc.ExecContext(ctx, `
		INSERT INTO app_accounts.accounts
			(account_id, username, name, email, hashed_password, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'superadmin', 'active', NOW(), NOW())`,
		id, *username, *name, strings.ToLower(*email), string(hashed),
	)
	if err != nil {
		log.Fatalf("inserting superadmin: %v", err)
	}

	log.Printf("superadmin %s (%s) created; rotate the initial password after first login", *username, id)
}
