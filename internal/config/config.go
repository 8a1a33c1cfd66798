// Package config handles startup configuration for the backend: database
// DSN, session-token secret, listen port, and environment mode.
package config

import (
	"errors"
	"log"
	"os"
	"strings"
)

// Config holds runtime settings read once at startup.
//
// Fields:
//   - DatabaseURL: PostgreSQL DSN.
//   - SessionSecret: HMAC secret for signing session tokens (HS256).
//   - Port: HTTP listen port.
//   - Env: "development" or "production".
type Config struct {
	DatabaseURL   string
	SessionSecret string
	Port          string
	Env           string
}

// devSecret is only ever used when APP_ENV=development. Refusing to fall
// back to it anywhere else keeps a guessable secret out of production.
const devSecret = "dev-only-insecure-secret"

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from the environment. It fails when
// SESSION_SECRET is absent outside development mode; a signing secret must
// never default silently.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Port:          os.Getenv("PORT"),
		Env:           strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))),
	}

	if cfg.Env == "" {
		cfg.Env = "production"
	}
	if cfg.Port == "" {
		cfg.Port = "5050"
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("SESSION_SECRET is required outside development mode")
		}
		log.Println("[config] SESSION_SECRET not set, using development-only secret")
		cfg.SessionSecret = devSecret
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}

	return cfg, nil
}
