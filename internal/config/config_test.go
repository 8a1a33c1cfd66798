package config

import "testing"

func setBase(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
}

func TestLoad_RefusesMissingSecretInProduction(t *testing.T) {
	setBase(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when SESSION_SECRET is missing outside development")
	}
}

func TestLoad_DevelopmentFallsBackToDevSecret(t *testing.T) {
	setBase(t)
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SessionSecret == "" {
		t.Error("expected a development secret to be set")
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	setBase(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBase(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "5050" {
		t.Errorf("expected default port 5050, got %q", cfg.Port)
	}
	if cfg.IsDevelopment() {
		t.Error("expected production mode by default")
	}
}
