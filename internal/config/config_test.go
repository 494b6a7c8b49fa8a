package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"kidpoints/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(io.Discard, slog.LevelError, "text")
}

func clearAuthEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_TOKEN_TTL", "")
}

func TestLoadRequiresJWTSecretOutsideDevelopment(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("ENV", "production")

	if _, err := Load(testLogger()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset in production")
	}
}

func TestLoadFallsBackToDevSecretInDevelopment(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("ENV", "development")

	cfg, err := Load(testLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Auth.JWTSecret != devJWTSecret {
		t.Fatalf("expected built-in development secret")
	}
}

func TestLoadUsesConfiguredSecretAndTTL(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "configured-secret")
	t.Setenv("AUTH_TOKEN_TTL", "30m")

	cfg, err := Load(testLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Auth.JWTSecret != "configured-secret" {
		t.Fatalf("expected configured secret, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %v", cfg.Auth.TokenTTL)
	}
}

func TestTokenTTLDefaultsToEightHours(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("ENV", "development")

	cfg, err := Load(testLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Auth.TokenTTL != 8*time.Hour {
		t.Fatalf("expected 8h default ttl, got %v", cfg.Auth.TokenTTL)
	}
}

func TestGetDSNPrefersExplicitDSN(t *testing.T) {
	db := DBConfig{
		DSN:  "host=db user=u password=p dbname=x port=5432",
		Host: "ignored",
	}
	if got := db.GetDSN(); got != db.DSN {
		t.Fatalf("expected explicit DSN, got %q", got)
	}

	db = DBConfig{
		Host: "localhost", Port: "5432",
		User: "postgres", Password: "postgres",
		Name: "kidpoints", SSLMode: "disable", TimeZone: "UTC",
	}
	want := "host=localhost user=postgres password=postgres dbname=kidpoints port=5432 sslmode=disable TimeZone=UTC"
	if got := db.GetDSN(); got != want {
		t.Fatalf("unexpected DSN %q", got)
	}
}
