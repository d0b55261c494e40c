package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected 12h session TTL, got %v", cfg.SessionTTL)
	}
	if !cfg.RunMigrations || !cfg.RunSeed || !cfg.MetricsEnabled {
		t.Fatalf("expected migrations, seed and metrics on by default: %+v", cfg)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RUN_SEED", "false")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected overridden addr, got %q", cfg.Addr)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m TTL, got %v", cfg.SessionTTL)
	}
	if cfg.RunSeed {
		t.Fatal("expected seed disabled")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("RUN_MIGRATIONS", "maybe")

	cfg := Load()
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("malformed duration must fall back, got %v", cfg.SessionTTL)
	}
	if !cfg.RunMigrations {
		t.Fatal("malformed bool must fall back")
	}
}

func TestValidateDevelopmentDefaults(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("development defaults must validate: %v", err)
	}
}

func TestValidateProduction(t *testing.T) {
	cfg := Config{Environment: "production", SessionTTL: time.Hour, SessionSecret: "nexhr-dev-secret"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("production without DATABASE_URL must fail validation")
	}

	cfg.DatabaseURL = "postgres://localhost/nexhr"
	if err := cfg.Validate(); err == nil {
		t.Fatal("production with the development secret must fail validation")
	}

	cfg.SessionSecret = "rotated"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("production config must validate: %v", err)
	}
}

func TestValidateRejectsShortTTL(t *testing.T) {
	cfg := Config{Environment: "development", SessionTTL: 10 * time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("sub-minute TTL must fail validation")
	}
}
