package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Name != "account-service" {
		t.Errorf("unexpected app name: %s", cfg.App.Name)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Errorf("unexpected addr: %s", cfg.App.Addr())
	}
	if cfg.Security.BcryptCost != 12 {
		t.Errorf("unexpected bcrypt cost: %d", cfg.Security.BcryptCost)
	}
	if !cfg.Postgres.RunMigrations {
		t.Error("migrations should run by default")
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Errorf("unexpected request timeout: %s", cfg.App.RequestTimeout())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SECURITY_BCRYPT_COST", "4")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Errorf("unexpected port: %s", cfg.App.Port)
	}
	if cfg.Security.BcryptCost != 4 {
		t.Errorf("unexpected bcrypt cost: %d", cfg.Security.BcryptCost)
	}
	if cfg.Postgres.RunMigrations {
		t.Error("migrations override not applied")
	}
	if cfg.App.RequestTimeout() != 0 {
		t.Errorf("zero timeout must disable the deadline, got %s", cfg.App.RequestTimeout())
	}
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}
