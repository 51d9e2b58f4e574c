package config

import (
	"os"
	"testing"
	"time"
)

func writeEnv(t *testing.T, content string) {
	t.Helper()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })
	if err := os.WriteFile(".env", []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	writeEnv(t, `APP_PORT=8080
APP_ENV=test
DB_HOST=localhost
DB_PORT=5432
DB_USER=pathlab
DB_PASSWORD=secret
DB_NAME=pathlab
JWT_SECRET=test-secret
JWT_ACCESS_EXPIRY=30m
PAYMENT_AUTO_APPROVE=false
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("port = %q", cfg.App.Port)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("access expiry = %s", cfg.JWT.AccessExpiry)
	}
	if cfg.Payment.AutoApprove {
		t.Error("expected auto approve disabled")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	writeEnv(t, `APP_PORT=8080
JWT_SECRET=test-secret
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("access expiry default = %s, want 15m", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("refresh expiry default = %s, want 168h", cfg.JWT.RefreshExpiry)
	}
	if cfg.DB.MigrationsDir != "migrations" {
		t.Errorf("migrations dir default = %q", cfg.DB.MigrationsDir)
	}
	if !cfg.Payment.AutoApprove {
		t.Error("expected auto approve on by default")
	}
}
