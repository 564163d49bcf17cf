package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoaderRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	loader := NewLoader("").WithDotEnv(false)
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error when no secret is configured")
	}
}

func TestLoaderDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	result, err := NewLoader("").WithDotEnv(false).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	cfg := result.Config
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.TTL.Std() != 24*time.Hour {
		t.Errorf("expected default TTL 24h, got %v", cfg.Auth.TTL)
	}
	if cfg.Auth.Admin.Username != "admin" {
		t.Errorf("expected default admin username, got %q", cfg.Auth.Admin.Username)
	}
}

func TestLoaderFileAndEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9000
auth:
  secret: file-secret
  ttl: 1h
log:
  log_level: debug
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORT", "9100")

	result, err := NewLoader(path).WithDotEnv(false).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	cfg := result.Config
	if cfg.Server.Port != 9100 {
		t.Errorf("environment should override file port, got %d", cfg.Server.Port)
	}
	if cfg.Auth.Secret != "env-secret" {
		t.Errorf("environment should override file secret, got %q", cfg.Auth.Secret)
	}
	if cfg.Auth.TTL.Std() != time.Hour {
		t.Errorf("expected TTL from file, got %v", cfg.Auth.TTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level from file, got %q", cfg.Log.Level)
	}
}

func TestLoaderMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).WithDotEnv(false).Load(); err != nil {
		t.Fatalf("missing config file should not fail: %v", err)
	}
}
