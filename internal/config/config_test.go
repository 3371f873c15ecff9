package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  dsn: host=localhost dbname=lucito
auth:
  jwt_secret: file-secret
  token_ttl: 12h
uploads:
  dir: /var/lib/lucito/images
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Auth.JWTSecret != "file-secret" {
		t.Errorf("Auth.JWTSecret = %q, want %q", cfg.Auth.JWTSecret, "file-secret")
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want %v", cfg.Auth.TokenTTL, 12*time.Hour)
	}
	if cfg.Uploads.Dir != "/var/lib/lucito/images" {
		t.Errorf("Uploads.Dir = %q", cfg.Uploads.Dir)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: file-secret
`)
	t.Setenv("JWT_AUTH_SECRET", "env-secret")
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("Auth.JWTSecret = %q, want env override", cfg.Auth.JWTSecret)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want env override", cfg.Database.Driver)
	}
}

func TestMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("JWT_AUTH_SECRET", "env-only")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Database.Driver != "sqlite3" {
		t.Errorf("Database.Driver = %q, want default %q", cfg.Database.Driver, "sqlite3")
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want default 24h", cfg.Auth.TokenTTL)
	}
}

func TestMissingSecretFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("Load() succeeded without a JWT secret")
	}
}

func TestStringMasksSecrets(t *testing.T) {
	t.Setenv("JWT_AUTH_SECRET", "super-secret-value")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.String(); got == "" || strings.Contains(got, "super-secret-value") {
		t.Errorf("String() = %q leaks the secret", got)
	}
}
