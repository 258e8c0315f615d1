package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default server port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "college_db" {
		t.Errorf("default database name = %q, want college_db", cfg.Database.DBName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Server.StoragePath != "uploads" {
		t.Errorf("default storage path = %q, want uploads", cfg.Server.StoragePath)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "9090"
database:
  dbname: "college_test"
logging:
  level: "debug"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("server port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.DBName != "college_test" {
		t.Errorf("database name = %q, want college_test", cfg.Database.DBName)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched values keep their defaults
	if cfg.Database.Host != "localhost" {
		t.Errorf("database host = %q, want localhost", cfg.Database.Host)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_PASSWORD", "fromenv")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("server port = %q, want env value 7070", cfg.Server.Port)
	}
	if cfg.Database.Password != "fromenv" {
		t.Errorf("database password = %q, want env value fromenv", cfg.Database.Password)
	}
}

func TestLoadConfigInvalidLifetime(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig accepted an invalid connection lifetime")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "college"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "college_db"
	cfg.Database.SSLMode = "require"

	want := "postgres://college:pw@db.internal:5433/college_db?sslmode=require"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString = %q, want %q", got, want)
	}
}
