package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"POSTGRES_DSN", "HTTP_ADDR", "CORS_ALLOWED_ORIGINS", "ENV_RESOLVER",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME",
		"SHUTDOWN_TIMEOUT", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/events")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.CORSAllowedOrigins != "http://localhost:5173,http://127.0.0.1:5173" {
		t.Errorf("CORSAllowedOrigins = %q", cfg.CORSAllowedOrigins)
	}
	if cfg.EnvResolver != ResolverNone {
		t.Errorf("EnvResolver = %q", cfg.EnvResolver)
	}
	if cfg.DBMaxOpenConns != 20 || cfg.DBMaxIdleConns != 10 {
		t.Errorf("pool = %d/%d", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime != 30*time.Minute || cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("durations = %v/%v", cfg.DBConnMaxLifetime, cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/events")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ENV_RESOLVER", "Hierarchy")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.EnvResolver != ResolverHierarchy {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.DBMaxOpenConns != 5 || cfg.DBConnMaxLifetime != 90*time.Second {
		t.Errorf("unexpected pool config: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestFromEnv_MissingDSN(t *testing.T) {
	clearEnv(t)

	if _, err := FromEnv(); !errors.Is(err, ErrMissingDSN) {
		t.Fatalf("expected ErrMissingDSN, got %v", err)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"ENV_RESOLVER":         "external",
		"DB_MAX_IDLE_CONNS":    "-1",
		"DB_MAX_OPEN_CONNS":    "many",
		"SHUTDOWN_TIMEOUT":     "5",
		"LOG_LEVEL":            "verbose",
		"DB_CONN_MAX_LIFETIME": "forever",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("POSTGRES_DSN", "postgres://localhost/events")
			t.Setenv(key, value)

			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, including
	// empty ones, so drop the key entirely for this test.
	os.Unsetenv("POSTGRES_DSN")
	t.Cleanup(func() { os.Unsetenv("POSTGRES_DSN") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("POSTGRES_DSN=postgres://from-file/events\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PostgresDSN != "postgres://from-file/events" {
		t.Errorf("PostgresDSN = %q", cfg.PostgresDSN)
	}
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/events")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
