package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "9908" {
		t.Fatalf("admin pair = %q/%q, want admin/9908", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.StorageBackend != StorageBackendFile {
		t.Fatalf("StorageBackend = %q, want %q", cfg.StorageBackend, StorageBackendFile)
	}
	if cfg.StorageKey != "cricket_data_v2" {
		t.Fatalf("StorageKey = %q, want cricket_data_v2", cfg.StorageKey)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("ReadTimeout = %v, want 10s", cfg.ReadTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/club.db")
	t.Setenv("ADMIN_USERNAME", "chair")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvProd)
	}
	if cfg.StorageBackend != StorageBackendSQLite {
		t.Fatalf("StorageBackend = %q, want %q", cfg.StorageBackend, StorageBackendSQLite)
	}
	if cfg.AdminUsername != "chair" || cfg.AdminPassword != "secret" {
		t.Fatalf("admin pair = %q/%q, want chair/secret", cfg.AdminUsername, cfg.AdminPassword)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://a.example" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("WriteTimeout = %v, want 30s", cfg.WriteTimeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad app env", key: "APP_ENV", value: "local"},
		{name: "bad storage backend", key: "STORAGE_BACKEND", value: "postgres"},
		{name: "bad timeout", key: "HTTP_READ_TIMEOUT", value: "fast"},
		{name: "bad log level", key: "LOG_LEVEL", value: "loud"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() accepted %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoadRequiresUptraceDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted UPTRACE_ENABLED=true without a DSN")
	}

	t.Setenv("UPTRACE_DSN", "https://token@uptrace.dev/1")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UptraceEnabled {
		t.Fatal("UptraceEnabled = false, want true")
	}
}
