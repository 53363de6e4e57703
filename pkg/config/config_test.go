package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if got := cfg.Redis.DialTimeout; got != 5*time.Second {
		t.Fatalf("expected dial timeout 5s, got %v", got)
	}

	if cfg.Catalog.PageSize != 12 {
		t.Fatalf("expected default page size 12, got %d", cfg.Catalog.PageSize)
	}

	if cfg.Store.Key != "products" {
		t.Fatalf("unexpected store key %q", cfg.Store.Key)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreBackend, "filesystem")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown store backend to return an error")
	}
}

func TestLoad_RedisBackendRequiresRedis(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvRedisURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvRedisURL, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without redis config to return an error")
	}
}

func TestLoad_DBBackendWithSQLiteNeedsNoDSN(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreBackend, StoreBackendDB)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.Store.IsDB() {
		t.Fatalf("expected db backend, got %q", cfg.Store.Backend)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
}
