package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %v, want :8080", cfg.Server.Address)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %v, want file", cfg.Storage.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestValidate_StorageBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Backend = "cassandra"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown storage backend")
	}

	cfg = DefaultConfig()
	cfg.Storage.Backend = "redis"
	cfg.Redis.Address = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should require redis.address for redis backend")
	}

	cfg = DefaultConfig()
	cfg.Storage.Backend = "file"
	cfg.Storage.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should require storage.dir for file backend")
	}
}

func TestValidate_RateLimiting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimiting.Enabled = true
	cfg.RateLimiting.RequestsPerSecond = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should require requests_per_second when rate limiting is enabled")
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() = %v, want nil for missing file", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %v, want default", cfg.Server.Address)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  address: ":9000"
api:
  base_url: "http://backend:5000/api"
  request_timeout: 5s
storage:
  backend: memory
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if cfg.Server.Address != ":9000" {
		t.Errorf("Server.Address = %v, want :9000", cfg.Server.Address)
	}
	if cfg.API.BaseURL != "http://backend:5000/api" {
		t.Errorf("API.BaseURL = %v, want override", cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout != 5*time.Second {
		t.Errorf("API.RequestTimeout = %v, want 5s", cfg.API.RequestTimeout)
	}
	// Unset fields keep their defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileValidatesEnvOverrides(t *testing.T) {
	t.Setenv("VIDGRAM_STORAGE_BACKEND", "cassandra")

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should reject an invalid storage backend from the environment")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("VIDGRAM_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Address != ":3000" {
		t.Errorf("Server.Address = %v, want :3000", cfg.Server.Address)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
}
