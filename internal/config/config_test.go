package config

import (
	"os"
	"testing"
	"time"
)

func TestEnvOr(t *testing.T) {
	// Unset key returns fallback
	os.Unsetenv("TEST_ENVOR_KEY")
	if got := envOr("TEST_ENVOR_KEY", "default"); got != "default" {
		t.Errorf("envOr unset key = %q, want %q", got, "default")
	}

	// Set key returns value
	os.Setenv("TEST_ENVOR_KEY", "custom")
	defer os.Unsetenv("TEST_ENVOR_KEY")
	if got := envOr("TEST_ENVOR_KEY", "default"); got != "custom" {
		t.Errorf("envOr set key = %q, want %q", got, "custom")
	}

	// Empty string returns fallback
	os.Setenv("TEST_ENVOR_KEY", "")
	if got := envOr("TEST_ENVOR_KEY", "fallback"); got != "fallback" {
		t.Errorf("envOr empty key = %q, want %q", got, "fallback")
	}
}

func TestDurationOr(t *testing.T) {
	os.Unsetenv("TEST_DURATION_KEY")
	if got := durationOr("TEST_DURATION_KEY", 5*time.Minute); got != 5*time.Minute {
		t.Errorf("durationOr unset key = %v, want 5m", got)
	}

	os.Setenv("TEST_DURATION_KEY", "30s")
	defer os.Unsetenv("TEST_DURATION_KEY")
	if got := durationOr("TEST_DURATION_KEY", 5*time.Minute); got != 30*time.Second {
		t.Errorf("durationOr set key = %v, want 30s", got)
	}

	// Garbage and non-positive values fall back
	os.Setenv("TEST_DURATION_KEY", "soon")
	if got := durationOr("TEST_DURATION_KEY", time.Minute); got != time.Minute {
		t.Errorf("durationOr invalid value = %v, want 1m", got)
	}
	os.Setenv("TEST_DURATION_KEY", "-10s")
	if got := durationOr("TEST_DURATION_KEY", time.Minute); got != time.Minute {
		t.Errorf("durationOr negative value = %v, want 1m", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	// Clear all relevant env vars
	for _, k := range []string{"PORT", "CHAINS_API_URL", "REFRESH_INTERVAL", "DATABASE_URL", "FRONTEND_ORIGIN", "REDIS_URL", "REDIS_PASSWORD", "INFISICAL_CLIENT_ID", "INFISICAL_CLIENT_SECRET"} {
		os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.ChainsAPIURL != "http://localhost:8000" {
		t.Errorf("ChainsAPIURL = %q, want %q", cfg.ChainsAPIURL, "http://localhost:8000")
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Errorf("RefreshInterval = %v, want 5m", cfg.RefreshInterval)
	}
	if cfg.FrontendOrigin != "*" {
		t.Errorf("FrontendOrigin = %q, want %q", cfg.FrontendOrigin, "*")
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("CHAINS_API_URL", "http://chainsapi:8000")
	os.Setenv("REFRESH_INTERVAL", "2m")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("FRONTEND_ORIGIN", "http://localhost:3000")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("CHAINS_API_URL")
		os.Unsetenv("REFRESH_INTERVAL")
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("FRONTEND_ORIGIN")
	}()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.ChainsAPIURL != "http://chainsapi:8000" {
		t.Errorf("ChainsAPIURL = %q, want %q", cfg.ChainsAPIURL, "http://chainsapi:8000")
	}
	if cfg.RefreshInterval != 2*time.Minute {
		t.Errorf("RefreshInterval = %v, want 2m", cfg.RefreshInterval)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "postgres://test")
	}
	if cfg.FrontendOrigin != "http://localhost:3000" {
		t.Errorf("FrontendOrigin = %q, want %q", cfg.FrontendOrigin, "http://localhost:3000")
	}
}
