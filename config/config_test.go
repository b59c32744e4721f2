package config

import (
	"errors"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "secret")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", cfg.APIKey)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.ServiceName != "toolgate" {
		t.Errorf("ServiceName = %q, want toolgate", cfg.ServiceName)
	}
	if cfg.MetricsExporter != "prometheus" {
		t.Errorf("MetricsExporter = %q, want prometheus", cfg.MetricsExporter)
	}
}

func TestFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := FromEnv()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("API_KEY", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("CHUCK_API_URL", "http://localhost:9001")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_PCT", "0.25")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v, want 30m", cfg.CacheTTL)
	}
	if cfg.ChuckBaseURL != "http://localhost:9001" {
		t.Errorf("ChuckBaseURL = %q", cfg.ChuckBaseURL)
	}
	if !cfg.TracingEnabled {
		t.Error("TracingEnabled should be true")
	}
	if cfg.TracingSamplePct != 0.25 {
		t.Errorf("TracingSamplePct = %v, want 0.25", cfg.TracingSamplePct)
	}
}

func TestFromEnv_Indirection(t *testing.T) {
	t.Setenv("VAULT_KEY", "from-vault")
	t.Setenv("API_KEY", "${VAULT_KEY}")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.APIKey != "from-vault" {
		t.Errorf("APIKey = %q, want from-vault", cfg.APIKey)
	}
}

func TestFromEnv_BadDuration(t *testing.T) {
	t.Setenv("API_KEY", "secret")
	t.Setenv("CACHE_TTL", "not-a-duration")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for malformed CACHE_TTL")
	}
}
