package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultPort        = "3000"
	DefaultServiceName = "toolgate"
	DefaultCacheTTL    = time.Hour
	DefaultLogLevel    = "info"
)

// Configuration errors.
var (
	ErrMissingAPIKey = errors.New("config: API_KEY is required")
)

// Config is the full runtime configuration, sourced from the environment.
type Config struct {
	// Addr is the listen address, ":" + PORT.
	Addr string

	// APIKey is the shared secret required on every request.
	APIKey string

	// CacheTTL bounds how long translation results stay cached.
	CacheTTL time.Duration

	// ServiceName and Version identify the process in telemetry.
	ServiceName string
	Version     string

	// Upstream base URL overrides. Empty values use the public endpoints.
	ChuckBaseURL    string
	DadJokeBaseURL  string
	LingvaBaseURL   string
	MyMemoryBaseURL string

	// Telemetry knobs, passed through to the observer.
	TracingEnabled   bool
	TracingExporter  string
	TracingSamplePct float64
	MetricsEnabled   bool
	MetricsExporter  string
	LogLevel         string
}

// FromEnv builds a Config from the process environment. Every value runs
// through strict ${VAR} expansion, so indirections like
// API_KEY='${VAULT_TOOLGATE_KEY}' resolve or fail loudly.
func FromEnv() (Config, error) {
	cfg := Config{
		ServiceName: DefaultServiceName,
		CacheTTL:    DefaultCacheTTL,
		LogLevel:    DefaultLogLevel,
	}

	port, err := envString("PORT", DefaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.Addr = ":" + port

	if cfg.APIKey, err = envString("API_KEY", ""); err != nil {
		return Config{}, err
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	if cfg.CacheTTL, err = envDuration("CACHE_TTL", DefaultCacheTTL); err != nil {
		return Config{}, err
	}

	if cfg.ServiceName, err = envString("SERVICE_NAME", DefaultServiceName); err != nil {
		return Config{}, err
	}
	if cfg.Version, err = envString("SERVICE_VERSION", ""); err != nil {
		return Config{}, err
	}

	if cfg.ChuckBaseURL, err = envString("CHUCK_API_URL", ""); err != nil {
		return Config{}, err
	}
	if cfg.DadJokeBaseURL, err = envString("DAD_JOKE_API_URL", ""); err != nil {
		return Config{}, err
	}
	if cfg.LingvaBaseURL, err = envString("LINGVA_API_URL", ""); err != nil {
		return Config{}, err
	}
	if cfg.MyMemoryBaseURL, err = envString("MYMEMORY_API_URL", ""); err != nil {
		return Config{}, err
	}

	if cfg.TracingEnabled, err = envBool("TRACING_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.TracingExporter, err = envString("TRACING_EXPORTER", "stdout"); err != nil {
		return Config{}, err
	}
	if cfg.TracingSamplePct, err = envFloat("TRACING_SAMPLE_PCT", 1.0); err != nil {
		return Config{}, err
	}
	if cfg.MetricsEnabled, err = envBool("METRICS_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.MetricsExporter, err = envString("METRICS_EXPORTER", "prometheus"); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = envString("LOG_LEVEL", DefaultLogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envString(key, def string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	expanded, err := ExpandEnvStrict(raw)
	if err != nil {
		return "", fmt.Errorf("config: %s: %w", key, err)
	}
	return expanded, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s, err := envString(key, "")
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func envBool(key string, def bool) (bool, error) {
	s, err := envString(key, "")
	if err != nil {
		return false, err
	}
	if s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func envFloat(key string, def float64) (float64, error) {
	s, err := envString(key, "")
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}
