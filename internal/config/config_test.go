package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
port = 9090
log_level = "trace"
site_api_base_url = "http://localhost:8000"
redis_host = "localhost"
redis_port = "6379"
allowed_origins = ["http://localhost:8080"]

[production]
host = "0.0.0.0"
port = 9000
site_api_base_url = "http://site-api:8000"
site_api_timeout_seconds = 30
timezone = "Europe/Berlin"
locale = "en-GB"
admin_session_ttl_hours = 12
contact_rate_limit_per_min = 2
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	path := writeTestConfig(t, testConfigToml)

	cfg, err := Load("dev", path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, "admin_auth", cfg.AdminSessionCookie)
	assert.Equal(t, 24*time.Hour, cfg.AdminSessionTTL())
	assert.Equal(t, 5, cfg.ContactRateLimitPerMin)
	assert.Equal(t, 10000, cfg.FormSessionsMax)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.AllowedOrigins)
	assert.Zero(t, cfg.SiteAPITimeout())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Production(t *testing.T) {
	path := writeTestConfig(t, testConfigToml)

	cfg, err := Load("production", path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "en-GB", cfg.Locale)
	assert.Equal(t, 30*time.Second, cfg.SiteAPITimeout())
	assert.Equal(t, 12*time.Hour, cfg.AdminSessionTTL())
	assert.Equal(t, 2, cfg.ContactRateLimitPerMin)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeTestConfig(t, testConfigToml)
	_, err = Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	onlyDev := writeTestConfig(t, "[development]\nport = 1\n")
	_, err = Load("prod", onlyDev)
	assert.EqualError(t, err, "no config section for env: prod")
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	assert.EqualError(t, cfg.Validate(), "port not set")

	cfg.Port = 9000
	assert.EqualError(t, cfg.Validate(), "site api base url not set")

	cfg.SiteAPIBaseURL = "http://localhost:8000"
	cfg.SiteAPITimeoutSeconds = -1
	assert.EqualError(t, cfg.Validate(), "site api timeout cannot be negative")

	cfg.SiteAPITimeoutSeconds = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("SENTRY_DSN", "https://key@sentry.example/1")
	t.Setenv("HONEYCOMB_ENABLED", "true")
	t.Setenv("PORTFOLIO_SITE_API_URL", "http://site-api:8000")

	s, err := LoadSecrets()
	require.NoError(t, err)
	assert.Equal(t, "https://key@sentry.example/1", s.SentryDSN)
	assert.True(t, s.HoneycombEnabled)
	assert.Equal(t, "http://site-api:8000", s.SiteAPIBaseURL)
	assert.Equal(t, "portfolio-frontend", s.OtelServiceName)

	t.Setenv("HONEYCOMB_ENABLED", "not-a-bool")
	_, err = LoadSecrets()
	assert.Error(t, err)
}
