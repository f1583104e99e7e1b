package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTimezone = "Asia/Kolkata"
	DefaultLocale   = "en-IN"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// site api (the CRUD backend that owns blogs, routine posts and contact mail)
	SiteAPIBaseURL        string `toml:"site_api_base_url"`
	SiteAPITimeoutSeconds int    `toml:"site_api_timeout_seconds"` // 0 -> no timeout

	// page level settings, handed to the renderers
	Timezone string `toml:"timezone"`
	Locale   string `toml:"locale"`

	// redis: admin sessions (written by the site api) and rate limiting
	RedisHost            string `toml:"redis_host"`
	RedisPort            string `toml:"redis_port"`
	AdminSessionCookie   string `toml:"admin_session_cookie"`
	AdminSessionTTLHours int    `toml:"admin_session_ttl_hours"`

	ContactRateLimitPerMin int      `toml:"contact_rate_limit_per_min"`
	AllowedOrigins         []string `toml:"allowed_origins"`

	// upper bound of the login/register form sessions kept in memory
	FormSessionsMax int `toml:"form_sessions_max"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file and returns the section for the given env,
// with defaults applied for the optional settings. Validate is left to the
// caller, since some values can still be overridden from the environment.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults(env)
	return cfg, nil
}

func (c *Config) applyDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.AdminSessionCookie == "" {
		c.AdminSessionCookie = "admin_auth"
	}
	if c.AdminSessionTTLHours <= 0 {
		c.AdminSessionTTLHours = 24
	}
	if c.ContactRateLimitPerMin <= 0 {
		c.ContactRateLimitPerMin = 5
	}
	if c.FormSessionsMax <= 0 {
		c.FormSessionsMax = 10000
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port not set")
	}
	if c.SiteAPIBaseURL == "" {
		return errors.New("site api base url not set")
	}
	if c.SiteAPITimeoutSeconds < 0 {
		return errors.New("site api timeout cannot be negative")
	}
	return nil
}

func (c *Config) SiteAPITimeout() time.Duration {
	return time.Duration(c.SiteAPITimeoutSeconds) * time.Second
}

func (c *Config) AdminSessionTTL() time.Duration {
	return time.Duration(c.AdminSessionTTLHours) * time.Hour
}
