package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Secrets never live in the TOML file, they come from the process environment
// (optionally seeded from a .env file in development).
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	RedisPassword    string `env:"PORTFOLIO_REDIS_PASS"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"portfolio-frontend"`
	// overrides site_api_base_url from the config file, used in docker setups
	SiteAPIBaseURL string `env:"PORTFOLIO_SITE_API_URL"`
}

func LoadSecrets() (Secrets, error) {
	var s Secrets
	if err := env.Parse(&s); err != nil {
		return Secrets{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
