package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// GitHub repository source. A token is optional; without one the
	// service makes unauthenticated requests against the public API.
	GitHubOwner    string        `envconfig:"GITHUB_OWNER" default:"Gujjar-Pranav"`
	GitHubToken    string        `envconfig:"GITHUB_TOKEN"`
	GitHubCacheTTL time.Duration `envconfig:"GITHUB_CACHE_TTL" default:"60s"`

	SentryDSN string `envconfig:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("PORTFOLIO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

func (c *Config) HasSentry() bool {
	return c.SentryDSN != ""
}
