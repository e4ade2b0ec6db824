package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "Gujjar-Pranav", cfg.GitHubOwner)
	assert.Equal(t, 60*time.Second, cfg.GitHubCacheTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_PORT", "9090")
	t.Setenv("PORTFOLIO_DEBUG", "true")
	t.Setenv("PORTFOLIO_GITHUB_OWNER", "someone-else")
	t.Setenv("PORTFOLIO_GITHUB_TOKEN", "ghp_test")
	t.Setenv("PORTFOLIO_GITHUB_CACHE_TTL", "5m")
	t.Setenv("PORTFOLIO_SENTRY_DSN", "https://key@sentry.example/1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "someone-else", cfg.GitHubOwner)
	assert.Equal(t, 5*time.Minute, cfg.GitHubCacheTTL)
	assert.True(t, cfg.HasGitHubToken())
	assert.True(t, cfg.HasSentry())
}

func TestHasHelpers(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasGitHubToken())
	assert.False(t, cfg.HasSentry())
}
