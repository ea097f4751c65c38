package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BRAWLSQUAD_API_TOKEN_SECRET", "sekrit")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "sekrit", cfg.APITokenSecret)
	// Cookie secret falls back to the API secret
	assert.Equal(t, "sekrit", cfg.CookieTokenSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BRAWLSQUAD_API_TOKEN_SECRET", "api-secret")
	t.Setenv("BRAWLSQUAD_COOKIE_TOKEN_SECRET", "cookie-secret")
	t.Setenv("BRAWLSQUAD_PORT", "9999")
	t.Setenv("BRAWLSQUAD_STORAGE", "redis")
	t.Setenv("BRAWLSQUAD_REDIS_URL", "redis://example:6380/2")
	t.Setenv("BRAWLSQUAD_TOKEN_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://example:6380/2", cfg.RedisURL)
	assert.Equal(t, "cookie-secret", cfg.CookieTokenSecret)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}

func TestLoadMissingSecret(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
}

func TestLoadBadStorageType(t *testing.T) {
	t.Setenv("BRAWLSQUAD_API_TOKEN_SECRET", "sekrit")
	t.Setenv("BRAWLSQUAD_STORAGE", "postgres")

	_, err := Load()
	require.Error(t, err)
}
