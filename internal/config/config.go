package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration, populated from environment
// variables with the BRAWLSQUAD_ prefix.
type Config struct {
	Host string `env:"BRAWLSQUAD_HOST"`
	Port int    `env:"BRAWLSQUAD_PORT" envDefault:"8080"`

	// StorageType selects the storage backend: "memory" or "redis".
	StorageType string `env:"BRAWLSQUAD_STORAGE"   envDefault:"memory"`
	RedisURL    string `env:"BRAWLSQUAD_REDIS_URL" envDefault:"redis://localhost:6379"`

	// APITokenSecret signs tokens presented in the Authorization header.
	// CookieTokenSecret signs session-cookie tokens; it defaults to the
	// API secret when unset.
	APITokenSecret    string        `env:"BRAWLSQUAD_API_TOKEN_SECRET"`
	CookieTokenSecret string        `env:"BRAWLSQUAD_COOKIE_TOKEN_SECRET"`
	TokenTTL          time.Duration `env:"BRAWLSQUAD_TOKEN_TTL" envDefault:"24h"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.APITokenSecret == "" {
		return Config{}, fmt.Errorf("BRAWLSQUAD_API_TOKEN_SECRET is required")
	}
	if cfg.CookieTokenSecret == "" {
		cfg.CookieTokenSecret = cfg.APITokenSecret
	}

	switch cfg.StorageType {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}

	return cfg, nil
}
