package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/brawlops/brawlsquad/internal/dependencies/clock"
	"github.com/brawlops/brawlsquad/internal/services/auth"
	"github.com/brawlops/brawlsquad/internal/services/mission"
	"github.com/brawlops/brawlsquad/internal/storage"
	"github.com/brawlops/brawlsquad/internal/storage/memory"
	redisstorage "github.com/brawlops/brawlsquad/internal/storage/redis"
	"github.com/brawlops/brawlsquad/internal/token"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Token codecs, one per credential surface
	HeaderCodec *token.Codec
	CookieCodec *token.Codec

	// Services
	AuthService    *auth.Service
	MissionService *mission.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// APITokenSecret signs Authorization-header tokens (required)
	APITokenSecret string
	// CookieTokenSecret signs session-cookie tokens
	// If empty, the API secret is reused
	CookieTokenSecret string
	// TokenTTL is the lifetime of issued tokens
	// If zero, defaults to 24h
	TokenTTL time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.APITokenSecret == "" {
		return nil, errors.New("APITokenSecret is required")
	}
	cookieSecret := cfg.CookieTokenSecret
	if cookieSecret == "" {
		cookieSecret = cfg.APITokenSecret
	}
	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.APITokenSecret, cookieSecret, ttl, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, apiSecret, cookieSecret string, ttl time.Duration, logger *slog.Logger) *App {
	headerCodec := token.NewCodec([]byte(apiSecret), ttl, clk)
	cookieCodec := token.NewCodec([]byte(cookieSecret), ttl, clk)

	authService := auth.New(store, headerCodec, logger)
	missionService := mission.New(store, clk)

	return &App{
		Storage:        store,
		Clock:          clk,
		HeaderCodec:    headerCodec,
		CookieCodec:    cookieCodec,
		AuthService:    authService,
		MissionService: missionService,
	}
}
