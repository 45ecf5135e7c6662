package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/bingo-server/internal/dependencies/clock"
	"github.com/mcoot/bingo-server/internal/services/auth"
	"github.com/mcoot/bingo-server/internal/services/leaderboard"
	"github.com/mcoot/bingo-server/internal/session"
	sessionmemory "github.com/mcoot/bingo-server/internal/session/memory"
	sessionredis "github.com/mcoot/bingo-server/internal/session/redis"
	"github.com/mcoot/bingo-server/internal/storage"
	"github.com/mcoot/bingo-server/internal/storage/memory"
	"github.com/mcoot/bingo-server/internal/storage/postgres"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
)

// Session store type constants
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage  storage.Storage
	Sessions session.Store

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService        *auth.Service
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// DatabaseURL is the Postgres DSN (required if StorageType is "postgres")
	DatabaseURL string
	// SessionStoreType selects the session backend ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionStoreType string
	// RedisConfig holds Redis settings (required if SessionStoreType is "redis")
	RedisConfig *sessionredis.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
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
	case StorageTypePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DatabaseURL required when StorageType is postgres")
		}
		pgStore, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}

	// Create session store based on type
	var sessions session.Store
	sessionStoreType := cfg.SessionStoreType
	if sessionStoreType == "" {
		sessionStoreType = SessionStoreMemory
	}

	switch sessionStoreType {
	case SessionStoreMemory:
		sessions = sessionmemory.New()
	case SessionStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionStoreType is redis")
		}
		redisSessions, err := sessionredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		sessions = redisSessions
	default:
		return nil, errors.New("invalid SessionStoreType: must be 'memory' or 'redis'")
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, sessions, clock.New(), authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, sessions session.Store, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(store, sessions, clk, authCfg)
	leaderboardService := leaderboard.New(store, logger)

	return &App{
		Storage:            store,
		Sessions:           sessions,
		Clock:              clk,
		AuthService:        authService,
		LeaderboardService: leaderboardService,
	}
}
