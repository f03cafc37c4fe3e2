package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/hleth/pokerledger/internal/dependencies/clock"
	"github.com/hleth/pokerledger/internal/dependencies/random"
	"github.com/hleth/pokerledger/internal/ledger"
	"github.com/hleth/pokerledger/internal/model"
	"github.com/hleth/pokerledger/internal/storage"
	"github.com/hleth/pokerledger/internal/storage/memory"
	redisstorage "github.com/hleth/pokerledger/internal/storage/redis"
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
	Clock  clock.Clock
	Random random.Random

	// Ledger engine for the configured profile
	Ledger *ledger.Ledger
}

// Config holds configuration for the application factory
type Config struct {
	// Profile namespaces all ledger data (required)
	Profile model.ProfileID
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.Profile == "" {
		return nil, errors.New("profile is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

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
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, cfg.Profile, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, profile model.ProfileID, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage: store,
		Clock:   clk,
		Random:  rnd,
		Ledger:  ledger.New(store, profile, clk, rnd, logger),
	}
}
