package factory

import (
	"errors"
	"io"
	"log/slog"

	"rostershop/internal/dependencies/clock"
	"rostershop/internal/metrics"
	"rostershop/internal/services/account"
	"rostershop/internal/services/roster"
	"rostershop/internal/services/shop"
	"rostershop/internal/storage"
	"rostershop/internal/storage/memory"
	redisstorage "rostershop/internal/storage/redis"
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

	// Observability
	Metrics *metrics.Metrics

	// Services
	RosterController *roster.Controller
	ShopService      *shop.Service
	AccountService   *account.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AccountConfig holds configuration for the account service (optional)
	AccountConfig account.Config
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

	return newWithDependencies(store, clock.New(), cfg.AccountConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, accountCfg account.Config, logger *slog.Logger) *App {
	m := metrics.New()

	rosterController := roster.NewController(store, logger)
	accountService := account.New(store, clk, accountCfg, logger)
	// Registered accounts back the shop's balance checks
	shopService := shop.New(store, accountService, m, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Metrics:          m,
		RosterController: rosterController,
		ShopService:      shopService,
		AccountService:   accountService,
	}
}
