package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/broadsidegame/broadside-go/internal/dependencies/clock"
	"github.com/broadsidegame/broadside-go/internal/dependencies/random"
	"github.com/broadsidegame/broadside-go/internal/services/auth"
	"github.com/broadsidegame/broadside-go/internal/services/cpu"
	"github.com/broadsidegame/broadside-go/internal/services/match"
	"github.com/broadsidegame/broadside-go/internal/services/rules"
	"github.com/broadsidegame/broadside-go/internal/storage"
	"github.com/broadsidegame/broadside-go/internal/storage/memory"
	redisstorage "github.com/broadsidegame/broadside-go/internal/storage/redis"
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

	// Services
	RulesService    *rules.Service
	MatchController *match.Controller
	CPUService      *cpu.Service
	AuthService     *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// CPUConfig holds search settings for the CPU opponent (optional)
	// If zero value, defaults to cpu.DefaultConfig()
	CPUConfig cpu.Config
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

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default configs if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}
	cpuCfg := cfg.CPUConfig
	if cpuCfg.Depth == 0 {
		cpuCfg = cpu.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, cpuCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, cpuCfg cpu.Config, logger *slog.Logger) *App {
	// Create services
	rulesService := rules.New()
	matchController := match.NewController(store, rulesService, clk, rnd, logger)
	strategies := cpu.DefaultStrategies(rulesService, rnd, cpuCfg)
	cpuService := cpu.NewService(matchController, strategies, logger)
	authService := auth.New(store, clk, authCfg)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		RulesService:    rulesService,
		MatchController: matchController,
		CPUService:      cpuService,
		AuthService:     authService,
	}
}
