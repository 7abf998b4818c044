package storage

import (
	"context"
	"fmt"

	"vidgram/internal/core/ports"
	"vidgram/internal/infrastructure/storage/file"
	"vidgram/internal/infrastructure/storage/memory"
	redisstorage "vidgram/internal/infrastructure/storage/redis"
	"vidgram/internal/infrastructure/storage/sqlite"
	"vidgram/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Factory selects the durable session storage backend from config, falling
// back to memory when the configured backend cannot be reached.
type Factory struct {
	storage     ports.SessionStorage
	redisClient *redis.Client
	logger      *zap.SugaredLogger
}

// NewFactory creates the configured session storage.
func NewFactory(cfg *config.Config, logger *zap.SugaredLogger) (*Factory, error) {
	f := &Factory{logger: logger}

	switch cfg.Storage.Backend {
	case "redis":
		client, err := redisstorage.NewRedisClient(
			cfg.Redis.Address,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
			logger,
		)
		if err != nil {
			logger.Warnw("failed to connect to Redis, falling back to memory session storage",
				"error", err,
			)
			f.storage = memory.NewMemorySessionStorage()
			return f, nil
		}
		f.redisClient = client
		f.storage = redisstorage.NewRedisSessionStorage(client)
		logger.Info("using Redis session storage")

	case "sqlite":
		store, err := sqlite.NewSQLiteSessionStorage(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite session storage: %w", err)
		}
		f.storage = store
		logger.Infow("using SQLite session storage", "path", cfg.Storage.SQLitePath)

	case "file":
		store, err := file.NewFileSessionStorage(cfg.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file session storage: %w", err)
		}
		f.storage = store
		logger.Infow("using file session storage", "dir", cfg.Storage.Dir)

	case "memory":
		f.storage = memory.NewMemorySessionStorage()
		logger.Info("using memory session storage")

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	return f, nil
}

// SessionStorage returns the selected backend.
func (f *Factory) SessionStorage() ports.SessionStorage {
	return f.storage
}

// HealthCheck checks backend connectivity where it applies.
func (f *Factory) HealthCheck(ctx context.Context) error {
	if f.redisClient != nil {
		return f.redisClient.Ping(ctx).Err()
	}
	return nil
}

// Close releases the selected backend.
func (f *Factory) Close() error {
	if f.storage != nil {
		return f.storage.Close()
	}
	return nil
}
