package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-continuity/internal/adapter/kv"
	"github.com/heartmarshall/learning-continuity/internal/adapter/memory"
	"github.com/heartmarshall/learning-continuity/internal/adapter/postgres"
	"github.com/heartmarshall/learning-continuity/internal/adapter/redis"
	"github.com/heartmarshall/learning-continuity/internal/adapter/sqlite"
	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/migrations"
)

// Storage is an opened key-value backend.
type Storage struct {
	Store  kv.Store
	Pinger kv.Pinger
	Driver string

	close func() error
}

// Close releases the backend's connections.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage connects to the backend selected by cfg.Storage.Driver.
// For PostgreSQL pending migrations are applied before the pool is opened.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	driver := cfg.Storage.Driver

	switch driver {
	case config.DriverMemory:
		store := memory.New()
		logger.WarnContext(ctx, "using in-memory storage, data is lost on exit")
		return &Storage{Store: store, Pinger: store, Driver: driver}, nil

	case config.DriverPostgres:
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
		if err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.InfoContext(ctx, "migrations applied", slog.Int("count", applied))

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		store := postgres.NewStore(pool)
		return &Storage{Store: store, Pinger: store, Driver: driver, close: func() error {
			pool.Close()
			return nil
		}}, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		store := redis.NewStore(client, cfg.Redis.Namespace)
		return &Storage{Store: store, Pinger: store, Driver: driver, close: client.Close}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Storage{Store: store, Pinger: store, Driver: driver, close: store.Close}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", driver)
}
