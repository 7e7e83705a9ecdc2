package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"medi-weather/internal/config"
)

// LastCityKey holds the canonical name of the last successfully loaded city
const LastCityKey = "weatherAppLastCity"

// ErrNotFound is returned by Get when the key has never been set
var ErrNotFound = errors.New("key not found")

// Store is a small string key/value store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the backend selected by cfg.Driver
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	logger = logger.With("component", "store", "driver", cfg.Driver)

	switch strings.ToLower(cfg.Driver) {
	case "sqlite":
		s, err := NewSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("opened sqlite store", "path", cfg.Path)
		return s, nil
	case "redis":
		s, err := NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return s, nil
	case "memory":
		logger.Warn("using in-memory store, last city will not survive restarts")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
