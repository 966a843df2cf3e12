package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"campus-ads/internal/adapter/bolt"
	"campus-ads/internal/adapter/postgres"
	"campus-ads/internal/config"
	"campus-ads/internal/core/port"
	"campus-ads/internal/db"
)

// repository is what every storage driver provides.
type repository interface {
	port.AdRepository
	port.CatalogWriter
}

// openRepository connects the configured storage driver. The returned
// function releases it.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (repository, func(), error) {
	switch cfg.Storage.Driver {
	case "bolt":
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.BoltPath), 0o750); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		store, err := bolt.Open(cfg.Storage.BoltPath, bolt.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using bolt storage", slog.String("path", cfg.Storage.BoltPath))
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("close bolt store", slog.Any("error", err))
			}
		}, nil
	default:
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewAdRepository(pool, logger), pool.Close, nil
	}
}
