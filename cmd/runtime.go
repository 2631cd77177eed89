package cmd

import (
	"context"
	"fmt"
	"time"

	"sync-gateway/core/archive"
	"sync-gateway/core/config"
	"sync-gateway/core/database"
	"sync-gateway/core/logger"
	"sync-gateway/core/reconcile"
	"sync-gateway/core/storage"
	"sync-gateway/feature/ingest"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the logger every command needs.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// openDatabase connects to the store and, when migrate is set, creates or
// upgrades the gateway tables.
func openDatabase(cfg database.Config, logg *zap.Logger, migrate bool) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Driver), zap.String("name", cfg.Name))

	if migrate {
		if err := db.AutoMigrate(ingest.Models()...); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		logg.Info("Schema migrated", zap.Int("tables", len(ingest.Models())))
	}
	return db, nil
}

// openArchive returns the storage client and archiver, or nils when
// archiving is disabled.
func openArchive(ctx context.Context, cfg *config.Config, logg *zap.Logger) (storage.Client, *archive.Archiver, error) {
	if !cfg.Archive.Enabled {
		return nil, nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	archiver := archive.New(client, cfg.Storage.Bucket, cfg.Archive.Prefix)

	ensureCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := archiver.EnsureBucket(ensureCtx); err != nil {
		// The archive is best-effort; a broken bucket must not stop syncing.
		logg.Warn("Archive bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
	}
	return client, archiver, nil
}

func newEngine(db *gorm.DB, logg *zap.Logger) *reconcile.Engine {
	return reconcile.NewEngine(db, ingest.DefaultRegistry(), logg)
}
