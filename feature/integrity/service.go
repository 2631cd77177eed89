package integrity

import (
	"context"

	"sync-gateway/core/storage"
	"sync-gateway/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	models []any
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service. models are the tables the
// gateway expects; client is nil when archiving is disabled.
func NewService(db *gorm.DB, models []any, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		models: models,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// CheckSchema compares the live schema against the gateway models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	if s.db == nil {
		return checks.CheckSchema(nil, s.models)
	}
	return checks.CheckSchema(s.db.WithContext(ctx), s.models)
}

// CheckArchive reports whether the archive bucket exists.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	return checks.CheckArchive(ctx, s.client, s.bucket)
}

// FixArchive creates the missing archive bucket.
func (s *Service) FixArchive(ctx context.Context) error {
	return checks.FixArchive(ctx, s.client, s.bucket, s.logger)
}
