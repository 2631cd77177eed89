package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sync-gateway/core/archive"
	"sync-gateway/core/cache"
	"sync-gateway/core/reconcile"

	"go.uber.org/zap"
)

// ErrArchiveDisabled is returned by archive operations when archiving is off.
var ErrArchiveDisabled = errors.New("payload archive is disabled")

// archiveTimeout bounds the best-effort archive upload of a push.
const archiveTimeout = 10 * time.Second

// Service accepts ERP batches and hands them to the reconciliation engine.
type Service struct {
	engine   *reconcile.Engine
	archiver *archive.Archiver
	cache    cache.Store
	logger   *zap.Logger
}

// NewService creates the sync service. archiver may be nil to disable
// archiving and store may be nil when no cache is used.
func NewService(engine *reconcile.Engine, archiver *archive.Archiver, store cache.Store, logger *zap.Logger) *Service {
	if store == nil {
		store = cache.NopStore{}
	}
	return &Service{
		engine:   engine,
		archiver: archiver,
		cache:    store,
		logger:   logger,
	}
}

// Push reconciles one batch. The payload is archived whatever the outcome.
func (s *Service) Push(ctx context.Context, req PushRequest) (*reconcile.Result, error) {
	records, err := req.Records()
	if err != nil {
		// The engine rejects the undecodable payload as a non-array and audits it.
		s.logger.Warn("Undecodable Payload string",
			zap.String("kind", req.DataType),
			zap.Error(err),
		)
		records = req.Payload
	}

	result, err := s.engine.Reconcile(ctx, req.DataType, records)
	s.archive(ctx, result, records)
	if err == nil {
		s.invalidateStats(ctx)
	}
	return result, err
}

// Replay reconciles an archived batch again under a new batch ID.
func (s *Service) Replay(ctx context.Context, key string) (*reconcile.Result, error) {
	if s.archiver == nil {
		return nil, ErrArchiveDisabled
	}
	kind, _, err := s.archiver.ParseKey(key)
	if err != nil {
		return nil, err
	}
	payload, err := s.archiver.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Replaying archived batch", zap.String("key", key), zap.String("kind", kind))
	result, err := s.engine.Reconcile(ctx, kind, payload)
	if err == nil {
		s.invalidateStats(ctx)
	}
	return result, err
}

// Archived lists archived batches, newest first.
func (s *Service) Archived(ctx context.Context, kind string, limit int) ([]archive.Entry, error) {
	if s.archiver == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archiver.List(ctx, kind, limit)
}

// Kinds returns the accepted entity-kind labels.
func (s *Service) Kinds() []reconcile.Kind {
	return s.engine.Registry().Kinds()
}

func (s *Service) archive(ctx context.Context, result *reconcile.Result, payload []byte) {
	if s.archiver == nil || result == nil {
		return
	}
	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()

	key, err := s.archiver.Archive(archiveCtx, string(result.Kind), result.BatchID, result.StartedAt, payload)
	if err != nil {
		s.logger.Warn("Failed to archive payload",
			zap.String("batch_id", result.BatchID),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("Payload archived", zap.String("batch_id", result.BatchID), zap.String("key", key))
}

func (s *Service) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.KeyDashboardStats); err != nil {
		s.logger.Warn("Failed to invalidate dashboard stats", zap.Error(err))
	}
}

// summary renders the human readable message returned to the ERP.
func summary(result *reconcile.Result) string {
	return fmt.Sprintf("Processed %s batch (%d records)", result.Kind, result.Attempted)
}
