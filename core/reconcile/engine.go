package reconcile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// auditTimeout bounds the audit write, which outlives a cancelled request.
const auditTimeout = 5 * time.Second

// Engine applies batches and records their outcome.
type Engine struct {
	db       *gorm.DB
	registry *Registry
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRecorder replaces the default GORM audit recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine that writes through db and resolves kinds with registry.
func NewEngine(db *gorm.DB, registry *Registry, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		db:       db,
		registry: registry,
		recorder: NewGormRecorder(db),
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Registry returns the dispatch table used by the engine.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Reconcile applies one batch of kind atomically and writes exactly one audit
// row. The returned Result is never nil, even when err is not.
func (e *Engine) Reconcile(ctx context.Context, kind string, payload []byte) (*Result, error) {
	start := e.now()
	result := &Result{
		BatchID:   uuid.NewString(),
		Kind:      Kind(kind),
		Attempted: CountRecords(payload),
		StartedAt: start.UTC(),
	}

	outcome, err := e.apply(ctx, Kind(kind), payload)
	if outcome != nil {
		result.Outcome = *outcome
	}
	result.Duration = e.now().Sub(start)

	e.log(result, err)
	e.record(ctx, result, err)

	return result, err
}

func (e *Engine) apply(ctx context.Context, kind Kind, payload []byte) (*Outcome, error) {
	strategy, err := e.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	plan, err := strategy.Plan(payload)
	if err != nil {
		return nil, err
	}

	var outcome *Outcome
	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var applyErr error
		outcome, applyErr = plan.Apply(ctx, tx)
		return applyErr
	})
	if err != nil {
		var storageErr *StorageError
		if !errors.As(err, &storageErr) {
			err = &StorageError{Kind: kind, Op: "transaction", Err: err}
		}
		return nil, err
	}
	return outcome, nil
}

func (e *Engine) log(result *Result, err error) {
	fields := []zap.Field{
		zap.String("batch_id", result.BatchID),
		zap.String("kind", string(result.Kind)),
		zap.Int("attempted", result.Attempted),
		zap.Duration("duration", result.Duration),
	}

	for _, v := range result.Skipped {
		e.logger.Warn("Register record skipped",
			zap.String("batch_id", result.BatchID),
			zap.String("kind", string(v.Kind)),
			zap.Int("index", v.Index),
			zap.String("reason", v.Reason),
		)
	}

	if err != nil {
		e.logger.Error("Batch failed", append(fields, zap.Error(err))...)
		return
	}
	e.logger.Info("Batch applied", append(fields,
		zap.Int("applied", result.Applied),
		zap.Int("skipped", len(result.Skipped)),
	)...)
}

// record writes the audit row. Failures are logged and swallowed.
func (e *Engine) record(ctx context.Context, result *Result, batchErr error) {
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	if err := e.recorder.Record(auditCtx, historyFor(result, batchErr)); err != nil {
		e.logger.Error("Failed to write audit record",
			zap.String("batch_id", result.BatchID),
			zap.String("kind", string(result.Kind)),
			zap.Error(err),
		)
	}
}

// Models returns the tables owned by the engine itself.
func Models() []any {
	return []any{&SyncHistory{}}
}
