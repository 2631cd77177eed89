package reconcile

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SyncHistory is one row of the append-only audit trail. Timestamp is the
// moment the batch was received, not when it finished; the run time is in
// ExecutionTimeMs.
type SyncHistory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BatchID         string    `gorm:"size:36;index" json:"batch_id"`
	Timestamp       time.Time `gorm:"index" json:"timestamp"`
	DataType        string    `gorm:"size:64" json:"data_type"`
	RecordCount     int       `json:"record_count"`
	IsSuccess       bool      `json:"is_success"`
	ErrorMessage    *string   `gorm:"type:text" json:"error_message"`
	ExecutionTimeMs int64     `json:"execution_time_ms"`
}

// Recorder persists audit rows.
type Recorder interface {
	Record(ctx context.Context, entry *SyncHistory) error
}

// GormRecorder writes audit rows through GORM.
type GormRecorder struct {
	db *gorm.DB
}

// NewGormRecorder creates a recorder backed by db.
func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) Record(ctx context.Context, entry *SyncHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// historyFor builds the audit row for a finished batch.
func historyFor(result *Result, batchErr error) *SyncHistory {
	entry := &SyncHistory{
		BatchID:         result.BatchID,
		Timestamp:       result.StartedAt.UTC(),
		DataType:        string(result.Kind),
		RecordCount:     result.Attempted,
		IsSuccess:       batchErr == nil,
		ExecutionTimeMs: result.Duration.Milliseconds(),
	}
	if batchErr != nil {
		msg := batchErr.Error()
		entry.ErrorMessage = &msg
	}
	return entry
}
