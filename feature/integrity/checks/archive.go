package checks

import (
	"context"
	"fmt"

	"sync-gateway/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archive statuses.
const (
	ArchiveOK       = "ok"
	ArchiveMissing  = "missing"
	ArchiveDisabled = "disabled"
)

// ArchiveReport describes the payload archive bucket.
type ArchiveReport struct {
	Enabled bool   `json:"enabled"`
	Bucket  string `json:"bucket,omitempty"`
	Exists  bool   `json:"exists"`
	Status  string `json:"status"`
}

// CheckArchive verifies that the archive bucket exists. A nil client means
// archiving is disabled.
func CheckArchive(ctx context.Context, client storage.Client, bucket string) (*ArchiveReport, error) {
	if client == nil {
		return &ArchiveReport{Status: ArchiveDisabled}, nil
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &ArchiveReport{Enabled: true, Bucket: bucket, Exists: exists, Status: ArchiveOK}
	if !exists {
		report.Status = ArchiveMissing
	}
	return report, nil
}

// FixArchive creates the missing archive bucket.
func FixArchive(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	if client == nil {
		return fmt.Errorf("archive is disabled")
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created archive bucket", zap.String("bucket", bucket))
	return nil
}
