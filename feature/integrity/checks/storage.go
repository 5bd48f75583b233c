package checks

import (
	"context"
	"fmt"
	"strings"

	"menu-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the snapshot bucket.
type StorageReport struct {
	Bucket       string `json:"bucket"`
	BucketExists bool   `json:"bucket_exists"`
	Snapshots    int    `json:"snapshots"`
}

// CheckStorage reports whether the snapshot bucket exists and how many snapshots it holds.
func CheckStorage(ctx context.Context, client storage.Client, cfg storage.Config) (*StorageReport, error) {
	report := &StorageReport{Bucket: cfg.Bucket}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return report, nil
	}
	report.BucketExists = true

	prefix := cfg.SnapshotKey("")
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, cfg.Bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			report.Snapshots++
		}
	}

	return report, nil
}

// FixStorage creates the missing snapshot bucket.
func FixStorage(ctx context.Context, client storage.Client, cfg storage.Config, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", cfg.Bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", cfg.Bucket))
	return nil
}
