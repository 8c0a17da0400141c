package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"bulk-editor/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of a storage check.
type StorageReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// OK reports whether nothing is missing.
func (r StorageReport) OK() bool {
	return r.BucketExists && len(r.Missing) == 0
}

// CheckStorage verifies that bucket exists and holds every folder. When the
// bucket is missing every folder is reported missing as well.
func CheckStorage(ctx context.Context, client storage.Client, bucket string, folders []string) (StorageReport, error) {
	report := StorageReport{Bucket: bucket, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return report, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, folders...)
		return report, nil
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderPath(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return report, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}

		if !found {
			report.Missing = append(report.Missing, folder)
		}
	}

	return report, nil
}

// FixStorage creates the bucket when needed and a marker object for every
// missing folder.
func FixStorage(ctx context.Context, client storage.Client, report StorageReport, region string, logger *zap.Logger) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", report.Bucket, err)
		}
		logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
	}

	for _, folder := range report.Missing {
		_, err := client.PutObject(ctx, report.Bucket, folderPath(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderPath(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
