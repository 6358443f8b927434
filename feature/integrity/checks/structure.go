package checks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"wardrobe/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrBucketMissing is returned when the mirror bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// RequiredFolders returns the folders the feed mirror needs under prefix.
func RequiredFolders(prefix string) []string {
	folder := strings.Trim(prefix, "/")
	if folder == "" {
		folder = "gamedata"
	}
	return []string{folder}
}

// CheckStructure returns the folders missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}

	for _, folder := range folders {
		folderPath := strings.TrimSuffix(folder, "/") + "/"
		opts := minio.ListObjectsOptions{
			Prefix:    folderPath,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// EnsureBucket creates the bucket when it does not exist.
func EnsureBucket(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}

// FixStructure creates the missing folders.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		folderPath := strings.TrimSuffix(folder, "/") + "/"

		_, err := client.PutObject(ctx, bucket, folderPath, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
