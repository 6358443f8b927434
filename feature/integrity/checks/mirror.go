package checks

import (
	"context"
	"fmt"

	"wardrobe/core/storage"
	"wardrobe/feature/clothing/feeds"

	"github.com/minio/minio-go/v7"
)

// MirrorReport lists which feed documents are present in the mirror bucket.
type MirrorReport struct {
	Bucket  string   `json:"bucket"`
	Present []string `json:"present"`
	Missing []string `json:"missing"`
	Status  string   `json:"status"` // "ok", "incomplete"
}

// CheckMirror stats every mirrored feed document under prefix.
func CheckMirror(ctx context.Context, client storage.Client, bucket, prefix string) (*MirrorReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}

	report := &MirrorReport{
		Bucket:  bucket,
		Present: []string{},
		Missing: []string{},
		Status:  "ok",
	}
	objects := feeds.MirrorObjects(prefix)
	for _, doc := range feeds.Documents {
		name := objects[doc]
		_, err := client.StatObject(ctx, bucket, name, minio.StatObjectOptions{})
		switch {
		case err == nil:
			report.Present = append(report.Present, name)
		case storage.IsNotFound(err):
			report.Missing = append(report.Missing, name)
			report.Status = "incomplete"
		default:
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
	return report, nil
}
