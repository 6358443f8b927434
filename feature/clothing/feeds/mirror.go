package feeds

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"wardrobe/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MirrorSource reads feed documents previously copied into an S3/MinIO bucket.
type MirrorSource struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewMirrorSource creates a source reading from bucket under prefix.
func NewMirrorSource(client storage.Client, bucket, prefix string, logger *zap.Logger) *MirrorSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MirrorSource{client: client, bucket: bucket, prefix: normalizePrefix(prefix), logger: logger}
}

// MirrorObjects maps each document to its object name under prefix.
func MirrorObjects(prefix string) map[Document]string {
	prefix = normalizePrefix(prefix)
	return map[Document]string{
		FigureData: prefix + "figuredata.xml",
		FigureMap:  prefix + "figuremap.xml",
		FurniData:  prefix + "furnidata.json",
	}
}

func normalizePrefix(prefix string) string {
	if prefix == "" {
		prefix = "gamedata/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// Name implements Source.
func (s *MirrorSource) Name() string { return SourceMirror }

// ResolveBase implements Source. It fails when the bucket is missing.
func (s *MirrorSource) ResolveBase(ctx context.Context) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", wrapStorageErr(ctx, s.bucket, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: bucket %s does not exist", ErrUpstreamUnavailable, s.bucket)
	}
	return "s3://" + s.bucket + "/" + s.prefix, nil
}

// Fetch implements Source. The base is ignored; objects are addressed by prefix.
func (s *MirrorSource) Fetch(ctx context.Context, _ string, doc Document) ([]byte, error) {
	name, ok := MirrorObjects(s.prefix)[doc]
	if !ok {
		return nil, fmt.Errorf("%w: unknown document %s", ErrUpstreamUnavailable, doc)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapStorageErr(ctx, name, err)
	}
	defer obj.Close()

	// minio reports a missing key on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrapStorageErr(ctx, name, err)
	}
	s.logger.Debug("Read mirrored feed document", zap.String("object", name), zap.Int("bytes", len(data)))
	return data, nil
}

func wrapStorageErr(ctx context.Context, name string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %s: %v", ErrUpstreamTimeout, name, err)
	case storage.IsNotFound(err):
		return fmt.Errorf("%w: %s is missing", ErrUpstreamUnavailable, name)
	default:
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, name, err)
	}
}

// Publish copies every document from src into the mirror bucket and returns the
// object names written.
func Publish(ctx context.Context, src Source, client storage.Client, bucket, prefix string, logger *zap.Logger) ([]string, error) {
	base, err := src.ResolveBase(ctx)
	if err != nil {
		return nil, err
	}

	objects := MirrorObjects(prefix)
	var written []string
	for _, doc := range Documents {
		data, err := src.Fetch(ctx, base, doc)
		if err != nil {
			return written, err
		}
		contentType := "application/xml"
		if doc == FurniData {
			contentType = "application/json"
		}
		name := objects[doc]
		if _, err := client.PutObject(ctx, bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType}); err != nil {
			return written, fmt.Errorf("failed to upload %s: %w", name, err)
		}
		logger.Info("Mirrored feed document", zap.String("object", name), zap.Int("bytes", len(data)))
		written = append(written, name)
	}
	return written, nil
}
