// Package storage wraps the MinIO client used for the feed mirror.
//
// Operators that cannot reach the public hotel feeds (or want a pinned copy)
// keep figuredata.xml, figuremap.xml and furnidata.json under gamedata/ in an
// S3-compatible bucket. The clothing feature reads them through Client, the
// mirror command writes them, and the integrity feature checks they exist.
//
// The Client interface keeps the MinIO dependency mockable (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	rc, err := client.GetObject(ctx, cfg.Storage.Bucket, "gamedata/figuredata.xml", minio.GetObjectOptions{})
package storage
