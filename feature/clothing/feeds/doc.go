// Package feeds retrieves the raw clothing feed documents.
//
// The HTTP source first reads the hotel's external variables listing and extracts
// flash.client.url, the base the figure data and figure map are resolved against.
// Furnidata is read from the hotel origin. Calls are bounded by a per-call deadline
// and a rate limiter; they are never retried here.
//
// The mirror source reads the same three documents from an S3/MinIO bucket, and
// Publish fills that bucket from any other source.
//
// Non-2xx responses and missing documents return ErrUpstreamUnavailable; deadline
// overruns return ErrUpstreamTimeout.
package feeds
