// Package cache provides the single fetch path for upstream data.
//
// Every value is stored with a TTL chosen by its DataClass. Concurrent callers
// for the same key share one in-flight fetch (golang.org/x/sync/singleflight),
// and a fetch is retried with exponential backoff before ErrFetchExhausted is
// returned to all of them. Failed fetches are never stored.
//
// Entries live in a github.com/patrickmn/go-cache store, but expiry is decided
// against a github.com/benbjohnson/clock Clock so tests can move time forward.
//
// # Usage
//
//	c := cache.New(cfg.Cache, logger)
//	doc, err := cache.Get(ctx, c, "doc:figuredata", cache.ClassCatalog, fetchFigureData)
//	if errors.Is(err, cache.ErrFetchExhausted) {
//	    // degrade
//	}
package cache
