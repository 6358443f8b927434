package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrFetchExhausted is returned to every waiter once all fetch attempts for a key failed.
var ErrFetchExhausted = errors.New("fetch exhausted")

// FetchFunc produces the value for a key. It receives a context bounded by the attempt timeout.
type FetchFunc func(ctx context.Context) (any, error)

// Entry is a stored value together with its expiry and data class.
// Entries are never modified after being stored.
type Entry struct {
	Value  any
	Expiry time.Time
	Class  DataClass
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Entries  int   `json:"entries"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Fetches  int64 `json:"fetches"`
	Failures int64 `json:"failures"`
}

// Cache is a TTL cache with per-key request coalescing and retry/backoff.
type Cache struct {
	cfg    Config
	policy Policy
	clock  clock.Clock
	logger *zap.Logger

	store *gocache.Cache
	group singleflight.Group
	// mu orders stores against expiry deletes.
	mu sync.Mutex

	hits     atomic.Int64
	misses   atomic.Int64
	fetches  atomic.Int64
	failures atomic.Int64
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the wall clock used for expiry decisions.
func WithClock(clk clock.Clock) Option {
	return func(c *Cache) { c.clock = clk }
}

// New creates a cache. Expiry is evaluated lazily against the cache clock;
// call Sweep to drop expired entries eagerly.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache{
		cfg:    cfg,
		policy: PolicyFrom(cfg),
		clock:  clock.New(),
		logger: logger,
		// No janitor: expiry must follow the injected clock, not go-cache's wall clock.
		store: gocache.New(gocache.NoExpiration, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrFetch returns the unexpired value stored under key, or joins the fetch already
// in flight for it, or starts a new fetch with bounded retries. Successful results are
// stored with the TTL of class; failures are never stored.
func (c *Cache) GetOrFetch(ctx context.Context, key string, class DataClass, fn FetchFunc) (any, error) {
	return c.do(ctx, key, class, fn, c.fetch)
}

// GetOrCompute is GetOrFetch for values derived from other cached values. The
// computation is coalesced and stored like a fetch, but it runs once, without the
// attempt timeout, and its error is returned unchanged.
func (c *Cache) GetOrCompute(ctx context.Context, key string, class DataClass, fn FetchFunc) (any, error) {
	return c.do(ctx, key, class, fn, c.compute)
}

func (c *Cache) do(ctx context.Context, key string, class DataClass, fn FetchFunc, run func(context.Context, string, DataClass, FetchFunc) (any, error)) (any, error) {
	// Fast path
	if v, ok := c.Lookup(key); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)

	// The shared fetch must not die with the first caller's context.
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// Double-check: a previous flight may have stored the value meanwhile.
		if v, ok := c.Lookup(key); ok {
			return v, nil
		}
		return run(detached, key, class, fn)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// Lookup returns the value stored under key if it has not expired.
func (c *Cache) Lookup(key string) (any, bool) {
	raw, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	entry := raw.(*Entry)
	if !c.clock.Now().Before(entry.Expiry) {
		c.expire(key, entry)
		return nil, false
	}
	return entry.Value, true
}

func (c *Cache) fetch(ctx context.Context, key string, class DataClass, fn FetchFunc) (any, error) {
	var lastErr error
	for attempt := 1; attempt <= c.policy.Attempts; attempt++ {
		if wait := c.policy.Backoff(attempt); wait > 0 {
			c.logger.Debug("Backing off before retry",
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait))
			if err := c.sleep(ctx, wait); err != nil {
				lastErr = err
				break
			}
		}

		c.fetches.Add(1)
		v, err := c.attempt(ctx, fn)
		if err == nil {
			c.set(key, class, v)
			return v, nil
		}

		lastErr = err
		if IsPermanent(err) {
			c.failures.Add(1)
			c.logger.Warn("Fetch failed permanently", zap.String("key", key), zap.Error(err))
			return nil, err
		}
		c.logger.Warn("Fetch attempt failed",
			zap.String("key", key),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.policy.Attempts),
			zap.Error(err))
	}

	c.failures.Add(1)
	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrFetchExhausted, key, c.policy.Attempts, lastErr)
}

func (c *Cache) compute(ctx context.Context, key string, class DataClass, fn FetchFunc) (any, error) {
	c.fetches.Add(1)
	v, err := guard(ctx, fn)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.set(key, class, v)
	return v, nil
}

func (c *Cache) set(key string, class DataClass, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Set(key, &Entry{
		Value:  v,
		Expiry: c.clock.Now().Add(c.cfg.TTL(class)),
		Class:  class,
	}, gocache.NoExpiration)
}

// expire deletes key only while it still holds stale, so an entry stored by a
// concurrent flight survives. It reports whether stale was removed.
func (c *Cache) expire(key string, stale *Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.store.Get(key)
	if !ok {
		return false
	}
	if current, _ := raw.(*Entry); current != stale {
		return false
	}
	c.store.Delete(key)
	return true
}

// attempt runs fn once under the attempt timeout. A panicking fn is reported as an error
// so the flight for the key always completes.
func (c *Cache) attempt(ctx context.Context, fn FetchFunc) (any, error) {
	if c.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.AttemptTimeout)
		defer cancel()
	}
	return guard(ctx, fn)
}

func guard(ctx context.Context, fn FetchFunc) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// Purge removes a single key.
func (c *Cache) Purge(key string) {
	c.store.Delete(key)
}

// PurgeAll removes every entry.
func (c *Cache) PurgeAll() {
	c.store.Flush()
}

// Sweep removes expired entries and returns how many were dropped.
func (c *Cache) Sweep() int {
	now := c.clock.Now()
	removed := 0
	for key, item := range c.store.Items() {
		entry, _ := item.Object.(*Entry)
		if entry != nil && now.Before(entry.Expiry) {
			continue
		}
		if c.expire(key, entry) {
			removed++
		}
	}
	return removed
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:  c.store.ItemCount(),
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Fetches:  c.fetches.Load(),
		Failures: c.failures.Load(),
	}
}

// Get is the typed form of GetOrFetch.
func Get[T any](ctx context.Context, c *Cache, key string, class DataClass, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.GetOrFetch(ctx, key, class, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	return typed[T](key, v, err)
}

// Compute is the typed form of GetOrCompute.
func Compute[T any](ctx context.Context, c *Cache, key string, class DataClass, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.GetOrCompute(ctx, key, class, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	return typed[T](key, v, err)
}

func typed[T any](key string, v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %s holds %T, not %T", key, v, zero)
	}
	return out, nil
}
