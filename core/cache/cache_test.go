package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wardrobe/core/cache"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() cache.Config {
	return cache.Config{
		CatalogTTL:     time.Hour,
		VolatileTTL:    time.Minute,
		MaxAttempts:    3,
		BaseBackoff:    time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		AttemptTimeout: time.Second,
	}
}

func TestGetOrFetch_Coalescing(t *testing.T) {
	c := cache.New(testConfig(), zap.NewNop())

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "figuredata", nil
	}

	const callers = 25
	var wg sync.WaitGroup
	results := make([]any, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.GetOrFetch(context.Background(), "doc:figuredata", cache.ClassCatalog, fn)
		}(i)
	}

	// Let every caller attach to the pending flight.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, "figuredata", results[i])
	}
}

func TestGetOrFetch_Expiry(t *testing.T) {
	mock := clock.NewMock()
	c := cache.New(testConfig(), zap.NewNop(), cache.WithClock(mock))

	var calls atomic.Int32
	fn := func(ctx context.Context) (any, error) {
		n := calls.Add(1)
		return n, nil
	}

	v, err := c.GetOrFetch(context.Background(), "catalog", cache.ClassCatalog, fn)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	mock.Add(59 * time.Minute)
	v, err = c.GetOrFetch(context.Background(), "catalog", cache.ClassCatalog, fn)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v, "entry still fresh")

	mock.Add(2 * time.Minute)
	v, err = c.GetOrFetch(context.Background(), "catalog", cache.ClassCatalog, fn)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v, "expired entry must trigger a fresh fetch")
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetOrFetch_VolatileClassUsesShortTTL(t *testing.T) {
	mock := clock.NewMock()
	c := cache.New(testConfig(), zap.NewNop(), cache.WithClock(mock))

	fn := func(ctx context.Context) (any, error) { return "base", nil }
	_, err := c.GetOrFetch(context.Background(), "feed:base", cache.ClassVolatile, fn)
	require.NoError(t, err)

	mock.Add(61 * time.Second)
	_, ok := c.Lookup("feed:base")
	assert.False(t, ok)
}

func TestGetOrFetch_Exhausted(t *testing.T) {
	c := cache.New(testConfig(), zap.NewNop())

	upstream := errors.New("status 500")
	var calls atomic.Int32
	fn := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return nil, upstream
	}

	_, err := c.GetOrFetch(context.Background(), "doc:figuremap", cache.ClassCatalog, fn)
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.ErrFetchExhausted)
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, int32(3), calls.Load())

	// Failures are not cached.
	_, err = c.GetOrFetch(context.Background(), "doc:figuremap", cache.ClassCatalog, fn)
	assert.ErrorIs(t, err, cache.ErrFetchExhausted)
	assert.Equal(t, int32(6), calls.Load())
	assert.Equal(t, int64(2), c.Stats().Failures)
}

func TestGetOrFetch_RetryThenSuccess(t *testing.T) {
	c := cache.New(testConfig(), zap.NewNop())

	var calls atomic.Int32
	fn := func(ctx context.Context) (any, error) {
		if calls.Add(1) < 3 {
			return nil, errors.New("connection reset")
		}
		return "ok", nil
	}

	v, err := c.GetOrFetch(context.Background(), "doc:furnidata", cache.ClassCatalog, fn)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, int32(3), calls.Load())

	v, err = c.GetOrFetch(context.Background(), "doc:furnidata", cache.ClassCatalog, fn)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetOrFetch_BackoffFollowsClock(t *testing.T) {
	mock := clock.NewMock()
	cfg := testConfig()
	cfg.BaseBackoff = time.Hour
	cfg.MaxBackoff = time.Hour
	c := cache.New(cfg, zap.NewNop(), cache.WithClock(mock))

	var calls atomic.Int32
	done := make(chan any, 1)
	go func() {
		v, _ := c.GetOrFetch(context.Background(), "doc:figuremap", cache.ClassCatalog, func(ctx context.Context) (any, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("connection reset")
			}
			return "ok", nil
		})
		done <- v
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	select {
	case <-done:
		t.Fatal("retry ran before the clock advanced")
	case <-time.After(20 * time.Millisecond):
	}

	require.Eventually(t, func() bool {
		mock.Add(time.Hour)
		return calls.Load() == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "ok", <-done)
}

func TestGetOrFetch_PermanentStopsRetrying(t *testing.T) {
	c := cache.New(testConfig(), zap.NewNop())

	malformed := errors.New("malformed feed")
	var calls atomic.Int32
	_, err := c.GetOrFetch(context.Background(), "doc:figuredata", cache.ClassCatalog, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return nil, cache.Permanent(malformed)
	})

	assert.ErrorIs(t, err, malformed)
	assert.NotErrorIs(t, err, cache.ErrFetchExhausted)
	assert.True(t, cache.IsPermanent(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetOrFetch_AttemptTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 2
	cfg.AttemptTimeout = 20 * time.Millisecond
	c := cache.New(cfg, zap.NewNop())

	_, err := c.GetOrFetch(context.Background(), "slow", cache.ClassCatalog, func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	assert.ErrorIs(t, err, cache.ErrFetchExhausted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetOrFetch_PanicReleasesKey(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 1
	c := cache.New(cfg, zap.NewNop())

	_, err := c.GetOrFetch(context.Background(), "k", cache.ClassCatalog, func(ctx context.Context) (any, error) {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch panicked")

	v, err := c.GetOrFetch(context.Background(), "k", cache.ClassCatalog, func(ctx context.Context) (any, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGetOrFetch_CallerCancellationDoesNotAbortFlight(t *testing.T) {
	c := cache.New(testConfig(), zap.NewNop())

	release := make(chan struct{})
	var calls atomic.Int32
	fn := func(ctx context.Context) (any, error) {
		calls.Add(1)
		select {
		case <-release:
			return "done", nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.GetOrFetch(ctx, "k", cache.ClassCatalog, fn)
		errCh <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(release)
	v, err := c.GetOrFetch(context.Background(), "k", cache.ClassCatalog, fn)
	require.NoError(t, err)
	assert.Equal(t, "done", v)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPurgeAndSweep(t *testing.T) {
	mock := clock.NewMock()
	c := cache.New(testConfig(), zap.NewNop(), cache.WithClock(mock))
	ctx := context.Background()
	value := func(v string) cache.FetchFunc {
		return func(ctx context.Context) (any, error) { return v, nil }
	}

	_, _ = c.GetOrFetch(ctx, "catalog", cache.ClassCatalog, value("a"))
	_, _ = c.GetOrFetch(ctx, "feed:base", cache.ClassVolatile, value("b"))
	_, _ = c.GetOrFetch(ctx, "doc:figuremap", cache.ClassCatalog, value("c"))
	assert.Equal(t, 3, c.Stats().Entries)

	mock.Add(2 * time.Minute)
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 2, c.Stats().Entries)

	c.Purge("catalog")
	_, ok := c.Lookup("catalog")
	assert.False(t, ok)

	c.PurgeAll()
	assert.Equal(t, 0, c.Stats().Entries)
}

func TestTypedGet(t *testing.T) {
	c := cache.New(testConfig(), zap.NewNop())
	ctx := context.Background()

	n, err := cache.Get(ctx, c, "count", cache.ClassVolatile, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = cache.Get(ctx, c, "count", cache.ClassVolatile, func(ctx context.Context) (string, error) {
		return "unused", nil
	})
	assert.Error(t, err)
}

func TestGetOrCompute_RunsOnceWithoutRetry(t *testing.T) {
	cfg := testConfig()
	cfg.AttemptTimeout = 10 * time.Millisecond
	c := cache.New(cfg, zap.NewNop())
	ctx := context.Background()

	failing := errors.New("inner fetch exhausted")
	var calls atomic.Int32
	_, err := c.GetOrCompute(ctx, "catalog", cache.ClassCatalog, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return nil, failing
	})
	assert.Equal(t, failing, err)
	assert.Equal(t, int32(1), calls.Load())

	v, err := cache.Compute(ctx, c, "catalog", cache.ClassCatalog, func(ctx context.Context) (string, error) {
		// Longer than the attempt timeout; computations are not bounded by it.
		time.Sleep(30 * time.Millisecond)
		return "built", ctx.Err()
	})
	require.NoError(t, err)
	assert.Equal(t, "built", v)

	cached, ok := c.Lookup("catalog")
	assert.True(t, ok)
	assert.Equal(t, "built", cached)
}

func TestPolicyBackoff(t *testing.T) {
	p := cache.Policy{Attempts: 5, Base: 100 * time.Millisecond, Max: 350 * time.Millisecond}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 0},
		{2, 100 * time.Millisecond},
		{3, 200 * time.Millisecond},
		{4, 350 * time.Millisecond},
		{5, 350 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Backoff(tt.attempt), "attempt %d", tt.attempt)
	}

	defaults := cache.PolicyFrom(cache.Config{})
	assert.Equal(t, 3, defaults.Attempts)
}
