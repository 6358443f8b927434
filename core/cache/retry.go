package cache

import (
	"context"
	"errors"
	"time"
)

// Policy describes the bounded exponential backoff used between fetch attempts.
type Policy struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

// PolicyFrom derives the retry policy from the cache configuration.
func PolicyFrom(cfg Config) Policy {
	p := Policy{Attempts: cfg.MaxAttempts, Base: cfg.BaseBackoff, Max: cfg.MaxBackoff}
	if p.Attempts <= 0 {
		p.Attempts = 3
	}
	if p.Base <= 0 {
		p.Base = 200 * time.Millisecond
	}
	if p.Max <= 0 {
		p.Max = 5 * time.Second
	}
	return p
}

// Backoff returns the wait before the given attempt (1-based).
// The first attempt never waits.
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	d := p.Base << (attempt - 2)
	if d <= 0 || d > p.Max {
		return p.Max
	}
	return d
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. GetOrFetch returns the
// wrapped error as-is instead of ErrFetchExhausted.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// sleep waits d on the cache clock.
func (c *Cache) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := c.clock.Timer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
