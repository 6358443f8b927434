package cache

import "time"

// Config holds the cache TTLs and the retry policy applied to every fetch.
type Config struct {
	// CatalogTTL is the lifetime of entries tagged ClassCatalog.
	CatalogTTL time.Duration `mapstructure:"catalog_ttl" default:"6h"`
	// VolatileTTL is the lifetime of entries tagged ClassVolatile.
	VolatileTTL time.Duration `mapstructure:"volatile_ttl" default:"60s"`
	// MaxAttempts is the number of fetch attempts before giving up.
	MaxAttempts int `mapstructure:"max_attempts" default:"3"`
	// BaseBackoff is the wait before the second attempt; it doubles afterwards.
	BaseBackoff time.Duration `mapstructure:"base_backoff" default:"200ms"`
	// MaxBackoff caps the wait between two attempts.
	MaxBackoff time.Duration `mapstructure:"max_backoff" default:"5s"`
	// AttemptTimeout bounds a single fetch attempt.
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout" default:"10s"`
}

// DataClass selects the TTL an entry is stored with.
type DataClass string

const (
	// ClassCatalog is used for feed documents and built catalogs (hours).
	ClassCatalog DataClass = "catalog"
	// ClassVolatile is used for short-lived lookups such as the feed base location.
	ClassVolatile DataClass = "volatile"
)

// TTL returns the configured lifetime for the given data class.
// Unknown classes get the volatile TTL.
func (c Config) TTL(class DataClass) time.Duration {
	switch class {
	case ClassCatalog:
		if c.CatalogTTL > 0 {
			return c.CatalogTTL
		}
		return 6 * time.Hour
	default:
		if c.VolatileTTL > 0 {
			return c.VolatileTTL
		}
		return time.Minute
	}
}
