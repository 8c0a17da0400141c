package taxonomy

import "time"

// Config holds configuration for the taxonomy store.
type Config struct {
	// CacheTTLSeconds is how long a loaded snapshot is served. 0 disables
	// caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// TTL returns the cache lifetime.
func (c Config) TTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
