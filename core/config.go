package core

import (
	"time"
)

const (
	DefaultMaxDataParts = 100
	DefaultCacheMaxAge  = 14 * 24 * time.Hour
)

// Config is the runtime configuration shared by services
type Config struct {
	MaxDataParts int
	CacheMaxAge  time.Duration
}

// MaxParts returns the configured limit or the default
func (c Config) MaxParts() int {
	if c.MaxDataParts <= 0 {
		return DefaultMaxDataParts
	}
	return c.MaxDataParts
}

// MaxAge returns the configured Cache-Control max-age or the default
func (c Config) MaxAge() time.Duration {
	if c.CacheMaxAge <= 0 {
		return DefaultCacheMaxAge
	}
	return c.CacheMaxAge
}
