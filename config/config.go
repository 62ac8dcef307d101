package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Discovery struct {
		CacheTTL time.Duration
	}
}

// CacheTTL returns the configured discovery cache TTL or the default.
func (c *Config) CacheTTL() time.Duration {
	if c.Discovery.CacheTTL <= 0 {
		return 5 * time.Minute
	}
	return c.Discovery.CacheTTL
}
