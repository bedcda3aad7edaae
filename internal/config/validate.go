package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Reconciler.Interval < time.Second {
		return fmt.Errorf("reconciler.interval must be at least 1s (got %v)", c.Reconciler.Interval)
	}

	if c.Pagination.DefaultPageSize < 1 {
		return fmt.Errorf("pagination.default_page_size must be >= 1 (got %d)", c.Pagination.DefaultPageSize)
	}
	if c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("pagination.max_page_size must be >= default_page_size (got %d < %d)",
			c.Pagination.MaxPageSize, c.Pagination.DefaultPageSize)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}

	return nil
}
