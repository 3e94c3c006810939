// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/creatorlens/internal/insights/storage"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateCircuitBreaker(); err != nil {
		return err
	}

	if err := c.validateSnapshots(); err != nil {
		return err
	}

	if err := c.validateRefresh(); err != nil {
		return err
	}

	if c.Events.Enabled && c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must be non-negative, got %d", c.Events.BufferSize)
	}

	if c.Insights.Analytics == nil {
		c.Insights.Analytics = &c.Analytics
	}
	if err := c.Insights.Validate(); err != nil {
		return fmt.Errorf("insights: %w", err)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DUCKDB_QUERY_TIMEOUT must be positive, got %s", c.Database.QueryTimeout)
	}
	if c.Database.SeedMockData && c.Database.SeedCreators < 1 {
		return fmt.Errorf("SEED_CREATORS must be at least 1 when SEED_MOCK_DATA=true")
	}
	return nil
}

func (c *Config) validateCircuitBreaker() error {
	if !c.CircuitBreaker.Enabled {
		return nil
	}
	cb := c.CircuitBreaker
	if cb.MaxRequests == 0 || cb.MinRequests == 0 {
		return fmt.Errorf("circuit_breaker.max_requests and min_requests must be positive")
	}
	if cb.Timeout <= 0 || cb.Interval < 0 {
		return fmt.Errorf("circuit_breaker.timeout must be positive and interval non-negative")
	}
	if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
		return fmt.Errorf("CIRCUIT_BREAKER_FAILURE_RATIO must be in (0, 1], got %f", cb.FailureRatio)
	}
	return nil
}

func (c *Config) validateSnapshots() error {
	switch c.Snapshots.Type {
	case storage.StoreMemory, "":
	case storage.StoreBadger:
		if c.Snapshots.Path == "" && !c.Snapshots.InMemory {
			return fmt.Errorf("SNAPSHOT_PATH is required when SNAPSHOT_STORE=badger")
		}
	default:
		return fmt.Errorf("SNAPSHOT_STORE must be memory or badger, got %q", c.Snapshots.Type)
	}
	if c.Snapshots.RetainHistory < 1 {
		return fmt.Errorf("SNAPSHOT_RETAIN_HISTORY must be at least 1, got %d", c.Snapshots.RetainHistory)
	}
	return nil
}

func (c *Config) validateRefresh() error {
	if !c.Refresh.Enabled {
		return nil
	}
	if c.Refresh.Interval <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL must be positive, got %s", c.Refresh.Interval)
	}
	if c.Refresh.RatePerSecond <= 0 || c.Refresh.Burst < 1 {
		return fmt.Errorf("refresh rate_per_second and burst must be positive")
	}
	return nil
}
