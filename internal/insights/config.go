// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package insights

import (
	"fmt"
	"time"

	"github.com/tomtom215/creatorlens/internal/analytics"
)

// Config contains the orchestration settings of the insight engine.
type Config struct {
	// TTL is how long a snapshot counts as fresh.
	// Default: 1h.
	TTL time.Duration `koanf:"ttl"`

	// RegenerationTimeout bounds a single regeneration pass, including the
	// wait for a worker slot.
	// Default: 30s.
	RegenerationTimeout time.Duration `koanf:"regeneration_timeout"`

	// MaxConcurrentRegenerations bounds parallel store pulls across creators.
	// Default: 8.
	MaxConcurrentRegenerations int64 `koanf:"max_concurrent_regenerations"`

	// CacheRetention is how long snapshots stay in memory. It must be at
	// least TTL so stale snapshots remain servable.
	// Default: 24h.
	CacheRetention time.Duration `koanf:"cache_retention"`

	// CacheCapacity bounds the number of creators held in memory. Zero is unbounded.
	// Default: 10000.
	CacheCapacity int `koanf:"cache_capacity"`

	// Backoff paces retries after failed regenerations.
	Backoff BackoffConfig `koanf:"backoff"`

	// Analytics holds the scoring weights and thresholds.
	Analytics *analytics.Config `koanf:"-"`
}

// BackoffConfig controls per-creator exponential backoff.
type BackoffConfig struct {
	// Initial is the delay after the first failure.
	// Default: 30s.
	Initial time.Duration `koanf:"initial"`

	// Max caps the delay.
	// Default: 15m.
	Max time.Duration `koanf:"max"`

	// Multiplier grows the delay after each consecutive failure.
	// Default: 2.
	Multiplier float64 `koanf:"multiplier"`

	// Jitter is the randomization factor in [0,1).
	// Default: 0.2.
	Jitter float64 `koanf:"jitter"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		TTL:                        time.Hour,
		RegenerationTimeout:        30 * time.Second,
		MaxConcurrentRegenerations: 8,
		CacheRetention:             24 * time.Hour,
		CacheCapacity:              10000,
		Backoff: BackoffConfig{
			Initial:    30 * time.Second,
			Max:        15 * time.Minute,
			Multiplier: 2,
			Jitter:     0.2,
		},
		Analytics: analytics.DefaultConfig(),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", c.TTL)
	}
	if c.RegenerationTimeout <= 0 {
		return fmt.Errorf("regeneration_timeout must be positive, got %s", c.RegenerationTimeout)
	}
	if c.MaxConcurrentRegenerations < 1 {
		return fmt.Errorf("max_concurrent_regenerations must be at least 1, got %d", c.MaxConcurrentRegenerations)
	}
	if c.CacheRetention < c.TTL {
		return fmt.Errorf("cache_retention (%s) must be at least ttl (%s)", c.CacheRetention, c.TTL)
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("cache_capacity must be non-negative, got %d", c.CacheCapacity)
	}
	if c.Backoff.Initial <= 0 || c.Backoff.Max < c.Backoff.Initial {
		return fmt.Errorf("backoff must satisfy 0 < initial (%s) <= max (%s)", c.Backoff.Initial, c.Backoff.Max)
	}
	if c.Backoff.Multiplier < 1 {
		return fmt.Errorf("backoff.multiplier must be at least 1, got %f", c.Backoff.Multiplier)
	}
	if c.Backoff.Jitter < 0 || c.Backoff.Jitter >= 1 {
		return fmt.Errorf("backoff.jitter must be in [0, 1), got %f", c.Backoff.Jitter)
	}
	if c.Analytics == nil {
		return fmt.Errorf("analytics config is required")
	}
	if err := c.Analytics.Validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}
	return nil
}
