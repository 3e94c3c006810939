// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package config

import (
	"time"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/insights"
	"github.com/tomtom215/creatorlens/internal/insights/storage"
)

// Config holds all application configuration
type Config struct {
	Server         ServerConfig         `koanf:"server"`
	Logging        LoggingConfig        `koanf:"logging"`
	Database       DatabaseConfig       `koanf:"database"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	Snapshots      storage.Config       `koanf:"snapshots"`
	Insights       insights.Config      `koanf:"insights"`
	Analytics      analytics.Config     `koanf:"analytics"`
	Refresh        RefreshConfig        `koanf:"refresh"`
	Events         EventsConfig         `koanf:"events"`
}

// ServerConfig holds the settings of the metrics HTTP endpoint
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"` // include caller file:line
}

// DatabaseConfig holds DuckDB configuration for the metrics store
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	// Threads is the DuckDB worker thread count. Zero uses runtime.NumCPU().
	Threads int `koanf:"threads"`

	// QueryTimeout bounds a single metrics query.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	// SeedMockData fills an empty database with deterministic demo data.
	SeedMockData bool `koanf:"seed_mock_data"`
	SeedCreators int  `koanf:"seed_creators"`
}

// CircuitBreakerConfig configures the breaker in front of the metrics store.
// The breaker opens when FailureRatio of at least MinRequests requests fail
// within Interval, and probes again after Timeout.
type CircuitBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// RefreshConfig configures the background refresher that regenerates stale
// snapshots of known creators.
type RefreshConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
	// RatePerSecond paces regenerations started by one sweep.
	RatePerSecond float64 `koanf:"rate_per_second"`
	Burst         int     `koanf:"burst"`

	// WarmOnStartup regenerates every creator in the metrics store once at
	// startup so the first requests find a snapshot.
	WarmOnStartup bool `koanf:"warm_on_startup"`
}

// EventsConfig configures in-process insight events
type EventsConfig struct {
	Enabled bool `koanf:"enabled"`
	// BufferSize is the per-subscriber channel buffer.
	BufferSize int64 `koanf:"buffer_size"`
}

// Load loads configuration with Koanf: defaults, then an optional YAML file,
// then environment variables.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
