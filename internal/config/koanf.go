// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/insights"
	"github.com/tomtom215/creatorlens/internal/insights/storage"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/creatorlens/config.yaml",
	"/etc/creatorlens/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	engine := insights.DefaultConfig()
	engine.Analytics = nil

	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            9464,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Database: DatabaseConfig{
			Path:         "/data/creatorlens.duckdb",
			MaxMemory:    "1GB",
			Threads:      0,
			QueryTimeout: 10 * time.Second,
			SeedMockData: false,
			SeedCreators: 5,
		},
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		Snapshots: storage.Config{
			Type:          storage.StoreBadger,
			Path:          "/data/snapshots",
			RetainHistory: storage.DefaultRetainHistory,
		},
		Insights:  *engine,
		Analytics: *analytics.DefaultConfig(),
		Refresh: RefreshConfig{
			Enabled:       true,
			Interval:      5 * time.Minute,
			RatePerSecond: 2,
			Burst:         4,
			WarmOnStartup: true,
		},
		Events: EventsConfig{
			Enabled:    true,
			BufferSize: 256,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// INSIGHTS_TTL -> insights.ttl
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Insights.Analytics = &cfg.Analytics

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Database
	"duckdb_path":          "database.path",
	"duckdb_max_memory":    "database.max_memory",
	"duckdb_threads":       "database.threads",
	"duckdb_query_timeout": "database.query_timeout",
	"seed_mock_data":       "database.seed_mock_data",
	"seed_creators":        "database.seed_creators",

	// Circuit breaker
	"circuit_breaker_enabled":       "circuit_breaker.enabled",
	"circuit_breaker_timeout":       "circuit_breaker.timeout",
	"circuit_breaker_failure_ratio": "circuit_breaker.failure_ratio",

	// Snapshot store
	"snapshot_store":          "snapshots.type",
	"snapshot_path":           "snapshots.path",
	"snapshot_in_memory":      "snapshots.in_memory",
	"snapshot_retain_history": "snapshots.retain_history",

	// Insight engine
	"insights_ttl":                          "insights.ttl",
	"insights_regeneration_timeout":         "insights.regeneration_timeout",
	"insights_max_concurrent_regenerations": "insights.max_concurrent_regenerations",
	"insights_cache_retention":              "insights.cache_retention",
	"insights_cache_capacity":               "insights.cache_capacity",
	"insights_backoff_initial":              "insights.backoff.initial",
	"insights_backoff_max":                  "insights.backoff.max",

	// Analytics
	"analytics_median_window":         "analytics.scoring.median_window",
	"analytics_top_posts_count":       "analytics.patterns.top_posts_count",
	"analytics_support_threshold":     "analytics.patterns.support_threshold",
	"analytics_sensitivity_threshold": "analytics.recommendation.sensitivity_threshold",
	"analytics_cadence_floor":         "analytics.recommendation.cadence_floor",

	// Refresher
	"refresh_enabled":         "refresh.enabled",
	"refresh_interval":        "refresh.interval",
	"refresh_rate_per_second": "refresh.rate_per_second",
	"refresh_burst":           "refresh.burst",
	"refresh_warm_on_startup": "refresh.warm_on_startup",

	// Events
	"events_enabled":     "events.enabled",
	"events_buffer_size": "events.buffer_size",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DUCKDB_PATH -> database.path
//   - INSIGHTS_TTL -> insights.ttl
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so random environment variables
	// do not pollute the config
	return ""
}
