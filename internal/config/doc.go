// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package config provides centralized configuration management for Creatorlens.

Configuration is loaded in three layers, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, config.yaml, or /etc/creatorlens/config.yaml
 3. Environment variables

# Configuration Structure

  - ServerConfig: metrics HTTP endpoint (host, port, timeouts)
  - LoggingConfig: zerolog level, format and caller reporting
  - DatabaseConfig: DuckDB metrics store and mock-data seeding
  - CircuitBreakerConfig: breaker in front of the metrics store
  - storage.Config: snapshot backend (memory or badger) and history retention
  - insights.Config: cache TTL, regeneration timeout, worker pool, backoff
  - analytics.Config: scoring weights and recommendation thresholds
  - RefreshConfig: background refresh of stale snapshots
  - EventsConfig: in-process insight events

# Environment Variables

Only mapped variables are read. A selection:

  - HTTP_PORT: metrics endpoint port (default: 9464)
  - LOG_LEVEL, LOG_FORMAT: logging (default: info, json)
  - DUCKDB_PATH: metrics database (default: /data/creatorlens.duckdb)
  - SEED_MOCK_DATA: seed demo data into an empty database (default: false)
  - SNAPSHOT_STORE, SNAPSHOT_PATH: snapshot backend (default: badger, /data/snapshots)
  - INSIGHTS_TTL: snapshot freshness (default: 1h)
  - INSIGHTS_REGENERATION_TIMEOUT: regeneration ceiling (default: 30s)
  - INSIGHTS_MAX_CONCURRENT_REGENERATIONS: worker pool size (default: 8)
  - REFRESH_INTERVAL: stale sweep interval (default: 5m)

Example YAML:

	logging:
	  level: debug
	insights:
	  ttl: 30m
	analytics:
	  patterns:
	    top_posts_count: 10
*/
package config
