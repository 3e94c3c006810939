// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package main is the entry point for the creatorlens server.

The server owns the insights engine and everything it needs: the DuckDB
metrics store (optionally behind a circuit breaker), the snapshot store
(memory or Badger) and the in-process event bus. Long-running work runs
under a suture tree:

	RootSupervisor ("creatorlens")
	├── DataSupervisor ("data-layer")
	│   └── RefreshService
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventListenerService ("performance-listener")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (/api/v1/health/*, /metrics)

# Configuration

Defaults, then an optional config.yaml (or CONFIG_PATH), then environment
variables. Common settings:

	DUCKDB_PATH=/data/creatorlens.duckdb
	SNAPSHOT_STORE=badger
	SNAPSHOT_PATH=/data/snapshots
	INSIGHTS_TTL=1h
	HTTP_PORT=9464
	LOG_LEVEL=info
	LOG_FORMAT=json

SEED_MOCK_DATA=true fills an empty metrics store with deterministic demo
creators, which is handy for local runs.

# Signal Handling

SIGINT and SIGTERM cancel the tree. After the services stop, in-flight
regenerations are awaited, then the bus, the snapshot store and DuckDB are
closed in that order.
*/
package main
