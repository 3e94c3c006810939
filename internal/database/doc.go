// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package database provides the DuckDB-backed metrics store.

The store holds raw post metadata and performance measurements that the
insight engine pulls during regeneration. It implements insights.MetricsStore
and is usually wrapped in a CircuitBreakerStore so an unhealthy database
fails fast instead of stalling every regeneration.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	store := database.NewCircuitBreakerStore(db, &cfg.CircuitBreaker)
	records, err := store.ListPerformance(ctx, "creator-001")

Unknown creators yield empty slices. Writes go through InsertPosts and
InsertPerformanceRecords, which run in a single transaction each and notify
an optional RecordObserver after commit.

# Mock Data

SeedMockData fills an empty database with deterministic demo creators for
local runs (database.seed_mock_data).
*/
package database
