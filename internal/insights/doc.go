// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package insights orchestrates insight regeneration for creators.

The Engine keeps one InsightSnapshot per creator, computed by the analytics
package from the raw data of a MetricsStore and persisted in a SnapshotStore.
Reads follow a stale-while-revalidate scheme:

  - Absent: the request blocks on a synchronous regeneration. Concurrent
    requests for the same creator join that computation.
  - Fresh: the snapshot is returned as is.
  - Stale: the snapshot is returned immediately and a background refresh is
    started if none is running.

Regenerations are bounded by a global worker pool and a per-pass timeout.
Failed regenerations keep the previous snapshot and put the creator into
exponential backoff; background refreshes are skipped until it expires.

Example:

	engine, err := insights.NewEngine(cfg, metricsStore, snapshotStore, logger)
	if err != nil {
		return err
	}
	defer engine.Close()

	snap, err := engine.GetInsights(ctx, "creator-42")
*/
package insights
