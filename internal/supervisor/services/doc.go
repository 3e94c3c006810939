// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package services provides suture.Service wrappers for creatorlens components.

  - HTTPServerService translates ListenAndServe/Shutdown into Serve.
  - RefreshService sweeps for stale snapshots on a ticker and starts
    background regenerations, paced by a token bucket.
  - EventListenerService runs a blocking bus consumer; an error from the
    consumer is a crash and leads to a restart.

Every wrapper implements fmt.Stringer so suture's log lines name it, and
returns ctx.Err() on cancellation.
*/
package services
