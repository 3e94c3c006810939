// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

// Package storage provides insights.SnapshotStore implementations.
//
// Two backends are available: an in-memory store for tests and single-process
// deployments, and a BadgerDB store that survives restarts. Both replace the
// latest snapshot and append it to a bounded per-creator history in one
// atomic step.
package storage
