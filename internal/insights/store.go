// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package insights

import (
	"context"

	"github.com/tomtom215/creatorlens/internal/analytics"
)

// MetricsStore provides read access to raw performance data.
// Unknown creators yield empty slices, not errors.
type MetricsStore interface {
	// ListPerformance returns all performance records of a creator.
	ListPerformance(ctx context.Context, creatorID string) ([]analytics.PerformanceRecord, error)

	// ListPosts returns the metadata of a creator's posts.
	ListPosts(ctx context.Context, creatorID string) ([]analytics.PostMetadata, error)
}

// SnapshotStore persists insight snapshots.
type SnapshotStore interface {
	// GetLatest returns the creator's authoritative snapshot, or
	// ErrSnapshotNotFound.
	GetLatest(ctx context.Context, creatorID string) (*InsightSnapshot, error)

	// Put atomically replaces the creator's latest snapshot and appends the
	// previous one to history.
	Put(ctx context.Context, snap *InsightSnapshot) error

	// History returns up to limit snapshots, newest first, including the latest.
	History(ctx context.Context, creatorID string, limit int) ([]*InsightSnapshot, error)
}

// SnapshotPublisher is notified after each successful regeneration.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, snap *InsightSnapshot) error
}
