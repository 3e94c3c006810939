// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package insights

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned for malformed requests. It is raised
	// before any store access.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamUnavailable is returned when the metrics store or the
	// snapshot store cannot be reached and no snapshot can be served.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrRegenerationTimeout is returned when a regeneration exceeds its
	// ceiling. It matches ErrUpstreamUnavailable with errors.Is.
	ErrRegenerationTimeout = fmt.Errorf("%w: regeneration timed out", ErrUpstreamUnavailable)

	// ErrSnapshotNotFound is returned by snapshot stores when a creator has
	// no stored snapshot.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// upstreamError wraps a store failure. Deadline failures map to
// ErrRegenerationTimeout, everything else to ErrUpstreamUnavailable.
func upstreamError(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrRegenerationTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, op, err)
}
