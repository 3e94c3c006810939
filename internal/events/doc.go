// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

// Package events carries in-process domain events over a watermill
// gochannel pub/sub.
//
// Two topics exist:
//   - insights.generated: published by the insight engine after every
//     successful regeneration (Bus implements insights.SnapshotPublisher)
//   - performance.collected: published by the metrics database after new
//     performance records are committed (Bus implements
//     database.RecordObserver) and consumed by PerformanceListener
//
// Payloads are JSON encoded with goccy/go-json. Every message gets a UUID and
// carries the publisher's correlation ID in its metadata.
package events
