// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package insights

// State is the cache state of a creator's insights.
type State int

const (
	// StateAbsent means no snapshot exists; the next request generates one synchronously.
	StateAbsent State = iota
	// StateFresh means the snapshot is younger than the TTL.
	StateFresh
	// StateStale means the snapshot is past the TTL and is served while a refresh runs.
	StateStale
	// StateRegenerating means a regeneration for the creator is in flight.
	StateRegenerating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateFresh:
		return "fresh"
	case StateStale:
		return "stale"
	case StateRegenerating:
		return "regenerating"
	default:
		return "unknown"
	}
}
