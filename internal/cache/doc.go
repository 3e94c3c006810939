// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package cache provides a generic, thread-safe in-memory TTL cache.

The insight engine keeps the latest snapshot of each creator here. Entries
live for the configured retention, which is deliberately longer than the
insight freshness TTL: an entry that is past its freshness window is still
served as stale while a regeneration runs, and only disappears from memory
once retention expires.

# Usage

	c := cache.New[*Snapshot](cache.Config{TTL: 24 * time.Hour, Capacity: 10000})
	defer c.Close()

	c.Set("creator-1", snap)
	if snap, ok := c.Get("creator-1"); ok {
	    // use snap
	}

# Capacity

When Capacity is set and the cache is full, inserting a new key evicts the
entry closest to expiry. Overwriting an existing key never evicts.

# Thread Safety

All methods are safe for concurrent use. Values are stored as-is; callers
that share pointers must treat them as immutable.
*/
package cache
