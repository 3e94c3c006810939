// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package cache

import "time"

// Cacher defines the interface for cache implementations.
// Consumers depend on Cacher so tests can substitute a fake.
type Cacher[V any] interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (V, bool)

	// Set stores a value in the cache with the default TTL.
	Set(key string, value V)

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value V, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Keys returns the keys of all unexpired entries.
	Keys() []string

	// GetStats returns cache statistics.
	GetStats() Stats
}

// Verify interface implementation at compile time
var _ Cacher[string] = (*Cache[string])(nil)
