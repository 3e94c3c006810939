// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

// Package middleware provides HTTP middleware for the operational router.
//
// PrometheusMetrics counts requests and observes latency labelled by chi
// route pattern rather than raw path, so unknown URLs all fall into the
// "unmatched" route and cannot inflate label cardinality.
package middleware
