// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

// Package analytics contains the pure scoring and insight functions of the
// engine.
//
// Everything in this package is deterministic and free of I/O: the same
// records and configuration always produce the same output, and all
// functions are safe for concurrent use. Caching, persistence and
// scheduling live in package insights.
//
// # Pipeline
//
//	records + metadata
//	    -> ScorePosts            engagement, reach and composite scores in [0,1]
//	    -> DetectPatterns        attribute values shared by the top posts
//	    -> AnalyzeSensitivity    engagement spread per attribute
//	    -> GenerateRecommendations
//
// Predict and CompareContentTypes reuse the scored posts to answer
// per-request questions.
//
// # Scores
//
// Engagement is the weighted interaction rate
// (likes + 2*comments + 3*shares) / reach. Reach is normalized against the
// median reach of the creator's 50 most recent posts. The composite ranking
// score is 0.6*engagement + 0.4*reach. All weights are configurable.
//
// Outputs are heuristic and explainable; no statistical significance is
// implied.
package analytics
