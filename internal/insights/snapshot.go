// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package insights

import (
	"time"

	"github.com/tomtom215/creatorlens/internal/analytics"
)

// InsightSnapshot is the cached, creator-scoped result of one regeneration.
// Snapshots are immutable once published; a regeneration replaces the whole
// snapshot rather than editing it.
type InsightSnapshot struct {
	// ID uniquely identifies this snapshot.
	ID string `json:"id"`

	CreatorID   string    `json:"creator_id"`
	GeneratedAt time.Time `json:"generated_at"`

	// Recommendations are ranked by priority, expected impact and evaluation order.
	Recommendations []analytics.Recommendation `json:"recommendations"`

	Patterns    analytics.PatternResult     `json:"patterns"`
	Sensitivity analytics.SensitivityResult `json:"sensitivity"`

	StrengthPoints         []string `json:"strength_points"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`

	// PostCount is the number of distinct posts the snapshot was computed from.
	PostCount int `json:"post_count"`

	// Cadence is the posting rate in posts per week.
	Cadence float64 `json:"cadence"`

	// MedianScore is the median composite score across all posts.
	MedianScore float64 `json:"median_score"`

	// InsufficientEvidence is set when the creator has too few posts for
	// pattern detection. A creator with zero posts always carries it.
	InsufficientEvidence bool `json:"insufficient_evidence"`
}

// Age returns how old the snapshot is at now.
func (s *InsightSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.GeneratedAt)
}

// FreshAt reports whether the snapshot is younger than ttl at now.
func (s *InsightSnapshot) FreshAt(now time.Time, ttl time.Duration) bool {
	return s.Age(now) < ttl
}

// BuildSnapshot runs the analytics pipeline over a creator's records.
// id and generatedAt are supplied by the caller so identical inputs produce
// identical content.
func BuildSnapshot(cfg *analytics.Config, id, creatorID string, records []analytics.PerformanceRecord, posts []analytics.PostMetadata, topPostsCount int, generatedAt time.Time) *InsightSnapshot {
	snap := &InsightSnapshot{
		ID:          id,
		CreatorID:   creatorID,
		GeneratedAt: generatedAt,
	}

	scored := cfg.ScorePosts(records, posts)
	snap.PostCount = len(scored)
	if len(scored) == 0 {
		snap.Patterns = analytics.PatternResult{InsufficientEvidence: true}
		snap.InsufficientEvidence = true
		return snap
	}

	snap.MedianScore = analytics.MedianComposite(scored)
	snap.Cadence = analytics.Cadence(scored)
	snap.Patterns = cfg.DetectPatterns(scored, topPostsCount)
	snap.Sensitivity = cfg.AnalyzeSensitivity(scored)
	snap.InsufficientEvidence = snap.Patterns.InsufficientEvidence

	snap.Recommendations = cfg.GenerateRecommendations(analytics.RecommendationInput{
		Patterns:    snap.Patterns,
		Sensitivity: snap.Sensitivity,
		Cadence:     snap.Cadence,
		PostCount:   snap.PostCount,
		MedianScore: snap.MedianScore,
		Baselines:   cfg.PatternBaselines(scored, snap.Patterns),
	})
	snap.StrengthPoints = analytics.StrengthPoints(snap.Patterns, snap.MedianScore)
	snap.ImprovementSuggestions = analytics.ImprovementSuggestions(snap.Recommendations)
	return snap
}
