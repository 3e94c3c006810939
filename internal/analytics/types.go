// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"fmt"
	"time"
)

// PerformanceRecord is a single performance measurement of a post.
// Records are owned by the metrics store and never modified here.
type PerformanceRecord struct {
	// PostID identifies the measured post.
	PostID string `json:"post_id"`

	// CreatorID identifies the post's owner.
	CreatorID string `json:"creator_id"`

	// Platform is the social platform the post was published on.
	Platform string `json:"platform"`

	// Likes is the like/reaction counter.
	Likes int64 `json:"likes"`

	// Comments is the comment counter.
	Comments int64 `json:"comments"`

	// Shares is the share/repost counter.
	Shares int64 `json:"shares"`

	// Reach is the number of impressions.
	Reach int64 `json:"reach"`

	// CollectedAt is when the measurement was taken.
	CollectedAt time.Time `json:"collected_at"`
}

// PostMetadata describes a post independent of its measurements.
type PostMetadata struct {
	PostID    string `json:"post_id"`
	CreatorID string `json:"creator_id"`
	Platform  string `json:"platform"`

	// ContentType is the content format (image, video, reel, carousel, text, story).
	// Empty means unknown.
	ContentType string `json:"content_type,omitempty"`

	// ContentLength is the caption/body length in characters.
	ContentLength int `json:"content_length"`

	// HashtagCount is the number of hashtags attached to the post.
	HashtagCount int `json:"hashtag_count"`

	// ScheduledAt is when the post was scheduled to go live, if known.
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`

	// CreatedAt is when the post was created.
	CreatedAt time.Time `json:"created_at"`
}

// ScoredPost is a performance record joined with its metadata and scores.
type ScoredPost struct {
	Record PerformanceRecord `json:"record"`

	// Metadata is nil when the store has no metadata for the post.
	Metadata *PostMetadata `json:"metadata,omitempty"`

	// EngagementScore is in [0,1].
	EngagementScore float64 `json:"engagement_score"`

	// ReachScore is in [0,1].
	ReachScore float64 `json:"reach_score"`

	// CompositeScore ranks posts against each other. Also in [0,1].
	CompositeScore float64 `json:"composite_score"`
}

// PublishedAt returns the best known publication time of the post:
// scheduled time, then creation time, then the measurement time.
func (p *ScoredPost) PublishedAt() time.Time {
	if p.Metadata != nil {
		if p.Metadata.ScheduledAt != nil && !p.Metadata.ScheduledAt.IsZero() {
			return *p.Metadata.ScheduledAt
		}
		if !p.Metadata.CreatedAt.IsZero() {
			return p.Metadata.CreatedAt
		}
	}
	return p.Record.CollectedAt
}

// ContentType returns the post's content type, or "unknown".
func (p *ScoredPost) ContentType() string {
	if p.Metadata == nil || p.Metadata.ContentType == "" {
		return ContentTypeUnknown
	}
	return p.Metadata.ContentType
}

// ContentTypeUnknown labels posts without a known content type.
const ContentTypeUnknown = "unknown"

// Attribute is a post attribute the detectors group by.
type Attribute int

const (
	// AttributePlatform groups by platform.
	AttributePlatform Attribute = iota
	// AttributeTimeOfDay groups by publication hour band.
	AttributeTimeOfDay
	// AttributeContentLength groups by content length band.
	AttributeContentLength
	// AttributeHashtags groups by hashtag count band.
	AttributeHashtags
)

// Attributes lists the candidate attributes in evaluation order.
var Attributes = []Attribute{
	AttributePlatform,
	AttributeTimeOfDay,
	AttributeContentLength,
	AttributeHashtags,
}

// String returns the attribute name.
func (a Attribute) String() string {
	switch a {
	case AttributePlatform:
		return "platform"
	case AttributeTimeOfDay:
		return "time_of_day"
	case AttributeContentLength:
		return "content_length"
	case AttributeHashtags:
		return "hashtags"
	default:
		return "unknown"
	}
}

// MarshalText encodes the attribute by name.
func (a Attribute) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an attribute name.
func (a *Attribute) UnmarshalText(text []byte) error {
	for _, candidate := range Attributes {
		if candidate.String() == string(text) {
			*a = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown attribute %q", text)
}

// PatternEntry is an attribute value shared by the top-performing posts.
type PatternEntry struct {
	Attribute Attribute `json:"attribute"`
	Value     string    `json:"value"`

	// SupportCount is how many selected posts carry the value.
	SupportCount int `json:"support_count"`

	// AverageScore is the mean composite score of those posts.
	AverageScore float64 `json:"average_score"`
}

// PatternResult is the output of pattern detection.
type PatternResult struct {
	// Entries are ordered by attribute evaluation order.
	Entries []PatternEntry `json:"entries"`

	// EvidencePostIDs are the selected top posts, best first.
	EvidencePostIDs []string `json:"evidence_post_ids"`

	// SelectedCount is the size of the selected set.
	SelectedCount int `json:"selected_count"`

	// InsufficientEvidence is set when too few posts exist to detect patterns.
	InsufficientEvidence bool `json:"insufficient_evidence"`
}

// Entry returns the pattern entry for attribute a, if present.
func (r *PatternResult) Entry(a Attribute) (PatternEntry, bool) {
	for _, e := range r.Entries {
		if e.Attribute == a {
			return e, true
		}
	}
	return PatternEntry{}, false
}

// Sensitivity is the engagement spread across values of one attribute.
type Sensitivity struct {
	Attribute Attribute `json:"attribute"`

	// Magnitude is max minus min of the qualifying group averages.
	Magnitude float64 `json:"magnitude"`

	// BestValue is the value of the group with the highest average.
	BestValue string `json:"best_value"`

	// BestAverage is that group's average engagement.
	BestAverage float64 `json:"best_average"`

	// Groups is the number of qualifying groups.
	Groups int `json:"groups"`
}

// SensitivityResult lists per-attribute sensitivities in evaluation order.
// Attributes with fewer than two qualifying groups are omitted.
type SensitivityResult struct {
	Attributes []Sensitivity `json:"attributes"`
}

// Confidence grades a prediction by how specific its evidence was.
type Confidence string

const (
	// ConfidenceHigh means platform, hour and length all matched.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means only the platform matched.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow means the estimate uses all of the creator's posts.
	ConfidenceLow Confidence = "low"
)

// MatchLevel names the similarity level a prediction was drawn from.
type MatchLevel string

const (
	MatchPlatformHourLength MatchLevel = "platform_hour_length"
	MatchPlatform           MatchLevel = "platform"
	MatchAll                MatchLevel = "all_posts"
	MatchGlobalFallback     MatchLevel = "global_fallback"
)

// PredictionRequest describes a hypothetical post.
type PredictionRequest struct {
	CreatorID     string `json:"creator_id" validate:"identifier"`
	Platform      string `json:"platform" validate:"required"`
	ContentLength int    `json:"content_length" validate:"gte=0"`
	HashtagCount  int    `json:"hashtag_count" validate:"gte=0"`
	HourOfDay     int    `json:"hour_of_day" validate:"gte=0,lte=23"`
}

// PredictionResult is the estimated performance of a hypothetical post.
type PredictionResult struct {
	CreatorID string `json:"creator_id"`

	EstimatedEngagement float64 `json:"estimated_engagement"`
	EstimatedReach      float64 `json:"estimated_reach"`
	EstimatedComposite  float64 `json:"estimated_composite"`

	Confidence Confidence `json:"confidence"`
	MatchLevel MatchLevel `json:"match_level"`

	// SupportCount is the number of posts the estimate averages.
	SupportCount int `json:"support_count"`

	// LowEvidence is set when SupportCount is below the minimum support.
	LowEvidence bool `json:"low_evidence"`
}

// ContentTypeStats aggregates the posts of one content type.
type ContentTypeStats struct {
	ContentType       string  `json:"content_type"`
	PostCount         int     `json:"post_count"`
	AverageEngagement float64 `json:"average_engagement"`
	AverageReach      float64 `json:"average_reach"`
	AverageComposite  float64 `json:"average_composite"`
	TotalLikes        int64   `json:"total_likes"`
	TotalComments     int64   `json:"total_comments"`
	TotalShares       int64   `json:"total_shares"`
}

// ContentComparisonResult compares content types over a date range.
type ContentComparisonResult struct {
	CreatorID string    `json:"creator_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`

	// Types are ordered by average composite score, best first.
	Types []ContentTypeStats `json:"types"`

	// BestType is empty when no posts fall in the range.
	BestType string `json:"best_type,omitempty"`

	InsufficientEvidence bool `json:"insufficient_evidence"`
}
