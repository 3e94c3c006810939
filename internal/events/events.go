// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package events

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/insights"
)

const (
	// TopicInsightsGenerated carries InsightsGenerated events.
	TopicInsightsGenerated = "insights.generated"

	// TopicPerformanceCollected carries PerformanceCollected events.
	TopicPerformanceCollected = "performance.collected"

	// MetadataCorrelationID is the message metadata key of the correlation ID.
	MetadataCorrelationID = "correlation_id"

	// MetadataCreatorID is the message metadata key of the creator ID.
	MetadataCreatorID = "creator_id"
)

// InsightsGenerated is emitted after a snapshot is regenerated and stored.
type InsightsGenerated struct {
	SnapshotID           string    `json:"snapshot_id"`
	CreatorID            string    `json:"creator_id"`
	GeneratedAt          time.Time `json:"generated_at"`
	PostCount            int       `json:"post_count"`
	Recommendations      int       `json:"recommendations"`
	InsufficientEvidence bool      `json:"insufficient_evidence"`

	// TopRecommendation is the title of the highest priority item, if any.
	TopRecommendation string `json:"top_recommendation,omitempty"`
}

// NewInsightsGenerated summarizes snap.
func NewInsightsGenerated(snap *insights.InsightSnapshot) *InsightsGenerated {
	ev := &InsightsGenerated{
		SnapshotID:           snap.ID,
		CreatorID:            snap.CreatorID,
		GeneratedAt:          snap.GeneratedAt,
		PostCount:            snap.PostCount,
		Recommendations:      len(snap.Recommendations),
		InsufficientEvidence: snap.InsufficientEvidence,
	}
	if len(snap.Recommendations) > 0 {
		ev.TopRecommendation = snap.Recommendations[0].Title
	}
	return ev
}

// PerformanceCollected is emitted when a performance record is committed to
// the metrics store.
type PerformanceCollected struct {
	CreatorID   string    `json:"creator_id"`
	PostID      string    `json:"post_id"`
	Platform    string    `json:"platform"`
	Reach       int64     `json:"reach"`
	CollectedAt time.Time `json:"collected_at"`
}

// NewPerformanceCollected summarizes rec.
func NewPerformanceCollected(rec *analytics.PerformanceRecord) *PerformanceCollected {
	return &PerformanceCollected{
		CreatorID:   rec.CreatorID,
		PostID:      rec.PostID,
		Platform:    rec.Platform,
		Reach:       rec.Reach,
		CollectedAt: rec.CollectedAt,
	}
}

// Validate checks required fields.
func (e *PerformanceCollected) Validate() error {
	if e.CreatorID == "" || e.PostID == "" {
		return fmt.Errorf("creator_id and post_id are required")
	}
	return nil
}

// encode converts an event to JSON bytes.
func encode(event any) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// DecodeInsightsGenerated converts JSON bytes to an InsightsGenerated event.
func DecodeInsightsGenerated(data []byte) (*InsightsGenerated, error) {
	var ev InsightsGenerated
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal insights event: %w", err)
	}
	return &ev, nil
}

// DecodePerformanceCollected converts JSON bytes to a PerformanceCollected
// event and validates it.
func DecodePerformanceCollected(data []byte) (*PerformanceCollected, error) {
	var ev PerformanceCollected
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal performance event: %w", err)
	}
	if err := ev.Validate(); err != nil {
		return nil, fmt.Errorf("validate performance event: %w", err)
	}
	return &ev, nil
}
