// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"fmt"
)

// Priority ranks how urgently a recommendation should be acted on.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// String returns the priority name.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText encodes the priority by name.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a priority name.
func (p *Priority) UnmarshalText(text []byte) error {
	for candidate := PriorityLow; candidate <= PriorityCritical; candidate++ {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown priority %q", text)
}

// RecommendationType is the closed set of recommendation kinds.
// Values outside the declared constants are never produced; use the
// New*Recommendation constructors to build recommendations.
type RecommendationType uint8

const (
	TypeTopic RecommendationType = iota
	TypeFormat
	TypeTiming
	TypeFrequency
	TypeAudienceTargeting
	TypeHashtagStrategy
	TypeCollaboration
	TypeMonetization
	TypeCrossPlatform
	TypeRepurposing
	TypeEngagementTactic

	numRecommendationTypes
)

var recommendationTypeNames = [numRecommendationTypes]string{
	TypeTopic:             "topic",
	TypeFormat:            "format",
	TypeTiming:            "timing",
	TypeFrequency:         "frequency",
	TypeAudienceTargeting: "audience-targeting",
	TypeHashtagStrategy:   "hashtag-strategy",
	TypeCollaboration:     "collaboration",
	TypeMonetization:      "monetization",
	TypeCrossPlatform:     "cross-platform",
	TypeRepurposing:       "repurposing",
	TypeEngagementTactic:  "engagement-tactic",
}

// String returns the type tag.
func (t RecommendationType) String() string {
	if t >= numRecommendationTypes {
		return "unknown"
	}
	return recommendationTypeNames[t]
}

// MarshalText encodes the type by tag.
func (t RecommendationType) MarshalText() ([]byte, error) {
	if t >= numRecommendationTypes {
		return nil, fmt.Errorf("invalid recommendation type %d", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type tag.
func (t *RecommendationType) UnmarshalText(text []byte) error {
	for i, name := range recommendationTypeNames {
		if name == string(text) {
			*t = RecommendationType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown recommendation type %q", text)
}

// Recommendation is a typed, prioritized piece of advice.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Priority Priority           `json:"priority"`

	// Title is a one-line summary suitable for suggestion lists.
	Title string `json:"title"`

	// Justification explains which evidence produced the recommendation.
	Justification string `json:"justification"`

	// ExpectedImpact is a heuristic relative lift. Nil when not estimated.
	ExpectedImpact *float64 `json:"expected_impact,omitempty"`

	// Attribute and Value name the evidence the recommendation points at.
	Attribute string `json:"attribute,omitempty"`
	Value     string `json:"value,omitempty"`

	// seq is the evaluation order, used as the final tie-break.
	seq int
}

// Impact returns the expected impact, or 0 when none was estimated.
func (r *Recommendation) Impact() float64 {
	if r.ExpectedImpact == nil {
		return 0
	}
	return *r.ExpectedImpact
}

func newRecommendation(t RecommendationType, p Priority, title, justification string) Recommendation {
	return Recommendation{Type: t, Priority: p, Title: title, Justification: justification}
}

// NewTopicRecommendation builds a topic recommendation.
func NewTopicRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeTopic, p, title, justification)
}

// NewFormatRecommendation builds a content format recommendation.
func NewFormatRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeFormat, p, title, justification)
}

// NewTimingRecommendation builds a posting-time recommendation.
func NewTimingRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeTiming, p, title, justification)
}

// NewFrequencyRecommendation builds a posting-frequency recommendation.
func NewFrequencyRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeFrequency, p, title, justification)
}

// NewAudienceTargetingRecommendation builds an audience-targeting recommendation.
func NewAudienceTargetingRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeAudienceTargeting, p, title, justification)
}

// NewHashtagStrategyRecommendation builds a hashtag-strategy recommendation.
func NewHashtagStrategyRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeHashtagStrategy, p, title, justification)
}

// NewCollaborationRecommendation builds a collaboration recommendation.
func NewCollaborationRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeCollaboration, p, title, justification)
}

// NewMonetizationRecommendation builds a monetization recommendation.
func NewMonetizationRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeMonetization, p, title, justification)
}

// NewCrossPlatformRecommendation builds a cross-platform promotion recommendation.
func NewCrossPlatformRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeCrossPlatform, p, title, justification)
}

// NewRepurposingRecommendation builds a content repurposing recommendation.
func NewRepurposingRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeRepurposing, p, title, justification)
}

// NewEngagementTacticRecommendation builds an engagement-tactic recommendation.
func NewEngagementTacticRecommendation(p Priority, title, justification string) Recommendation {
	return newRecommendation(TypeEngagementTactic, p, title, justification)
}

// WithImpact returns a copy of r with the expected impact set.
//
//nolint:gocritic // hugeParam: value receiver keeps recommendations immutable
func (r Recommendation) WithImpact(impact float64) Recommendation {
	r.ExpectedImpact = &impact
	return r
}

// WithEvidence returns a copy of r pointing at an attribute value.
//
//nolint:gocritic // hugeParam: value receiver keeps recommendations immutable
func (r Recommendation) WithEvidence(attr Attribute, value string) Recommendation {
	r.Attribute = attr.String()
	r.Value = value
	return r
}
