// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"errors"
	"fmt"
)

// Config holds the tunable weights and thresholds of the analytics pipeline.
// All fields have defaults; see DefaultConfig.
type Config struct {
	Scoring        ScoringConfig        `json:"scoring" koanf:"scoring"`
	Buckets        BucketConfig         `json:"buckets" koanf:"buckets"`
	Patterns       PatternConfig        `json:"patterns" koanf:"patterns"`
	Sensitivity    SensitivityConfig    `json:"sensitivity" koanf:"sensitivity"`
	Recommendation RecommendationConfig `json:"recommendation" koanf:"recommendation"`
	Prediction     PredictionConfig     `json:"prediction" koanf:"prediction"`
}

// ScoringConfig controls engagement, reach and composite scoring.
type ScoringConfig struct {
	// LikeWeight multiplies likes in the engagement numerator.
	// Default: 1.
	LikeWeight float64 `json:"like_weight" koanf:"like_weight"`

	// CommentWeight multiplies comments in the engagement numerator.
	// Default: 2.
	CommentWeight float64 `json:"comment_weight" koanf:"comment_weight"`

	// ShareWeight multiplies shares in the engagement numerator.
	// Default: 3.
	ShareWeight float64 `json:"share_weight" koanf:"share_weight"`

	// MedianWindow is the number of most recent posts used for the reach median.
	// Default: 50.
	MedianWindow int `json:"median_window" koanf:"median_window"`

	// EngagementWeight is the engagement share of the composite score.
	// Default: 0.6.
	EngagementWeight float64 `json:"engagement_weight" koanf:"engagement_weight"`

	// ReachWeight is the reach share of the composite score.
	// Default: 0.4.
	ReachWeight float64 `json:"reach_weight" koanf:"reach_weight"`
}

// BucketConfig defines the band edges for bucketed attributes.
type BucketConfig struct {
	// ShortLengthMax is the exclusive upper bound of the "short" length band.
	// Default: 100.
	ShortLengthMax int `json:"short_length_max" koanf:"short_length_max"`

	// MediumLengthMax is the exclusive upper bound of the "medium" length band.
	// Default: 500.
	MediumLengthMax int `json:"medium_length_max" koanf:"medium_length_max"`

	// FewHashtagsMax is the inclusive upper bound of the "few" hashtag band.
	// Default: 3.
	FewHashtagsMax int `json:"few_hashtags_max" koanf:"few_hashtags_max"`
}

// PatternConfig controls top-post pattern detection.
type PatternConfig struct {
	// TopPostsCount is the default size of the selected top set.
	// Default: 20.
	TopPostsCount int `json:"top_posts_count" koanf:"top_posts_count"`

	// SupportThreshold is the minimum share of the selected set a value needs.
	// Default: 0.4.
	SupportThreshold float64 `json:"support_threshold" koanf:"support_threshold"`

	// MinPosts is the minimum number of posts before any pattern is reported.
	// Default: 3.
	MinPosts int `json:"min_posts" koanf:"min_posts"`
}

// SensitivityConfig controls the audience sensitivity analysis.
type SensitivityConfig struct {
	// MinGroupSize is the minimum number of posts for a group to qualify.
	// Default: 2.
	MinGroupSize int `json:"min_group_size" koanf:"min_group_size"`
}

// RecommendationConfig controls recommendation priorities.
type RecommendationConfig struct {
	// CriticalRatio is the pattern-to-median ratio for Critical priority.
	// Default: 1.5.
	CriticalRatio float64 `json:"critical_ratio" koanf:"critical_ratio"`

	// HighRatio is the pattern-to-median ratio for High priority.
	// Default: 1.2.
	HighRatio float64 `json:"high_ratio" koanf:"high_ratio"`

	// MediumRatio is the pattern-to-median ratio for Medium priority.
	// Default: 1.0.
	MediumRatio float64 `json:"medium_ratio" koanf:"medium_ratio"`

	// SensitivityThreshold is the magnitude above which a targeting item is emitted.
	// Default: 0.15.
	SensitivityThreshold float64 `json:"sensitivity_threshold" koanf:"sensitivity_threshold"`

	// CadenceFloor is the posts-per-week rate below which a frequency item is emitted.
	// Default: 1.
	CadenceFloor float64 `json:"cadence_floor" koanf:"cadence_floor"`
}

// PredictionConfig controls the similarity matching of predictions.
type PredictionConfig struct {
	// HourWindow is the allowed distance in hours for the strictest match.
	// Default: 2.
	HourWindow int `json:"hour_window" koanf:"hour_window"`

	// MinSupport is the number of matches a level needs to be used.
	// Default: 3.
	MinSupport int `json:"min_support" koanf:"min_support"`
}

// DefaultConfig returns the default analytics configuration.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			LikeWeight:       1,
			CommentWeight:    2,
			ShareWeight:      3,
			MedianWindow:     50,
			EngagementWeight: 0.6,
			ReachWeight:      0.4,
		},
		Buckets: BucketConfig{
			ShortLengthMax:  100,
			MediumLengthMax: 500,
			FewHashtagsMax:  3,
		},
		Patterns: PatternConfig{
			TopPostsCount:    20,
			SupportThreshold: 0.4,
			MinPosts:         3,
		},
		Sensitivity: SensitivityConfig{
			MinGroupSize: 2,
		},
		Recommendation: RecommendationConfig{
			CriticalRatio:        1.5,
			HighRatio:            1.2,
			MediumRatio:          1.0,
			SensitivityThreshold: 0.15,
			CadenceFloor:         1,
		},
		Prediction: PredictionConfig{
			HourWindow: 2,
			MinSupport: 3,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error

	s := c.Scoring
	if s.LikeWeight < 0 || s.CommentWeight < 0 || s.ShareWeight < 0 {
		errs = append(errs, fmt.Errorf("scoring weights must be non-negative, got like=%f comment=%f share=%f",
			s.LikeWeight, s.CommentWeight, s.ShareWeight))
	}
	if s.MedianWindow < 1 {
		errs = append(errs, fmt.Errorf("scoring.median_window must be at least 1, got %d", s.MedianWindow))
	}
	if s.EngagementWeight < 0 || s.ReachWeight < 0 {
		errs = append(errs, errors.New("composite weights must be non-negative"))
	}
	if sum := s.EngagementWeight + s.ReachWeight; sum <= 0 || sum > 1.0000001 {
		errs = append(errs, fmt.Errorf("composite weights must sum to (0, 1], got %f", sum))
	}

	b := c.Buckets
	if b.ShortLengthMax < 1 || b.MediumLengthMax <= b.ShortLengthMax {
		errs = append(errs, fmt.Errorf("length buckets must satisfy 0 < short (%d) < medium (%d)",
			b.ShortLengthMax, b.MediumLengthMax))
	}
	if b.FewHashtagsMax < 1 {
		errs = append(errs, fmt.Errorf("buckets.few_hashtags_max must be at least 1, got %d", b.FewHashtagsMax))
	}

	p := c.Patterns
	if p.TopPostsCount < 1 {
		errs = append(errs, fmt.Errorf("patterns.top_posts_count must be at least 1, got %d", p.TopPostsCount))
	}
	if p.SupportThreshold <= 0 || p.SupportThreshold > 1 {
		errs = append(errs, fmt.Errorf("patterns.support_threshold must be in (0, 1], got %f", p.SupportThreshold))
	}
	if p.MinPosts < 1 {
		errs = append(errs, fmt.Errorf("patterns.min_posts must be at least 1, got %d", p.MinPosts))
	}

	if c.Sensitivity.MinGroupSize < 1 {
		errs = append(errs, fmt.Errorf("sensitivity.min_group_size must be at least 1, got %d", c.Sensitivity.MinGroupSize))
	}

	r := c.Recommendation
	if !(r.CriticalRatio >= r.HighRatio && r.HighRatio >= r.MediumRatio && r.MediumRatio > 0) {
		errs = append(errs, fmt.Errorf("priority ratios must satisfy critical >= high >= medium > 0, got %f/%f/%f",
			r.CriticalRatio, r.HighRatio, r.MediumRatio))
	}
	if r.SensitivityThreshold < 0 {
		errs = append(errs, fmt.Errorf("recommendation.sensitivity_threshold must be non-negative, got %f", r.SensitivityThreshold))
	}
	if r.CadenceFloor < 0 {
		errs = append(errs, fmt.Errorf("recommendation.cadence_floor must be non-negative, got %f", r.CadenceFloor))
	}

	if c.Prediction.HourWindow < 0 || c.Prediction.HourWindow > 12 {
		errs = append(errs, fmt.Errorf("prediction.hour_window must be in [0, 12], got %d", c.Prediction.HourWindow))
	}
	if c.Prediction.MinSupport < 1 {
		errs = append(errs, fmt.Errorf("prediction.min_support must be at least 1, got %d", c.Prediction.MinSupport))
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
