// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"testing"
)

func predictionFixture() []ScoredPost {
	return scoredPosts([]postSpec{
		{platform: "instagram", likes: 10, reach: 100, day: 0, hour: 10, length: 50},
		{platform: "instagram", likes: 12, reach: 100, day: 1, hour: 11, length: 60},
		{platform: "instagram", likes: 14, reach: 100, day: 2, hour: 12, length: 70},
		{platform: "instagram", likes: 2, reach: 100, day: 3, hour: 22, length: 900},
		{platform: "twitter", likes: 1, reach: 100, day: 4, hour: 10, length: 50},
	})
}

func TestPredict_HighConfidenceMatch(t *testing.T) {
	t.Parallel()

	posts := predictionFixture()
	result := DefaultConfig().Predict(PredictionRequest{
		CreatorID: "creator-1", Platform: "instagram", ContentLength: 40, HourOfDay: 11,
	}, posts)

	if result.Confidence != ConfidenceHigh || result.MatchLevel != MatchPlatformHourLength {
		t.Fatalf("confidence = %s (%s), want high", result.Confidence, result.MatchLevel)
	}
	if result.SupportCount != 3 {
		t.Errorf("support = %d, want 3", result.SupportCount)
	}
	if !approxEqual(result.EstimatedEngagement, 0.12) {
		t.Errorf("estimated engagement = %f, want 0.12", result.EstimatedEngagement)
	}
	if result.LowEvidence {
		t.Error("expected LowEvidence false")
	}
}

func TestPredict_WidensToPlatform(t *testing.T) {
	t.Parallel()

	result := DefaultConfig().Predict(PredictionRequest{
		CreatorID: "creator-1", Platform: "instagram", ContentLength: 40, HourOfDay: 3,
	}, predictionFixture())

	if result.Confidence != ConfidenceMedium || result.SupportCount != 4 {
		t.Errorf("got %s with support %d, want medium with 4", result.Confidence, result.SupportCount)
	}
}

func TestPredict_UnknownPlatformUsesOverallAverage(t *testing.T) {
	t.Parallel()

	posts := predictionFixture()
	result := DefaultConfig().Predict(PredictionRequest{
		CreatorID: "creator-1", Platform: "youtube", ContentLength: 10, HourOfDay: 10,
	}, posts)

	if result.Confidence != ConfidenceLow || result.MatchLevel != MatchAll {
		t.Fatalf("got %s (%s), want low from all posts", result.Confidence, result.MatchLevel)
	}
	if !approxEqual(result.EstimatedComposite, AverageComposite(posts)) {
		t.Errorf("estimate = %f, want overall average %f", result.EstimatedComposite, AverageComposite(posts))
	}
}

func TestPredict_GlobalFallback(t *testing.T) {
	t.Parallel()

	posts := scoredPosts([]postSpec{
		{platform: "instagram", likes: 10, reach: 100, day: 0},
		{platform: "instagram", likes: 20, reach: 100, day: 1},
	})
	result := DefaultConfig().Predict(PredictionRequest{CreatorID: "c", Platform: "instagram"}, posts)

	if result.MatchLevel != MatchGlobalFallback || !result.LowEvidence || result.Confidence != ConfidenceLow {
		t.Errorf("got %+v, want low-evidence global fallback", result)
	}
	if result.SupportCount != 2 {
		t.Errorf("support = %d, want 2", result.SupportCount)
	}
}

func TestPredict_NoPosts(t *testing.T) {
	t.Parallel()

	result := DefaultConfig().Predict(PredictionRequest{CreatorID: "c", Platform: "instagram"}, nil)
	if result.EstimatedComposite != 0 || !result.LowEvidence || result.SupportCount != 0 {
		t.Errorf("got %+v, want zero estimate with low evidence", result)
	}
}

func TestHourDistance(t *testing.T) {
	t.Parallel()

	tests := []struct{ a, b, want int }{
		{10, 12, 2},
		{23, 1, 2},
		{0, 12, 12},
		{5, 5, 0},
	}
	for _, tt := range tests {
		if got := hourDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("hourDistance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
