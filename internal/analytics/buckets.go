// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

// Time-of-day bands.
const (
	TimeNight     = "night"     // 00:00-05:59
	TimeMorning   = "morning"   // 06:00-11:59
	TimeAfternoon = "afternoon" // 12:00-17:59
	TimeEvening   = "evening"   // 18:00-23:59
)

// Content length bands.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Hashtag count bands.
const (
	HashtagsNone = "none"
	HashtagsFew  = "few"
	HashtagsMany = "many"
)

// HourBucket maps an hour of day (0-23) to its band.
func HourBucket(hour int) string {
	switch {
	case hour < 6:
		return TimeNight
	case hour < 12:
		return TimeMorning
	case hour < 18:
		return TimeAfternoon
	default:
		return TimeEvening
	}
}

// LengthBucket maps a content length in characters to its band.
func (b BucketConfig) LengthBucket(length int) string {
	switch {
	case length < b.ShortLengthMax:
		return LengthShort
	case length < b.MediumLengthMax:
		return LengthMedium
	default:
		return LengthLong
	}
}

// HashtagBucket maps a hashtag count to its band.
func (b BucketConfig) HashtagBucket(count int) string {
	switch {
	case count <= 0:
		return HashtagsNone
	case count <= b.FewHashtagsMax:
		return HashtagsFew
	default:
		return HashtagsMany
	}
}

// attributeValue returns the value of attribute a for post p.
// The second result is false when the post carries no value for a,
// which happens for metadata-derived attributes of posts without metadata.
func (b BucketConfig) attributeValue(p *ScoredPost, a Attribute) (string, bool) {
	switch a {
	case AttributePlatform:
		if p.Record.Platform == "" {
			return "", false
		}
		return p.Record.Platform, true
	case AttributeTimeOfDay:
		at := p.PublishedAt()
		if at.IsZero() {
			return "", false
		}
		return HourBucket(at.Hour()), true
	case AttributeContentLength:
		if p.Metadata == nil {
			return "", false
		}
		return b.LengthBucket(p.Metadata.ContentLength), true
	case AttributeHashtags:
		if p.Metadata == nil {
			return "", false
		}
		return b.HashtagBucket(p.Metadata.HashtagCount), true
	default:
		return "", false
	}
}
