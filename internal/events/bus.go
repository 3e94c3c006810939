// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/insights"
	"github.com/tomtom215/creatorlens/internal/logging"
	"github.com/tomtom215/creatorlens/internal/metrics"
)

// Bus is the in-process event bus. It publishes insight and performance
// events on a watermill gochannel and hands out subscriptions.
//
// Bus implements insights.SnapshotPublisher and database.RecordObserver.
// Messages published while nobody subscribes to a topic are dropped.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewBus creates a bus whose subscriber channels buffer bufferSize messages.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(bufferSize int64, logger zerolog.Logger) *Bus {
	logger = logger.With().Str("component", "events").Logger()
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: bufferSize,
		}, NewWatermillLogger(logger)),
		logger: logger,
	}
}

// Subscribe returns the messages of topic until ctx is canceled.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Publish sends payload to topic. The message is tagged with the context's
// correlation ID.
func (b *Bus) Publish(ctx context.Context, topic string, payload []byte, meta map[string]string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return fmt.Errorf("event bus is closed")
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	for k, v := range meta {
		msg.Metadata.Set(k, v)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	}

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// PublishSnapshot emits an InsightsGenerated event for snap.
func (b *Bus) PublishSnapshot(ctx context.Context, snap *insights.InsightSnapshot) (err error) {
	defer func() { metrics.RecordInsightEvent(err) }()

	data, err := encode(NewInsightsGenerated(snap))
	if err != nil {
		return err
	}
	return b.Publish(ctx, TopicInsightsGenerated, data, map[string]string{
		MetadataCreatorID: snap.CreatorID,
	})
}

// PerformanceCollected emits a PerformanceCollected event for rec. Failures
// are logged; the record is already committed.
func (b *Bus) PerformanceCollected(ctx context.Context, rec analytics.PerformanceRecord) {
	data, err := encode(NewPerformanceCollected(&rec))
	if err == nil {
		err = b.Publish(ctx, TopicPerformanceCollected, data, map[string]string{
			MetadataCreatorID: rec.CreatorID,
		})
	}
	if err != nil {
		b.logger.Warn().Err(err).
			Str("creator_id", rec.CreatorID).
			Str("post_id", rec.PostID).
			Msg("Failed to publish performance event")
	}
}

// Close shuts down the bus and ends every subscription.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}
