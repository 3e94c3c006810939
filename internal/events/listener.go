// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package events

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/creatorlens/internal/logging"
	"github.com/tomtom215/creatorlens/internal/metrics"
)

// Subscriber is the subscribing half of the bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// ListenerStats holds runtime statistics for monitoring.
type ListenerStats struct {
	Received        int64
	Invalid         int64
	LastMessageTime time.Time
}

// PerformanceListener consumes PerformanceCollected events. Arrival of new
// data is recorded only: cached snapshots stay valid until their TTL runs
// out.
type PerformanceListener struct {
	subscriber Subscriber
	logger     zerolog.Logger

	readyOnce sync.Once
	ready     chan struct{}

	received atomic.Int64
	invalid  atomic.Int64
	lastSeen atomic.Value // time.Time
}

// NewPerformanceListener creates a listener reading from subscriber.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewPerformanceListener(subscriber Subscriber, logger zerolog.Logger) *PerformanceListener {
	return &PerformanceListener{
		subscriber: subscriber,
		logger:     logger.With().Str("component", "performance-listener").Logger(),
		ready:      make(chan struct{}),
	}
}

// Ready is closed once the listener has subscribed for the first time.
func (l *PerformanceListener) Ready() <-chan struct{} {
	return l.ready
}

// Run consumes events until ctx is canceled. It returns an error when the
// subscription cannot be created or the bus closes underneath it.
func (l *PerformanceListener) Run(ctx context.Context) error {
	messages, err := l.subscriber.Subscribe(ctx, TopicPerformanceCollected)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", TopicPerformanceCollected, err)
	}
	l.readyOnce.Do(func() { close(l.ready) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("subscription to %s closed", TopicPerformanceCollected)
			}
			l.handle(msg)
		}
	}
}

func (l *PerformanceListener) handle(msg *message.Message) {
	// Malformed payloads are acked too; redelivery would never fix them.
	defer msg.Ack()

	l.lastSeen.Store(time.Now())

	ev, err := DecodePerformanceCollected(msg.Payload)
	if err != nil {
		l.invalid.Add(1)
		l.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping invalid performance event")
		return
	}

	l.received.Add(1)
	metrics.RecordPerformanceEvent()

	ctx := logging.ContextWithCorrelationID(context.Background(), msg.Metadata.Get(MetadataCorrelationID))
	ctx = logging.ContextWithCreatorID(ctx, ev.CreatorID)
	logger := logging.CtxWith(logging.ContextWithLogger(ctx, l.logger)).Logger()
	logger.Debug().
		Str("post_id", ev.PostID).
		Str("platform", ev.Platform).
		Time("collected_at", ev.CollectedAt).
		Msg("Performance data collected")
}

// Stats returns current listener statistics.
func (l *PerformanceListener) Stats() ListenerStats {
	stats := ListenerStats{
		Received: l.received.Load(),
		Invalid:  l.invalid.Load(),
	}
	if t, ok := l.lastSeen.Load().(time.Time); ok {
		stats.LastMessageTime = t
	}
	return stats
}
