// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package services

import (
	"context"
)

// EventRunner is a blocking event consumer such as events.PerformanceListener.
type EventRunner interface {
	Run(ctx context.Context) error
}

// EventListenerService runs an event consumer under supervision. An error
// from Run makes suture restart the consumer with a fresh subscription.
type EventListenerService struct {
	runner EventRunner
	name   string
}

// NewEventListenerService wraps runner under the given service name.
func NewEventListenerService(runner EventRunner, name string) *EventListenerService {
	if name == "" {
		name = "event-listener"
	}
	return &EventListenerService{runner: runner, name: name}
}

// Serve implements suture.Service.
func (s *EventListenerService) Serve(ctx context.Context) error {
	return s.runner.Run(ctx)
}

// String returns the service name for logging.
func (s *EventListenerService) String() string {
	return s.name
}
