// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/creatorlens/internal/events"
)

type flakyRunner struct {
	runs  atomic.Int32
	fails int32
}

func (r *flakyRunner) Run(ctx context.Context) error {
	if r.runs.Add(1) <= r.fails {
		return errors.New("subscription closed")
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestEventListenerService_Name(t *testing.T) {
	if got := NewEventListenerService(&flakyRunner{}, "").String(); got != "event-listener" {
		t.Errorf("String() = %q, want event-listener", got)
	}
	if got := NewEventListenerService(&flakyRunner{}, "performance-listener").String(); got != "performance-listener" {
		t.Errorf("String() = %q", got)
	}
}

func TestEventListenerService_RestartedBySupervisor(t *testing.T) {
	runner := &flakyRunner{fails: 2}

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewEventListenerService(runner, "test-listener"))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for runner.runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("runs = %d, want at least 3", runner.runs.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	<-errCh
}

func TestEventListenerService_WithBus(t *testing.T) {
	bus := events.NewBus(16, zerolog.Nop())
	listener := events.NewPerformanceListener(bus, zerolog.Nop())
	svc := NewEventListenerService(listener, "performance-listener")

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-listener.Ready():
	case <-time.After(time.Second):
		t.Fatal("listener never subscribed")
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
