// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

var errTest = errors.New("boom")

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	id1 := GenerateCorrelationID()
	id2 := GenerateCorrelationID()

	if len(id1) != 8 {
		t.Errorf("expected 8-character correlation ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique correlation IDs")
	}
}

func TestCorrelationIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("expected empty correlation ID, got %s", id)
	}

	ctx = ContextWithCorrelationID(ctx, "abc12345")
	if id := CorrelationIDFromContext(ctx); id != "abc12345" {
		t.Errorf("expected abc12345, got %s", id)
	}
}

func TestContextWithNewCorrelationID_KeepsExisting(t *testing.T) {
	t.Parallel()

	ctx := ContextWithCorrelationID(context.Background(), "existing")
	if id := CorrelationIDFromContext(ContextWithNewCorrelationID(ctx)); id != "existing" {
		t.Errorf("expected existing, got %s", id)
	}

	fresh := ContextWithNewCorrelationID(context.Background())
	if id := CorrelationIDFromContext(fresh); len(id) != 8 {
		t.Errorf("expected generated ID, got %q", id)
	}
}

func TestCtx_AddsCorrelationID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithCorrelationID(ctx, "abc12345")

	Ctx(ctx).Info().Msg("with context")

	output := buf.String()
	if !strings.Contains(output, `"correlation_id":"abc12345"`) {
		t.Errorf("expected correlation_id, got: %s", output)
	}
}

func TestCtxWith_ExtraFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithCorrelationID(ctx, "abc12345")
	ctx = ContextWithCreatorID(ctx, "creator-1")

	logger := CtxWith(ctx).Str("snapshot_id", "snap-1").Logger()
	logger.Info().Msg("extra")

	output := buf.String()
	for _, want := range []string{`"correlation_id":"abc12345"`, `"creator_id":"creator-1"`, `"snapshot_id":"snap-1"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestCreatorIDContext(t *testing.T) {
	t.Parallel()

	if id := CreatorIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty creator ID, got %s", id)
	}
	if id := CreatorIDFromContext(ContextWithCreatorID(context.Background(), "creator-7")); id != "creator-7" {
		t.Errorf("expected creator-7, got %s", id)
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	logger := LoggerFromContext(context.Background())
	if logger.GetLevel() != Logger().GetLevel() {
		t.Error("expected the global logger")
	}
}
