// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewHealthHandler(fakePinger{err: errors.New("down")}, nil))
	rec := serve(t, router, http.MethodGet, "/api/v1/health/live")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if resp := decode(t, rec); resp.Status != "success" {
		t.Errorf("status field = %q, want success", resp.Status)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		db      Pinger
		circuit CircuitState
		want    int
	}{
		{"ready", fakePinger{}, func() string { return "closed" }, http.StatusOK},
		{"breaker disabled", fakePinger{}, nil, http.StatusOK},
		{"database down", fakePinger{err: errors.New("down")}, nil, http.StatusServiceUnavailable},
		{"circuit open", fakePinger{}, func() string { return "open" }, http.StatusServiceUnavailable},
		{"no database", nil, nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router := NewRouter(NewHealthHandler(tt.db, tt.circuit))
			rec := serve(t, router, http.MethodGet, "/api/v1/health/ready")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewHealthHandler(fakePinger{}, nil))
	serve(t, router, http.MethodGet, "/api/v1/health/live")
	rec := serve(t, router, http.MethodGet, "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("expected default Go collectors in metrics output")
	}
	if !strings.Contains(rec.Body.String(), `route="/api/v1/health/live"`) {
		t.Error("expected HTTP request metrics labelled by route")
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewHealthHandler(fakePinger{}, nil))

	if rec := serve(t, router, http.MethodGet, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	rec := serve(t, router, http.MethodPost, "/api/v1/health/live")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if resp := decode(t, rec); resp.Error == nil || resp.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Errorf("unexpected error body: %+v", resp)
	}
}
