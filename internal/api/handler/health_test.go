package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakePinger struct {
	name string
	err  error
}

func (p fakePinger) Name() string               { return p.name }
func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Liveness(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		deps     []Pinger
		wantCode int
		wantStat string
	}{
		{"no dependencies", nil, http.StatusOK, "ok"},
		{"all up", []Pinger{fakePinger{name: "mongodb"}, fakePinger{name: "redis"}}, http.StatusOK, "ok"},
		{"redis down", []Pinger{fakePinger{name: "mongodb"}, fakePinger{name: "redis", err: errors.New("dial tcp: refused")}}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := NewHealthHandler(tt.deps...).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var body readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Status != tt.wantStat || len(body.Dependencies) != len(tt.deps) {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}
}
