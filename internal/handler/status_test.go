package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/seyali/seyali/internal/model"
)

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) model.StatusSnapshot {
	t.Helper()

	var snap model.StatusSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return snap
}

func TestStatusHandler_Status(t *testing.T) {
	tests := []struct {
		name         string
		database     bool
		redis        bool
		wantDatabase string
		wantRedis    string
	}{
		{"neither", false, false, "not configured", "not configured"},
		{"database only", true, false, "configured", "not configured"},
		{"redis only", false, true, "not configured", "configured"},
		{"both", true, true, "configured", "configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStatusHandler(tt.database, tt.redis, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
			rec := httptest.NewRecorder()

			h.Status(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rec.Code)
			}

			snap := decodeSnapshot(t, rec)

			if snap.Backend != "running" {
				t.Errorf("expected backend 'running', got %s", snap.Backend)
			}
			if snap.Database != tt.wantDatabase {
				t.Errorf("expected database %q, got %q", tt.wantDatabase, snap.Database)
			}
			if snap.Redis != tt.wantRedis {
				t.Errorf("expected redis %q, got %q", tt.wantRedis, snap.Redis)
			}
		})
	}
}

// Concurrent identical requests must never interfere: every response
// carries the same snapshot regardless of interleaving.
func TestStatusHandler_ConcurrentRequests(t *testing.T) {
	h := NewStatusHandler(true, false, nil)

	var wg sync.WaitGroup
	results := make([]model.StatusSnapshot, 64)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
			rec := httptest.NewRecorder()

			h.Status(rec, req)

			var snap model.StatusSnapshot
			if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
				t.Errorf("request %d: decode failed: %v", i, err)
				return
			}
			results[i] = snap
		}(i)
	}
	wg.Wait()

	for i, snap := range results {
		if snap.Backend != "running" || snap.Database != "configured" || snap.Redis != "not configured" {
			t.Errorf("request %d: unexpected snapshot %+v", i, snap)
		}
	}
}
