package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/seyali/seyali/internal/metrics"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health and readiness endpoints.
type HealthHandler struct {
	started     time.Time
	environment string
	db          HealthChecker
	cache       HealthChecker
	recorder    metrics.Recorder
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for db or cache when they are not connected.
func NewHealthHandler(started time.Time, environment string, db, cache HealthChecker, recorder metrics.Recorder) *HealthHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &HealthHandler{
		started:     started,
		environment: environment,
		db:          db,
		cache:       cache,
		recorder:    recorder,
	}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Uptime      int64  `json:"uptime"`
	Environment string `json:"environment"`
}

// ReadyResponse is the readiness payload.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health is a liveness probe endpoint. It always succeeds; no
// dependency is consulted.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.recorder.IncHealthCheck()

	uptime := int64(time.Since(h.started).Seconds())
	if uptime < 0 {
		uptime = 0
	}

	response := HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      uptime,
		Environment: h.environment,
	}
	writeJSON(w, http.StatusOK, response)
}

// Readyz is a readiness probe endpoint. Unlike /api/status, it pings
// whichever dependencies are actually connected and returns 200 only
// if all of them answer.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	h.recorder.IncReadinessCheck()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	// Check PostgreSQL
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["postgres"] = "error: " + err.Error()
			healthy = false
		} else {
			checks["postgres"] = "ok"
		}
	} else {
		checks["postgres"] = "not configured"
	}

	// Check Redis
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			checks["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	} else {
		checks["redis"] = "not configured"
	}

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := ReadyResponse{
		Status: status,
		Checks: checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
