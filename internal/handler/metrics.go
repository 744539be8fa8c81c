package handler

import (
	"fmt"
	"net/http"

	"github.com/seyali/seyali/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "seyali_health_checks_total %d\n", snap.HealthChecks)
	writeMetric(w, "seyali_readiness_checks_total %d\n", snap.ReadinessChecks)
	writeMetric(w, "seyali_greetings_served_total %d\n", snap.GreetingsServed)
	writeMetric(w, "seyali_status_snapshots_total %d\n", snap.StatusSnapshots)
	writeMetric(w, "seyali_not_found_total %d\n", snap.NotFound)
	writeMetric(w, "seyali_panics_recovered_total %d\n", snap.PanicsRecovered)
	writeMetric(w, "seyali_request_duration_seconds_count %d\n", snap.RequestDurationCount)
	writeMetric(w, "seyali_request_duration_seconds_sum %.6f\n", float64(snap.RequestDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
