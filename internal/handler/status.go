package handler

import (
	"net/http"

	"github.com/seyali/seyali/internal/metrics"
	"github.com/seyali/seyali/internal/model"
)

// StatusHandler serves the configuration-presence snapshot.
type StatusHandler struct {
	databaseConfigured bool
	redisConfigured    bool
	recorder           metrics.Recorder
}

// NewStatusHandler creates a StatusHandler from configuration presence
// flags resolved once at startup.
func NewStatusHandler(databaseConfigured, redisConfigured bool, recorder metrics.Recorder) *StatusHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &StatusHandler{
		databaseConfigured: databaseConfigured,
		redisConfigured:    redisConfigured,
		recorder:           recorder,
	}
}

// Status returns a fresh StatusSnapshot. Presence only: nothing is
// dialed, so the endpoint cannot fail and concurrent requests share no
// state.
//
// GET /api/status
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.recorder.IncStatusSnapshot()

	snapshot := model.NewStatusSnapshot(h.databaseConfigured, h.redisConfigured)
	writeJSON(w, http.StatusOK, snapshot)
}
