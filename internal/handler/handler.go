// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/seyali/seyali/internal/metrics"
)

// Version reported by the greeting endpoint.
const Version = "1.0.0"

// Handler serves the greeting and fallback routes.
type Handler struct {
	recorder metrics.Recorder
}

// New creates a new Handler instance.
func New(recorder metrics.Recorder) *Handler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Handler{recorder: recorder}
}

// Hello serves the fixed greeting.
// GET /api/hello
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	h.recorder.IncGreetingServed()

	response := map[string]string{
		"message": "Welcome to Seyali API!",
		"version": Version,
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses for every unmatched path.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.recorder.IncNotFound()

	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already gone; nothing useful left to do.
		_ = err
	}
}
