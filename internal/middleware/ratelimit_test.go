package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newRateLimitedHandler(cfg RateLimitConfig) http.Handler {
	return RateLimitIP(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRateLimitIP_Disabled(t *testing.T) {
	handler := newRateLimitedHandler(RateLimitConfig{Enabled: false})

	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
}

func TestRateLimitIP_BlocksAfterBurst(t *testing.T) {
	handler := newRateLimitedHandler(RateLimitConfig{
		Enabled: true,
		RPS:     1,
		Burst:   3,
	})

	var lastCode int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		req.RemoteAddr = "203.0.113.7:51234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst exhausted, got %d", lastCode)
	}
}

func TestRateLimitIP_IndependentPerIP(t *testing.T) {
	handler := newRateLimitedHandler(RateLimitConfig{
		Enabled: true,
		RPS:     1,
		Burst:   1,
	})

	// Exhaust the first IP's budget.
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		req.RemoteAddr = "203.0.113.1:1000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	// A different IP still has its full budget.
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.RemoteAddr = "203.0.113.2:1000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for fresh IP, got %d", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.9:4242"

	if got := clientIP(req); got != "198.51.100.9" {
		t.Errorf("clientIP = %q, want 198.51.100.9", got)
	}

	req.RemoteAddr = "no-port-here"
	if got := clientIP(req); got != "no-port-here" {
		t.Errorf("clientIP = %q, want raw addr", got)
	}
}
