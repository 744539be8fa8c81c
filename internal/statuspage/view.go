package statuspage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/seyali/seyali/internal/model"
)

// ConnState is the connection indicator for the page.
// It starts Pending and is set exactly once per page load from the
// health call's outcome; it never returns to Pending.
type ConnState int

const (
	ConnPending ConnState = iota
	ConnConnected
	ConnDisconnected
)

// IsConnected reports whether the health call succeeded.
func (s ConnState) IsConnected() bool {
	return s == ConnConnected
}

// String returns the display label for the state.
func (s ConnState) String() string {
	switch s {
	case ConnConnected:
		return "Connected"
	case ConnDisconnected:
		return "Disconnected"
	default:
		return "Checking"
	}
}

// View holds the display state for one page load. The three fetches
// update disjoint fields, so they can run concurrently without locks.
type View struct {
	Conn ConnState

	// Message is blank when the greeting call failed.
	Message string
	Version string

	// Status is nil when the status call failed; the section is then
	// omitted entirely.
	Status *model.StatusSnapshot

	Health *HealthInfo
}

// Load issues the three service calls concurrently and assembles a
// View from whatever succeeded. Failures are logged and degrade their
// own region; Load itself never fails.
func Load(ctx context.Context, client *Client, logger *slog.Logger) *View {
	view := &View{Conn: ConnPending}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		health, err := client.FetchHealth(ctx)
		if err != nil {
			logger.Warn("health check failed", slog.String("error", err.Error()))
			view.Conn = ConnDisconnected
			return
		}
		view.Conn = ConnConnected
		view.Health = health
	}()

	go func() {
		defer wg.Done()
		greeting, err := client.FetchGreeting(ctx)
		if err != nil {
			logger.Warn("greeting fetch failed", slog.String("error", err.Error()))
			return
		}
		view.Message = greeting.Message
		view.Version = greeting.Version
	}()

	go func() {
		defer wg.Done()
		snapshot, err := client.FetchStatus(ctx)
		if err != nil {
			logger.Warn("status fetch failed", slog.String("error", err.Error()))
			return
		}
		view.Status = snapshot
	}()

	wg.Wait()
	return view
}
