package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestInMemoryRecorder_Counters(t *testing.T) {
	m := NewInMemory()

	m.IncHealthCheck()
	m.IncHealthCheck()
	m.IncGreetingServed()
	m.IncStatusSnapshot()
	m.IncNotFound()
	m.IncPanicRecovered()
	m.ObserveRequestDuration(10 * time.Millisecond)

	snap := m.Snapshot()

	if snap.HealthChecks != 2 {
		t.Errorf("expected 2 health checks, got %d", snap.HealthChecks)
	}
	if snap.GreetingsServed != 1 {
		t.Errorf("expected 1 greeting, got %d", snap.GreetingsServed)
	}
	if snap.StatusSnapshots != 1 {
		t.Errorf("expected 1 status snapshot, got %d", snap.StatusSnapshots)
	}
	if snap.NotFound != 1 {
		t.Errorf("expected 1 not found, got %d", snap.NotFound)
	}
	if snap.PanicsRecovered != 1 {
		t.Errorf("expected 1 panic, got %d", snap.PanicsRecovered)
	}
	if snap.RequestDurationCount != 1 {
		t.Errorf("expected 1 duration sample, got %d", snap.RequestDurationCount)
	}
	if snap.RequestDurationTotalNs != (10 * time.Millisecond).Nanoseconds() {
		t.Errorf("unexpected duration total: %d", snap.RequestDurationTotalNs)
	}
}

func TestInMemoryRecorder_Concurrent(t *testing.T) {
	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncStatusSnapshot()
		}()
	}
	wg.Wait()

	if got := m.Snapshot().StatusSnapshots; got != 50 {
		t.Errorf("expected 50 status snapshots, got %d", got)
	}
}
