package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	HealthChecks           uint64
	ReadinessChecks        uint64
	GreetingsServed        uint64
	StatusSnapshots        uint64
	NotFound               uint64
	PanicsRecovered        uint64
	RequestDurationCount   uint64
	RequestDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	healthChecks           uint64
	readinessChecks        uint64
	greetingsServed        uint64
	statusSnapshots        uint64
	notFound               uint64
	panicsRecovered        uint64
	requestDurationCount   uint64
	requestDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		HealthChecks:           atomic.LoadUint64(&m.healthChecks),
		ReadinessChecks:        atomic.LoadUint64(&m.readinessChecks),
		GreetingsServed:        atomic.LoadUint64(&m.greetingsServed),
		StatusSnapshots:        atomic.LoadUint64(&m.statusSnapshots),
		NotFound:               atomic.LoadUint64(&m.notFound),
		PanicsRecovered:        atomic.LoadUint64(&m.panicsRecovered),
		RequestDurationCount:   atomic.LoadUint64(&m.requestDurationCount),
		RequestDurationTotalNs: atomic.LoadInt64(&m.requestDurationTotalNs),
	}
}

// IncHealthCheck increments the health check counter.
func (m *InMemoryRecorder) IncHealthCheck() {
	atomic.AddUint64(&m.healthChecks, 1)
}

// IncReadinessCheck increments the readiness check counter.
func (m *InMemoryRecorder) IncReadinessCheck() {
	atomic.AddUint64(&m.readinessChecks, 1)
}

// IncGreetingServed increments the greeting counter.
func (m *InMemoryRecorder) IncGreetingServed() {
	atomic.AddUint64(&m.greetingsServed, 1)
}

// IncStatusSnapshot increments the status snapshot counter.
func (m *InMemoryRecorder) IncStatusSnapshot() {
	atomic.AddUint64(&m.statusSnapshots, 1)
}

// IncNotFound increments the unmatched route counter.
func (m *InMemoryRecorder) IncNotFound() {
	atomic.AddUint64(&m.notFound, 1)
}

// IncPanicRecovered increments the recovered panic counter.
func (m *InMemoryRecorder) IncPanicRecovered() {
	atomic.AddUint64(&m.panicsRecovered, 1)
}

// ObserveRequestDuration records a request duration.
func (m *InMemoryRecorder) ObserveRequestDuration(duration time.Duration) {
	atomic.AddUint64(&m.requestDurationCount, 1)
	atomic.AddInt64(&m.requestDurationTotalNs, duration.Nanoseconds())
}
