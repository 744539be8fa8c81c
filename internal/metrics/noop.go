package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncHealthCheck is a no-op.
func (n *NoopRecorder) IncHealthCheck() {}

// IncReadinessCheck is a no-op.
func (n *NoopRecorder) IncReadinessCheck() {}

// IncGreetingServed is a no-op.
func (n *NoopRecorder) IncGreetingServed() {}

// IncStatusSnapshot is a no-op.
func (n *NoopRecorder) IncStatusSnapshot() {}

// IncNotFound is a no-op.
func (n *NoopRecorder) IncNotFound() {}

// IncPanicRecovered is a no-op.
func (n *NoopRecorder) IncPanicRecovered() {}

// ObserveRequestDuration is a no-op.
func (n *NoopRecorder) ObserveRequestDuration(duration time.Duration) {}
