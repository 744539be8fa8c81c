// Package model defines domain entities and wire payloads for the application.
package model

// Presence values reported for optional backing services.
const (
	PresenceConfigured    = "configured"
	PresenceNotConfigured = "not configured"
)

// StatusSnapshot summarizes which backing services have been configured.
// It is recomputed fresh on every request and never persisted.
type StatusSnapshot struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// NewStatusSnapshot builds a snapshot from configuration presence.
// Presence means a connection string is set, not that the service is
// reachable.
func NewStatusSnapshot(databaseConfigured, redisConfigured bool) StatusSnapshot {
	return StatusSnapshot{
		Backend:  "running",
		Database: presence(databaseConfigured),
		Redis:    presence(redisConfigured),
	}
}

func presence(configured bool) string {
	if configured {
		return PresenceConfigured
	}
	return PresenceNotConfigured
}

// Greeting is the payload served by the hello endpoint.
type Greeting struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
