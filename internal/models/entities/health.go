package entities

import "time"

// ServiceStatus reports the reachability of one backing store.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthCheckResponse is the body of GET /healthCheck. Remote reporting
// servers are deliberately absent from it: their availability is checked
// per fetch, never eagerly.
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"up_since"`
	Uptime   string                   `json:"uptime"`
}
