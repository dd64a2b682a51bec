package service

// Health status values reported by the liveness endpoint.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

type HealthStatus struct {
	Status               string `json:"status"`
	DatabaseStatus       string `json:"database_status"`
	CircuitBreakerState  string `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerStatus string `json:"circuit_breaker_status,omitempty"`
}
