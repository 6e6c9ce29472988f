package ports

import "context"

// HealthChecker defines the contract for component health checking
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus represents the health status of a component
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}

// StatusHealthy is the Status of a component that passed its check
const StatusHealthy = "healthy"

// AllHealthy reports whether every component passed
func AllHealthy(results map[string]HealthStatus) bool {
	for _, status := range results {
		if status.Status != StatusHealthy {
			return false
		}
	}
	return true
}
