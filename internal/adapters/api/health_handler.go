package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"forecastdash.app/internal/ports"
)

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests; any unhealthy component yields 503
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	if !ports.AllHealthy(results) {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Components: results})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: ports.StatusHealthy, Components: results})
}
