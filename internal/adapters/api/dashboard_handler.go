package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"forecastdash.app/internal/core/forecast"
	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
)

// DashboardRequest is the JSON body of POST /api/dashboard
type DashboardRequest struct {
	Cities []string `json:"cities" binding:"required"`
	Days   int      `json:"days" binding:"required"`
}

// DashboardQuery is the query form of GET /api/dashboard
type DashboardQuery struct {
	Cities []string `form:"city" binding:"required"`
	Days   int      `form:"days" binding:"required"`
}

// postDashboard handles POST /api/dashboard requests
func (s *HTTPServerAdapter) postDashboard(c *gin.Context) {
	var req DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("invalid request: cities and days are required"))
		return
	}

	s.renderDashboard(c, forecast.RenderRequest{Cities: req.Cities, Days: req.Days})
}

// getDashboard handles GET /api/dashboard?city=...&days=... requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	var query DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("invalid request: city and days are required"))
		return
	}

	s.renderDashboard(c, forecast.RenderRequest{Cities: query.Cities, Days: query.Days})
}

func (s *HTTPServerAdapter) renderDashboard(c *gin.Context, request forecast.RenderRequest) {
	dashboard, err := s.dashboardUseCase.Render(c.Request.Context(), request)
	if err != nil {
		s.logger.Warn("Dashboard render failed",
			ports.F("cities", len(request.Cities)),
			ports.F("days", request.Days),
			ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
