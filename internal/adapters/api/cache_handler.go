package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"forecastdash.app/internal/core/forecast"
)

// CacheListResponse is the body of GET /api/cache
type CacheListResponse struct {
	Cities []forecast.CacheEntry `json:"cities"`
	Count  int                   `json:"count"`
}

// listCache handles GET /api/cache requests
func (s *HTTPServerAdapter) listCache(c *gin.Context) {
	entries, err := s.dashboardUseCase.CachedCities(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, CacheListResponse{Cities: entries, Count: len(entries)})
}

// clearCache handles DELETE /api/cache requests
func (s *HTTPServerAdapter) clearCache(c *gin.Context) {
	if err := s.dashboardUseCase.Clear(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// evictCity handles DELETE /api/cache/:city requests
func (s *HTTPServerAdapter) evictCity(c *gin.Context) {
	if err := s.dashboardUseCase.Evict(c.Request.Context(), c.Param("city")); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
