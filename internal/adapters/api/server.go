// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"forecastdash.app/internal/core/forecast"
	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	server           *http.Server
	config           ServerConfig
	dashboardUseCase DashboardUseCase
	metricsCollector MetricsCollector
	metricsHandler   http.Handler
	healthChecker    ports.SystemHealthChecker
	logger           ports.Logger
}

// DashboardUseCase is the forecast use case as seen by the HTTP adapter
type DashboardUseCase interface {
	Render(ctx context.Context, request forecast.RenderRequest) (*forecast.Dashboard, error)
	CachedCities(ctx context.Context) ([]forecast.CacheEntry, error)
	Evict(ctx context.Context, city string) error
	Clear(ctx context.Context) error
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	DashboardUseCase DashboardUseCase
	MetricsCollector MetricsCollector
	MetricsHandler   http.Handler
	HealthChecker    ports.SystemHealthChecker
	Logger           ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()

	s := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		dashboardUseCase: opts.DashboardUseCase,
		metricsCollector: opts.MetricsCollector,
		metricsHandler:   opts.MetricsHandler,
		healthChecker:    opts.HealthChecker,
		logger:           opts.Logger,
	}

	router.Use(gin.Recovery(), requestIDMiddleware(), s.requestLogger())
	s.setupRoutes()
	return s, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.DashboardUseCase == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.getIndex)

	api := s.router.Group("/api")
	{
		api.GET("/dashboard", s.getDashboard)
		api.POST("/dashboard", s.postDashboard)
		api.GET("/cache", s.listCache)
		api.DELETE("/cache", s.clearCache)
		api.DELETE("/cache/:city", s.evictCity)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start serves until the listener fails or Shutdown is called
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("Starting HTTP server", ports.F("addr", s.config.Addr()))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
