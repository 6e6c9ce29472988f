package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"forecastdash.app/internal/adapters/api"
	"forecastdash.app/internal/config"
	"forecastdash.app/internal/core/forecast"
	"forecastdash.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	forecastUseCase *forecast.UseCase

	// Adapters
	server *api.HTTPServerAdapter

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	a.ports.Logger.Info("Initializing use cases...")

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Provider: a.ports.ForecastProvider,
		Cache:    a.ports.ForecastCache,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.MetricsCollector,
		Clock:    a.ports.Clock,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	return nil
}

func (a *Application) initializeAdapters() error {
	a.ports.Logger.Info("Initializing adapters...")

	server, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Host: a.config.Server.Host,
			Port: a.config.Server.Port,
		},
		DashboardUseCase: a.forecastUseCase,
		MetricsCollector: a.deps.Metrics(),
		MetricsHandler:   a.deps.Metrics().Handler(),
		HealthChecker:    a.ports.HealthChecker,
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.server = server

	return nil
}

// Start blocks serving HTTP until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	a.ports.Logger.Info("Starting application...")
	return a.server.Start(ctx)
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.server.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.server.GetRouter()
}

// GetForecastUseCase returns the forecast use case for testing
func (a *Application) GetForecastUseCase() *forecast.UseCase {
	return a.forecastUseCase
}
