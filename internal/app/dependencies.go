package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"forecastdash.app/internal/adapters/external"
	"forecastdash.app/internal/adapters/infrastructure"
	"forecastdash.app/internal/config"
	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/logger"
)

type DependencyContainer struct {
	config        *config.Config
	options       DependencyOptions
	appLogger     *logger.Logger
	fileLogger    *infrastructure.FileLoggerAdapter
	cacheProvider ports.CacheProvider
	metrics       *infrastructure.PrometheusMetricsCollector
	ports         *ports.ApplicationPorts
}

// DependencyOptions overrides process-level collaborators, mostly for tests
type DependencyOptions struct {
	HTTPClient external.HTTPClient
	Clock      ports.Clock
	LogWriter  io.Writer
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if opts.Clock == nil {
		opts.Clock = infrastructure.NewSystemClock()
	}
	if opts.LogWriter == nil {
		opts.LogWriter = os.Stdout
	}

	container := &DependencyContainer{
		config:  cfg,
		options: opts,
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	c.appLogger = logger.NewWithWriter(c.options.LogWriter, logger.ParseLevel(c.config.Log.Level))
	slog.SetDefault(c.appLogger.Logger)

	appLogger := infrastructure.NewSlogLoggerAdapter(c.appLogger)
	appLogger.Info("Initializing ports...")

	providerLogger := ports.Logger(appLogger)
	if c.config.AccuWeather.EnableLogging && c.config.Log.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath, c.config.Log.Level, c.options.Clock)
		if err != nil {
			appLogger.Warn("Failed to create file logger, falling back to stdout", ports.F("error", err))
		} else {
			c.fileLogger = fileLogger
			providerLogger = fileLogger
			appLogger.Info("Provider file logging enabled", ports.F("path", c.config.Log.FilePath))
		}
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	cacheFactory := external.NewCacheProviderFactory(c.options.Clock)
	cacheProvider, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheProvider = cacheProvider

	cacheConfig := configProvider.GetCacheConfig()
	forecastCache := external.NewForecastCacheAdapter(cacheProvider, cacheConfig.TTL)

	appLogger.Info("Cache provider initialized",
		ports.F("type", cacheConfig.Type),
		ports.F("ttl", cacheConfig.TTL.String()))

	cacheMetrics, _ := cacheProvider.(ports.CacheMetrics)
	c.metrics = infrastructure.NewPrometheusMetricsCollector(infrastructure.MetricsCollectorConfig{
		CacheType:    cacheConfig.Type,
		CacheMetrics: cacheMetrics,
	})

	accuWeather, err := external.NewAccuWeatherProviderAdapter(external.AccuWeatherProviderParams{
		APIKey:   c.config.AccuWeather.APIKey,
		BaseURL:  c.config.AccuWeather.BaseURL,
		Language: c.config.AccuWeather.Language,
		Timeout:  time.Duration(c.config.AccuWeather.TimeoutSeconds) * time.Second,
		Policy:   external.FirstMatch,
		Client:   c.options.HTTPClient,
		Logger:   appLogger,
	})
	if err != nil {
		return fmt.Errorf("create forecast provider: %w", err)
	}

	var provider ports.ForecastProvider = external.NewForecastProviderMetricsDecorator(accuWeather, c.metrics)
	if c.config.AccuWeather.EnableLogging {
		provider = external.NewForecastProviderLoggingDecorator(provider, providerLogger)
		appLogger.Info("Forecast provider logging enabled")
	}

	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: []ports.HealthChecker{
			infrastructure.NewCacheHealthChecker(cacheConfig.Type, cacheProvider),
			infrastructure.NewProviderHealthChecker(provider, configProvider.GetProviderConfig()),
		},
		ConfigProvider: configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		ForecastProvider: provider,
		ForecastCache:    forecastCache,
		CacheProvider:    cacheProvider,
		ConfigProvider:   configProvider,
		Logger:           appLogger,
		Clock:            c.options.Clock,
		MetricsCollector: c.metrics,
		HealthChecker:    healthChecker,
	}

	appLogger.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the Prometheus-backed collector that also serves /metrics
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup closes the cache connection and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if closer, ok := c.cacheProvider.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("Error closing cache provider", "error", err)
			firstErr = err
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			slog.Warn("Error closing provider log file", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
