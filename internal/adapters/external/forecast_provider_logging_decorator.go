package external

import (
	"context"
	"time"

	"forecastdash.app/internal/ports"
)

// ForecastProviderLoggingDecorator decorates forecast providers with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastProviderLoggingDecorator {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// ResolveLocation wraps the city search with structured logging
func (d *ForecastProviderLoggingDecorator) ResolveLocation(ctx context.Context, city string) (*ports.Location, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Debug("Location lookup started",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "request"))

	startTime := time.Now()
	location, err := d.provider.ResolveLocation(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Location lookup failed",
			ports.F("provider", providerName),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Debug("Location lookup completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location_key", location.Key))

	return location, nil
}

// GetForecast wraps the forecast call with structured logging
func (d *ForecastProviderLoggingDecorator) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Forecast API request started",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "request"))

	startTime := time.Now()
	forecast, err := d.provider.GetForecast(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", providerName),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location_key", forecast.Location.Key),
		ports.F("latitude", forecast.Location.Latitude),
		ports.F("longitude", forecast.Location.Longitude),
		ports.F("days", len(forecast.Days)))

	return forecast, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// ForecastProviderMetricsDecorator records call counts and latency per operation
type ForecastProviderMetricsDecorator struct {
	provider ports.ForecastProvider
	metrics  ports.MetricsCollector
}

func NewForecastProviderMetricsDecorator(provider ports.ForecastProvider, metrics ports.MetricsCollector) *ForecastProviderMetricsDecorator {
	return &ForecastProviderMetricsDecorator{
		provider: provider,
		metrics:  metrics,
	}
}

func (d *ForecastProviderMetricsDecorator) ResolveLocation(ctx context.Context, city string) (*ports.Location, error) {
	startTime := time.Now()
	location, err := d.provider.ResolveLocation(ctx, city)
	d.metrics.RecordProviderCall(ctx, "resolve_location", err == nil, time.Since(startTime))
	return location, err
}

func (d *ForecastProviderMetricsDecorator) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	startTime := time.Now()
	forecast, err := d.provider.GetForecast(ctx, city)
	d.metrics.RecordProviderCall(ctx, "get_forecast", err == nil, time.Since(startTime))
	return forecast, err
}

func (d *ForecastProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
