package infrastructure

import (
	"context"

	"forecastdash.app/internal/ports"
)

const (
	statusHealthy   = ports.StatusHealthy
	statusUnhealthy = "unhealthy"
)

// CacheHealthChecker pings remote cache backends; in-process caches are always up
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
}

func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = statusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	if pinger, ok := c.cache.(ports.Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
			status.Details["connected"] = false
			return status
		}
		status.Details["connected"] = true
	}

	return status
}

// ProviderHealthChecker reports the forecast provider setup without calling it
type ProviderHealthChecker struct {
	provider ports.ForecastProvider
	config   ports.ProviderConfig
}

func NewProviderHealthChecker(provider ports.ForecastProvider, config ports.ProviderConfig) *ProviderHealthChecker {
	return &ProviderHealthChecker{provider: provider, config: config}
}

func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "forecastProvider",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"base_url": p.config.BaseURL,
			"language": p.config.Language,
			"timeout":  p.config.Timeout.String(),
		},
	}

	if p.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "forecast provider is not available"
		return status
	}

	status.Details["provider"] = p.provider.GetProviderName()
	return status
}
