package infrastructure

import (
	"time"

	"forecastdash.app/internal/config"
	"forecastdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetDashboardConfig returns dashboard rendering configuration
func (c *ConfigProviderAdapter) GetDashboardConfig() ports.DashboardConfig {
	return ports.DashboardConfig{
		RenderScope: c.config.Dashboard.RenderScope,
		MaxDays:     c.config.Dashboard.MaxDays,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		TTL:  time.Duration(c.config.Cache.TTLMinutes) * time.Minute,
	}
}

// GetProviderConfig returns forecast provider configuration without the API key
func (c *ConfigProviderAdapter) GetProviderConfig() ports.ProviderConfig {
	return ports.ProviderConfig{
		Name:     "accuweather",
		BaseURL:  c.config.AccuWeather.BaseURL,
		Language: c.config.AccuWeather.Language,
		Timeout:  time.Duration(c.config.AccuWeather.TimeoutSeconds) * time.Second,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Host: c.config.Server.Host,
		Port: c.config.Server.Port,
	}
}
