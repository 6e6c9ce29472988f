package ports

import (
	"context"
	"time"
)

// Render scopes for the dashboard
const (
	RenderScopeAll       = "all"
	RenderScopeRequested = "requested"
)

// DashboardConfig represents dashboard rendering configuration
type DashboardConfig struct {
	RenderScope string
	MaxDays     int
}

// CacheConfig represents forecast cache configuration. A zero TTL never expires.
type CacheConfig struct {
	Type string
	TTL  time.Duration
}

// ProviderConfig represents forecast provider configuration
type ProviderConfig struct {
	Name     string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host string
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetDashboardConfig() DashboardConfig
	GetCacheConfig() CacheConfig
	GetProviderConfig() ProviderConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Clock supplies the current time to cache and use case code
type Clock interface {
	Now() time.Time
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordProviderCall(ctx context.Context, operation string, success bool, duration time.Duration)
	RecordCityError(ctx context.Context, kind string)
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}
