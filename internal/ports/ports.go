package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Forecast
	ForecastProvider ForecastProvider
	ForecastCache    ForecastCache

	// Cache
	CacheProvider CacheProvider

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	Clock            Clock
	MetricsCollector MetricsCollector
	HealthChecker    SystemHealthChecker
}
