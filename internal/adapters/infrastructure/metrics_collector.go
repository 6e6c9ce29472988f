package infrastructure

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"forecastdash.app/internal/ports"
)

// PrometheusMetricsCollector implements MetricsCollector with its own registry
// and keeps plain counters for the JSON snapshot
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	cacheHitRatio *prometheus.GaugeVec
	providerCalls *prometheus.CounterVec
	providerTime  *prometheus.HistogramVec
	cityErrors    *prometheus.CounterVec

	cacheType    string
	cacheMetrics ports.CacheMetrics

	mu            sync.RWMutex
	hits          int64
	misses        int64
	providerStats map[string]map[string]int64
	errorStats    map[string]int64
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheType    string
	CacheMetrics ports.CacheMetrics
}

// NewPrometheusMetricsCollector creates a collector; Go runtime and process
// collectors are registered alongside the application series
func NewPrometheusMetricsCollector(config MetricsCollectorConfig) *PrometheusMetricsCollector {
	m := &PrometheusMetricsCollector{
		registry: prometheus.NewRegistry(),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forecast_cache_hits_total",
			Help: "The total number of forecast cache hits",
		}, []string{"cache_type"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forecast_cache_misses_total",
			Help: "The total number of forecast cache misses",
		}, []string{"cache_type"}),
		cacheHitRatio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forecast_cache_hit_ratio",
			Help: "Cache hit ratio (hits/total lookups)",
		}, []string{"cache_type"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forecast_provider_requests_total",
			Help: "Forecast provider calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		providerTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forecast_provider_request_duration_seconds",
			Help:    "Forecast provider call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		cityErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forecast_city_errors_total",
			Help: "Cities skipped during rendering by error kind",
		}, []string{"kind"}),
		cacheType:     config.CacheType,
		cacheMetrics:  config.CacheMetrics,
		providerStats: make(map[string]map[string]int64),
		errorStats:    make(map[string]int64),
	}

	m.registry.MustRegister(
		m.cacheHits,
		m.cacheMisses,
		m.cacheHitRatio,
		m.providerCalls,
		m.providerTime,
		m.cityErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.cacheHits.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.cacheMisses.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

// updateHitRatio must be called while holding the mutex
func (m *PrometheusMetricsCollector) updateHitRatio() {
	if total := m.hits + m.misses; total > 0 {
		m.cacheHitRatio.WithLabelValues(m.cacheType).Set(float64(m.hits) / float64(total))
	}
}

func (m *PrometheusMetricsCollector) RecordProviderCall(ctx context.Context, operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}

	m.providerCalls.WithLabelValues(operation, outcome).Inc()
	m.providerTime.WithLabelValues(operation).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.providerStats[operation] == nil {
		m.providerStats[operation] = make(map[string]int64)
	}
	m.providerStats[operation][outcome]++
}

func (m *PrometheusMetricsCollector) RecordCityError(ctx context.Context, kind string) {
	m.cityErrors.WithLabelValues(kind).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorStats[kind]++
}

// GetMetrics returns a JSON-friendly snapshot of the counters
func (m *PrometheusMetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hitRatio := float64(0)
	if total := m.hits + m.misses; total > 0 {
		hitRatio = float64(m.hits) / float64(total)
	}

	provider := make(map[string]interface{}, len(m.providerStats))
	for operation, outcomes := range m.providerStats {
		counts := make(map[string]int64, len(outcomes))
		for outcome, n := range outcomes {
			counts[outcome] = n
		}
		provider[operation] = counts
	}

	cityErrors := make(map[string]int64, len(m.errorStats))
	for kind, n := range m.errorStats {
		cityErrors[kind] = n
	}

	metrics := map[string]interface{}{
		"forecast_cache": map[string]interface{}{
			"type":      m.cacheType,
			"hits":      m.hits,
			"misses":    m.misses,
			"hit_ratio": hitRatio,
		},
		"provider":    provider,
		"city_errors": cityErrors,
	}

	if m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		metrics["cache_backend"] = map[string]interface{}{
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
	}

	return metrics, nil
}
