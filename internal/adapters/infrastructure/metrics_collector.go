package infrastructure

import (
	"context"
	"net/http"
	"time"

	"cityweather.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "cityweather"

var breakerStateValues = map[string]float64{
	"closed":    0,
	"half-open": 1,
	"open":      2,
}

// PrometheusMetricsCollector implements the MetricsCollector port. Every
// collector owns its registry so several instances can coexist in tests.
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheHits          *prometheus.CounterVec
	cacheMisses        *prometheus.CounterVec
	upstreamCalls      *prometheus.CounterVec
	upstreamLatency    *prometheus.HistogramVec
	breakerState       *prometheus.GaugeVec
	lookups            *prometheus.CounterVec
	enrichmentFallback *prometheus.CounterVec
}

// NewPrometheusMetricsCollector creates a collector with Go runtime metrics registered
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hits_total",
			Help:      "The total number of cache hits by key class",
		}, []string{"key_class"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_misses_total",
			Help:      "The total number of cache misses by key class",
		}, []string{"key_class"}),
		upstreamCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound requests by source and outcome",
		}, []string{"source", "outcome"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		breakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_breaker_state",
			Help:      "Circuit breaker state per source (0 closed, 1 half-open, 2 open)",
		}, []string{"source"}),
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Weather lookups by outcome",
		}, []string{"outcome"}),
		enrichmentFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "enrichment_fallbacks_total",
			Help:      "Enrichment tasks that fell back to a default value",
		}, []string{"task"}),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(keyClass string) {
	m.cacheHits.WithLabelValues(keyClass).Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(keyClass string) {
	m.cacheMisses.WithLabelValues(keyClass).Inc()
}

func (m *PrometheusMetricsCollector) RecordUpstreamCall(source, outcome string, duration time.Duration) {
	m.upstreamCalls.WithLabelValues(source, outcome).Inc()
	if outcome != ports.OutcomeRejected {
		m.upstreamLatency.WithLabelValues(source).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetricsCollector) RecordBreakerState(source, state string) {
	m.breakerState.WithLabelValues(source).Set(breakerStateValues[state])
}

func (m *PrometheusMetricsCollector) RecordLookup(outcome string) {
	m.lookups.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordEnrichmentFallback(task string) {
	m.enrichmentFallback.WithLabelValues(task).Inc()
}

// Registry exposes the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// StatsReporter assembles the JSON metrics document served by the API
type StatsReporter struct {
	cacheMetrics   ports.CacheMetrics
	upstreamStatus ports.UpstreamStatusReporter
}

// StatsReporterConfig holds the sources aggregated by a StatsReporter
type StatsReporterConfig struct {
	CacheMetrics   ports.CacheMetrics
	UpstreamStatus ports.UpstreamStatusReporter
}

func NewStatsReporter(config StatsReporterConfig) *StatsReporter {
	return &StatsReporter{
		cacheMetrics:   config.CacheMetrics,
		upstreamStatus: config.UpstreamStatus,
	}
}

// GetMetrics returns cache statistics and upstream breaker states
func (s *StatsReporter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if s.cacheMetrics != nil {
		stats := s.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"backend":   stats.Backend,
			"entries":   stats.Entries,
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"expired":   stats.Expired,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
	}

	if s.upstreamStatus != nil {
		metrics["upstreams"] = s.upstreamStatus.BreakerStates()
	}

	return metrics, nil
}
