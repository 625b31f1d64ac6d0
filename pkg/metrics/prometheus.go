// Package metrics provides Prometheus metrics for the catalog summary pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus metrics for one pipeline instance.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Fetch metrics, labelled by resource kind.
	pagesFetched   *prometheus.CounterVec
	recordsFetched *prometheus.CounterVec
	fetchFailures  *prometheus.CounterVec

	// Cache metrics.
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	cacheFallbacks *prometheus.CounterVec

	// Orchestration metrics.
	loadDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pgscatalog",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.pagesFetched = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "pages_fetched_total",
			Help:      "Total number of catalog pages retrieved",
		},
		[]string{"kind"},
	)

	m.recordsFetched = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "records_fetched_total",
			Help:      "Total number of catalog records retrieved",
		},
		[]string{"kind"},
	)

	m.fetchFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_failures_total",
			Help:      "Total number of failed pagination runs",
		},
		[]string{"kind"},
	)

	m.cacheHits = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "cache_hits_total",
			Help:      "Total number of loads served from a fresh cache entry",
		},
		[]string{"kind"},
	)

	m.cacheMisses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "cache_misses_total",
			Help:      "Total number of loads that had no fresh cache entry",
		},
		[]string{"kind"},
	)

	m.cacheFallbacks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "cache_fallbacks_total",
			Help:      "Total number of loads degraded to a stale cache entry after a fetch failure",
		},
		[]string{"kind"},
	)

	m.loadDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "load_duration_seconds",
			Help:      "Duration of one orchestrated load, by terminal outcome",
			Buckets:   m.histogramBuckets,
		},
		[]string{"kind", "outcome"},
	)
}

// RecordPageFetched counts one retrieved page and its record count.
func (m *Manager) RecordPageFetched(kind string, records int) {
	m.pagesFetched.WithLabelValues(kind).Inc()
	m.recordsFetched.WithLabelValues(kind).Add(float64(records))
}

// RecordFetchFailure counts one failed pagination run.
func (m *Manager) RecordFetchFailure(kind string) {
	m.fetchFailures.WithLabelValues(kind).Inc()
}

// RecordCacheHit counts one load served from a fresh entry.
func (m *Manager) RecordCacheHit(kind string) {
	m.cacheHits.WithLabelValues(kind).Inc()
}

// RecordCacheMiss counts one load with no fresh entry.
func (m *Manager) RecordCacheMiss(kind string) {
	m.cacheMisses.WithLabelValues(kind).Inc()
}

// RecordCacheFallback counts one degraded, stale-cache load.
func (m *Manager) RecordCacheFallback(kind string) {
	m.cacheFallbacks.WithLabelValues(kind).Inc()
}

// ObserveLoadDuration records the duration of one load with its outcome.
func (m *Manager) ObserveLoadDuration(kind, outcome string, d time.Duration) {
	m.loadDuration.WithLabelValues(kind, outcome).Observe(d.Seconds())
}

// Package-level helpers delegating to the global manager.

func RecordPageFetched(kind string, records int) { globalManager.RecordPageFetched(kind, records) }
func RecordFetchFailure(kind string)             { globalManager.RecordFetchFailure(kind) }
func RecordCacheHit(kind string)                 { globalManager.RecordCacheHit(kind) }
func RecordCacheMiss(kind string)                { globalManager.RecordCacheMiss(kind) }
func RecordCacheFallback(kind string)            { globalManager.RecordCacheFallback(kind) }

func ObserveLoadDuration(kind, outcome string, d time.Duration) {
	globalManager.ObserveLoadDuration(kind, outcome, d)
}

// Registry returns the gatherer backing the global manager, for callers that
// want to expose or inspect the collected metrics.
func Registry() *prometheus.Registry { return customRegistry }
