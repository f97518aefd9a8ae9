// Package metrics provides Prometheus metrics for the Apex training tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Business metrics - turn logging
	turnsUpserted prometheus.Counter
	turnsRemoved  prometheus.Counter
	rosterSize    prometheus.Gauge
	savedVideos   prometheus.Gauge

	// Store metrics
	storeOpLatency *prometheus.HistogramVec
	storeErrors    *prometheus.CounterVec

	// AI proxy metrics
	aiRequests        *prometheus.CounterVec
	aiLatency         *prometheus.HistogramVec
	aiErrors          *prometheus.CounterVec
	aiPayloadTooLarge prometheus.Counter
	replayHits        prometheus.Counter
	replayMisses      prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "apex",
		subsystem:        "tracker",
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

	m.turnsUpserted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "turns_upserted_total",
		Help:      "Total number of turn-count upserts written to the log",
	})

	m.turnsRemoved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "turns_removed_total",
		Help:      "Total number of log entries removed by a zero-count upsert",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Current number of athletes in the roster",
	})

	m.savedVideos = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "saved_videos",
		Help:      "Current number of saved analyzed videos held in memory",
	})

	m.storeOpLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_op_latency_milliseconds",
			Help:      "Key-value store operation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"op"},
	)

	m.storeErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_errors_total",
			Help:      "Total number of key-value store errors by operation",
		},
		[]string{"op"},
	)

	m.aiRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ai_requests_total",
			Help:      "Total number of upstream AI calls by kind",
		},
		[]string{"kind"},
	)

	m.aiLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ai_latency_milliseconds",
			Help:      "Upstream AI call latency in milliseconds by kind",
			Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		},
		[]string{"kind"},
	)

	m.aiErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ai_errors_total",
			Help:      "Total number of failed upstream AI calls by kind",
		},
		[]string{"kind"},
	)

	m.aiPayloadTooLarge = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ai_payload_too_large_total",
		Help:      "Total number of media submissions rejected for size",
	})

	m.replayHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "replay_cache_hits_total",
		Help:      "Total number of analysis requests served from the replay cache",
	})

	m.replayMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "replay_cache_misses_total",
		Help:      "Total number of analysis requests that went upstream",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry returns the registry metrics are exposed from.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level recording helpers backed by the global manager.

func RecordTurnUpserted() { globalManager.turnsUpserted.Inc() }
func RecordTurnRemoved()  { globalManager.turnsRemoved.Inc() }

func UpdateRosterSize(n int)      { globalManager.rosterSize.Set(float64(n)) }
func UpdateSavedVideoCount(n int) { globalManager.savedVideos.Set(float64(n)) }

func ObserveStoreOp(op string, ms float64) {
	globalManager.storeOpLatency.WithLabelValues(op).Observe(ms)
}

func RecordStoreError(op string) {
	globalManager.storeErrors.WithLabelValues(op).Inc()
}

func RecordAIRequest(kind string) { globalManager.aiRequests.WithLabelValues(kind).Inc() }
func RecordAIError(kind string)   { globalManager.aiErrors.WithLabelValues(kind).Inc() }

func ObserveAILatency(kind string, ms float64) {
	globalManager.aiLatency.WithLabelValues(kind).Observe(ms)
}

func RecordPayloadTooLarge() { globalManager.aiPayloadTooLarge.Inc() }

func RecordReplayHit()  { globalManager.replayHits.Inc() }
func RecordReplayMiss() { globalManager.replayMisses.Inc() }

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}
