// Package metrics provides Prometheus metrics for the whisper matching
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the whisper service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Engagement metrics - lifecycle commands
	connects            prometheus.Counter
	dismisses           prometheus.Counter
	messagesAppended    prometheus.Counter
	transitionsRejected prometheus.Counter

	// Badge gauges - mirror the aggregation service's recounts
	unreadMessages      prometheus.Gauge
	unreadNotifications prometheus.Gauge
	bookmarkedSessions  prometheus.Gauge
	matchesByStatus     *prometheus.GaugeVec

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "whisper",
		subsystem:        "matching",
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

	m.connects = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "connects_total",
		Help:      "Total number of matches connected into trial partnerships",
	})

	m.dismisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dismisses_total",
		Help:      "Total number of matches dismissed",
	})

	m.messagesAppended = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "messages_appended_total",
		Help:      "Total number of chat messages appended to partnership threads",
	})

	m.transitionsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "transitions_rejected_total",
		Help:      "Total number of lifecycle moves rejected by the state machine",
	})

	m.unreadMessages = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unread_messages",
		Help:      "Current total unread messages across all partnerships",
	})

	m.unreadNotifications = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unread_notifications",
		Help:      "Current count of unread notifications",
	})

	m.bookmarkedSessions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bookmarked_sessions",
		Help:      "Current count of bookmarked schedule sessions",
	})

	m.matchesByStatus = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_by_status",
		Help:      "Current number of whisper matches per lifecycle status",
	}, []string{"status"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

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
		Help:      "Current goroutine count",
	})
}

// GetRegistry returns the registry backing the global manager, for
// serving /healthz metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Global helpers mirroring the Manager metrics.

// RecordConnect counts a successful connect command.
func RecordConnect() { globalManager.connects.Inc() }

// RecordDismiss counts a successful dismiss command.
func RecordDismiss() { globalManager.dismisses.Inc() }

// RecordMessageAppended counts a message appended to a thread.
func RecordMessageAppended() { globalManager.messagesAppended.Inc() }

// RecordTransitionRejected counts a lifecycle move the FSM refused.
func RecordTransitionRejected() { globalManager.transitionsRejected.Inc() }

// UpdateUnreadMessages sets the unread-messages badge gauge.
func UpdateUnreadMessages(n int) { globalManager.unreadMessages.Set(float64(n)) }

// UpdateUnreadNotifications sets the unread-notifications badge gauge.
func UpdateUnreadNotifications(n int) { globalManager.unreadNotifications.Set(float64(n)) }

// UpdateBookmarkedSessions sets the bookmarked-sessions badge gauge.
func UpdateBookmarkedSessions(n int) { globalManager.bookmarkedSessions.Set(float64(n)) }

// UpdateMatchStatus sets the per-status match gauge.
func UpdateMatchStatus(status string, n int) {
	globalManager.matchesByStatus.WithLabelValues(status).Set(float64(n))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}
