package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "flortune_settings_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// SettingReads tracks setting reads by outcome (hit, default, error)
	SettingReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flortune_settings_setting_reads_total",
			Help: "Number of setting reads",
		},
		[]string{"key", "outcome"},
	)

	// SettingWrites tracks setting writes
	SettingWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flortune_settings_setting_writes_total",
			Help: "Number of setting writes",
		},
		[]string{"key", "status"},
	)

	// UpstreamRequests tracks weather/quote upstream calls
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flortune_settings_upstream_requests_total",
			Help: "Number of upstream loader requests",
		},
		[]string{"upstream", "status"},
	)

	// StaleResponsesDropped tracks loader responses discarded by fencing
	StaleResponsesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flortune_settings_stale_responses_dropped_total",
			Help: "Number of loader responses discarded because a newer request superseded them",
		},
		[]string{"upstream"},
	)

	// NotificationsEmitted tracks notifications appended to feeds
	NotificationsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flortune_settings_notifications_emitted_total",
			Help: "Number of notifications appended to user feeds",
		},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flortune_settings_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flortune_settings_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "flortune_settings_active_connections",
			Help: "Number of active connections",
		},
	)

	// WatchSubscribers tracks open settings watch streams
	WatchSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "flortune_settings_watch_subscribers",
			Help: "Number of open settings watch streams",
		},
	)
)
