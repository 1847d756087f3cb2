package prometheus

import (
	"storefront-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthErrorsCounter prometheus.Counter

	// Feed engagement metrics
	FeedViewsCounter    prometheus.Counter
	FeedSharesCounter   prometheus.Counter
	LikeTogglesCounter  prometheus.CounterVec
	FeedPublishCounter  prometheus.Counter
	SharePayloadCounter prometheus.CounterVec

	// Store entity operation metrics
	EntityOperationsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	// Feed engagement metrics
	FeedViewsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_feed_views_total",
			Help: "Total number of feed post view bumps",
		},
	)

	FeedSharesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_feed_shares_total",
			Help: "Total number of feed post share bumps",
		},
	)

	LikeTogglesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_like_toggles_total",
			Help: "Total number of like toggles by resulting state",
		},
		[]string{"result"},
	)

	FeedPublishCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_feed_publishes_total",
			Help: "Total number of products published to the sales feed",
		},
	)

	SharePayloadCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_share_payloads_total",
			Help: "Total number of share payloads built by channel",
		},
		[]string{"channel"},
	)

	// Store entity operation metrics
	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)
}
