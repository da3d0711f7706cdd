package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the gateway
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Navigation guard metrics
	GuardDecisionsTotal   prometheus.CounterVec
	MembershipFetchTotal  prometheus.CounterVec
	MembershipCacheHits   prometheus.Counter
	MembershipCacheMisses prometheus.Counter

	// Upstream API metrics
	UpstreamRequestsTotal   prometheus.CounterVec
	UpstreamRequestDuration prometheus.HistogramVec

	// Session metrics
	SessionsActive       prometheus.Gauge
	SessionsCreatedTotal prometheus.Counter
	SessionsSweptTotal   prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubport_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clubport_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "clubport_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		GuardDecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubport_guard_decisions_total",
				Help: "Navigation guard verdicts by target route and outcome",
			},
			[]string{"route", "decision"},
		),
		MembershipFetchTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubport_membership_fetch_total",
				Help: "Club membership lookups against the upstream API by result",
			},
			[]string{"result"},
		),
		MembershipCacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubport_membership_cache_hits_total",
				Help: "Membership cache hits",
			},
		),
		MembershipCacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubport_membership_cache_misses_total",
				Help: "Membership cache misses",
			},
		),

		UpstreamRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubport_upstream_requests_total",
				Help: "Requests issued to the upstream portal API by path group and status code",
			},
			[]string{"group", "status_code"},
		),
		UpstreamRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clubport_upstream_request_duration_seconds",
				Help:    "Upstream portal API latency distribution in seconds",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"group"},
		),

		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "clubport_sessions_active",
				Help: "Current number of live browser sessions",
			},
		),
		SessionsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubport_sessions_created_total",
				Help: "Total browser sessions created",
			},
		),
		SessionsSweptTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubport_sessions_swept_total",
				Help: "Total expired sessions removed by the sweeper",
			},
		),
	}
}
