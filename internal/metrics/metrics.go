package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Technical metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	ResponseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_time_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	DashboardQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_query_duration_seconds",
		Help:    "Duration of dashboard aggregation transactions",
		Buckets: prometheus.DefBuckets,
	}, []string{"aggregation"})

	// Business metrics
	MatchRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_requests_total",
		Help: "Total number of volunteer match rankings computed",
	})

	MatchScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_scores",
		Help:    "Distribution of volunteer match scores",
		Buckets: []float64{0, 50, 100},
	})

	ApprovalDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "approval_decisions_total",
		Help: "Total number of account approval decisions",
	}, []string{"decision"})

	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "help_requests_created_total",
		Help: "Total number of help requests created",
	})

	RequestStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "help_request_status_changes_total",
		Help: "Total number of help request status transitions",
	}, []string{"status"})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Total number of notification emails by outcome",
	}, []string{"kind", "result"})
)
