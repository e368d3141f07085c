package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	QueriesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queries_resolved_total",
			Help: "Customer queries answered, by resolution path",
		},
		[]string{"path"},
	)

	ClassifierRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_requests_total",
			Help: "Classifier calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)
)
