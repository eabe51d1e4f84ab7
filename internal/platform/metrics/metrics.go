// Package metrics declares the Prometheus collectors of the voucher desk.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voucher_desk"

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests counts handled requests by route and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests handled.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks request latency by route.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// ─── Vouchers ───────────────────────────────────────────────────────────────

// Submissions counts voucher submissions by type and outcome
// (posted, invalid, in_flight, rejected).
var Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "voucher",
	Name:      "submissions_total",
	Help:      "Total voucher submissions by outcome.",
}, []string{"voucher_type", "outcome"})

// ValidationFailures counts failed keys by voucher type and field.
var ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "voucher",
	Name:      "validation_failures_total",
	Help:      "Total validation failures by field.",
}, []string{"voucher_type", "field"})

// ─── ERP backend ────────────────────────────────────────────────────────────

// BackendDuration tracks ERP backend call latency.
var BackendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "erp",
	Name:      "request_duration_seconds",
	Help:      "ERP backend call latency in seconds.",
	Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
}, []string{"method", "endpoint", "status"})

// ReferenceCache counts reference data lookups by result (hit, miss).
var ReferenceCache = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "reference",
	Name:      "cache_lookups_total",
	Help:      "Reference data cache lookups by result.",
}, []string{"result"})
