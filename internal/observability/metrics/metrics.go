// Package metrics exposes Prometheus instruments for the vendor scoring
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MetricSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendorpulse",
		Subsystem: "scoring",
		Name:      "metric_submissions_total",
		Help:      "Number of vendor metric submissions accepted.",
	})

	SnapshotsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendorpulse",
		Subsystem: "scoring",
		Name:      "score_snapshots_total",
		Help:      "Number of score snapshots appended to vendor histories.",
	})

	RecomputeSweeps = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendorpulse",
		Subsystem: "scoring",
		Name:      "recompute_sweeps_total",
		Help:      "Number of population-wide recompute sweeps started.",
	})

	RecomputeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendorpulse",
		Subsystem: "scoring",
		Name:      "recompute_failures_total",
		Help:      "Number of per-vendor recompute failures during sweeps.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendorpulse",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vendorpulse",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
