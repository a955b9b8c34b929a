package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ── HTTP request metrics (RED method) ──────────────────────────────────

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chain_guru",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status_code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chain_guru",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "chain_guru",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being processed.",
	})
)

// ── Snapshot refresh metrics ───────────────────────────────────────────

var (
	RefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chain_guru",
		Subsystem: "refresh",
		Name:      "total",
		Help:      "Total number of snapshot refresh attempts.",
	}, []string{"status"})

	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "chain_guru",
		Subsystem: "refresh",
		Name:      "duration_seconds",
		Help:      "Duration of snapshot refresh in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})

	RefreshLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "chain_guru",
		Subsystem: "refresh",
		Name:      "last_success_timestamp",
		Help:      "Unix timestamp of the last successful refresh.",
	})
)

// ── Business metrics ───────────────────────────────────────────────────

var (
	ChainsTracked = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chain_guru",
		Subsystem: "business",
		Name:      "chains_tracked",
		Help:      "Number of chains in the current snapshot by liveness.",
	}, []string{"state"})

	SegmentTPS = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chain_guru",
		Subsystem: "business",
		Name:      "segment_tps",
		Help:      "Aggregate 10-minute TPS per ecosystem type.",
	}, []string{"type"})

	ProjectedRevenue = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "chain_guru",
		Subsystem: "business",
		Name:      "projected_revenue_usd",
		Help:      "Total projected revenue under the current pricing model.",
	})
)
