package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments exposed on the metrics port.
type Metrics struct {
	Recommendations    prometheus.Counter
	ValidationFailures prometheus.Counter
	CropFaults         prometheus.Counter
	ScoringDuration    prometheus.Histogram
	TrendRequests      *prometheus.CounterVec // label: outcome={success,unknown_crop,error}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Recommendations,
		m.ValidationFailures,
		m.CropFaults,
		m.ScoringDuration,
		m.TrendRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Recommendations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cropwise",
			Name:      "recommendations_total",
			Help:      "Total recommendation requests served.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cropwise",
			Name:      "validation_failures_total",
			Help:      "Total observation payloads rejected by validation.",
		}),
		CropFaults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cropwise",
			Name:      "crop_profile_faults_total",
			Help:      "Total malformed crop profiles skipped during ranking.",
		}),
		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cropwise",
			Name:      "scoring_duration_seconds",
			Help:      "Duration of one full catalog scoring pass.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		TrendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cropwise",
			Name:      "trend_requests_total",
			Help:      "Market trend requests by outcome.",
		}, []string{"outcome"}),
	}
}
