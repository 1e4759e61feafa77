package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics groups the collectors of one Server. Each Server owns its registry
// so several servers (and tests) never collide on registration.
type metrics struct {
	registry *prometheus.Registry

	// analyses counts completed analyses. Labels: class (tightest class reached).
	analyses *prometheus.CounterVec

	// rejected counts requests refused before analysis. Labels: reason.
	rejected *prometheus.CounterVec

	// duration measures analysis latency. Latency is cubic in n, so n is
	// observed separately in elements.
	duration prometheus.Histogram

	// elements observes the element count of accepted inputs.
	elements prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &metrics{
		registry: reg,
		analyses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cayley",
			Subsystem: "analysis",
			Name:      "total",
			Help:      "Completed analyses by tightest class reached",
		}, []string{"class"}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cayley",
			Subsystem: "analysis",
			Name:      "rejected_total",
			Help:      "Requests rejected before analysis",
		}, []string{"reason"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cayley",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Analysis latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		elements: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cayley",
			Subsystem: "analysis",
			Name:      "elements",
			Help:      "Element count of analyzed structures",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}
