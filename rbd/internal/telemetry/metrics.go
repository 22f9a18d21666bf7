package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for RBD kernel invocations.
// Callers that want to expose these register them on their own registry
// via Register; the package works fully without a caller ever doing so
// (Observe updates the collectors whether or not they are registered
// anywhere).
type Metrics struct {
	Invocations *prometheus.CounterVec
	Workers     prometheus.Histogram
}

// NewMetrics constructs a fresh Metrics set, unregistered.
func NewMetrics() *Metrics {
	return &Metrics{
		Invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbd",
			Name:      "invocations_total",
			Help:      "Number of RBD block-reliability invocations by block type and SIMD tier.",
		}, []string{"block", "tier"}),
		Workers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rbd",
			Name:      "worker_count",
			Help:      "Number of worker goroutines chosen per invocation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

// Register adds m's collectors to reg. Safe to call at most once per
// registry; duplicate registration errors are returned to the caller
// rather than panicking.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.Invocations); err != nil {
		return err
	}
	return reg.Register(m.Workers)
}

var defaultMetrics = NewMetrics()

// DefaultMetrics returns the package-level Metrics instance used by
// Observe when no caller-supplied Metrics is wired in.
func DefaultMetrics() *Metrics {
	return defaultMetrics
}

// Observe records one invocation's block type, tier, and worker count
// against the default metrics set.
func Observe(block, tier string, numCores int) {
	defaultMetrics.Invocations.WithLabelValues(block, tier).Inc()
	defaultMetrics.Workers.Observe(float64(numCores))
}
