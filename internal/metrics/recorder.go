package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "numcalc"

// Status label values for numcalc_operations_total.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Recorder collects per-operation metrics. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	inputSizes prometheus.Histogram
}

// NewRecorder creates a Recorder backed by its own registry, so that
// several recorders can coexist in tests.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of operations executed, by operation and status.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall-clock duration of operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"operation"}),
		inputSizes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "input_values",
			Help:      "Number of values supplied per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
		}),
	}
	r.registry.MustRegister(r.operations, r.durations, r.inputSizes)
	return r
}

// ObserveOperation records one execution of op.
func (r *Recorder) ObserveOperation(op string, d time.Duration, err error) {
	if r == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	r.operations.WithLabelValues(op, status).Inc()
	r.durations.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveInput records the size of a run's input.
func (r *Recorder) ObserveInput(n int) {
	if r == nil {
		return
	}
	r.inputSizes.Observe(float64(n))
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format,
// suitable for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
