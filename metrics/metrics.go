// Package metrics exports Sheet activity as Prometheus metrics.
//
// Recorder implements sheet.Observer. Register it on any prometheus.Registerer
// and pass it to sheet.New through sheet.WithObserver:
//
//	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	s, _ := sheet.New(100, 100, sheet.WithObserver(rec))
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "sharesheet"
	subsystem = "sheet"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder holds the sheet metric families.
type Recorder struct {
	// operations counts finished operations.
	// Labels: op (sheet.Op* name), status (ok, error)
	operations *prometheus.CounterVec

	// duration measures operation latency including lock waits.
	// Labels: op
	duration *prometheus.HistogramVec

	// partitions tracks the current partition pool length.
	partitions prometheus.Gauge

	// resizes counts partition pool replacements after construction.
	resizes prometheus.Counter
}

// NewRecorder creates the metric families and registers them on reg.
// A nil reg creates unregistered collectors, which is handy in tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Total sheet operations by operation and status",
		}, []string{"op", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Sheet operation latency in seconds, lock waits included",
			Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"op"}),

		partitions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "partitions",
			Help:      "Current number of partition locks",
		}),

		resizes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "partition_resizes_total",
			Help:      "Total partition pool replacements after construction",
		}),
	}
}

// OperationDone records one finished operation.
func (r *Recorder) OperationDone(op string, elapsed time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.operations.WithLabelValues(op, status).Inc()
	r.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// PartitionsResized records the new pool length; the initial sizing (from == 0)
// sets the gauge without counting as a resize.
func (r *Recorder) PartitionsResized(from, to int) {
	r.partitions.Set(float64(to))
	if from > 0 {
		r.resizes.Inc()
	}
}
