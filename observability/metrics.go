package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics recorded by instrumented views.
type Metrics struct {
	OperationsTotal  *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
	OperationSeconds *prometheus.HistogramVec
}

// NewMetrics registers the optics metrics with reg. A nil reg uses the
// default registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "optics_operations_total",
				Help:      "Total number of optics operations by view",
			},
			[]string{"operation", "view", "status"},
		),
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "optics_errors_total",
				Help:      "Total number of failed optics operations by error code",
			},
			[]string{"operation", "view", "code"},
		),
		OperationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "optics_operation_seconds",
				Help:      "Optics operation latency in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"operation", "view"},
		),
	}
}
