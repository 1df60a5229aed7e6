package docstore

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer records the outcome of container operations.
type Observer interface {
	Record(operation string, duration time.Duration, err error)
}

// PrometheusObserver exports container operation latency and failures.
type PrometheusObserver struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewPrometheusObserver registers docstore metrics with reg.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &PrometheusObserver{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "docstore",
			Name:      "operation_duration_seconds",
			Help:      "Latency of document container operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docstore",
			Name:      "operation_errors_total",
			Help:      "Count of failed document container operations.",
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{o.duration, o.errors} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register docstore metric: %w", err)
		}
	}

	return o, nil
}

func (o *PrometheusObserver) Record(operation string, duration time.Duration, err error) {
	o.duration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		o.errors.WithLabelValues(operation).Inc()
	}
}

type nopObserver struct{}

func (nopObserver) Record(string, time.Duration, error) {}
