package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusReporter 基于 Prometheus 计数器的 Reporter
type PrometheusReporter struct {
	fires         *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	faults        *prometheus.CounterVec
	cancellations *prometheus.CounterVec
	actions       *prometheus.CounterVec
}

// NewPrometheusReporter 创建 Reporter 并注册到 reg
func NewPrometheusReporter(reg prometheus.Registerer, namespace string) (*PrometheusReporter, error) {
	r := &PrometheusReporter{
		fires: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "event",
			Name:      "fires_total",
			Help:      "Number of Fire calls that reached at least one listener.",
		}, []string{"source"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "event",
			Name:      "deliveries_total",
			Help:      "Number of (listener, value) pairs enqueued for delivery.",
		}, []string{"source"}),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "event",
			Name:      "listener_faults_total",
			Help:      "Number of listener callbacks that panicked during delivery.",
		}, []string{"source"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cancellation",
			Name:      "cancellations_total",
			Help:      "Number of tokens that transitioned to cancelled.",
		}, []string{"kind"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pump",
			Name:      "actions_total",
			Help:      "Number of pump actions by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{r.fires, r.deliveries, r.faults, r.cancellations, r.actions} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics collector: %w", err)
		}
	}
	return r, nil
}

// LogFire 实现 Reporter
func (r *PrometheusReporter) LogFire(source string, deliveries int) {
	r.fires.WithLabelValues(source).Inc()
	r.deliveries.WithLabelValues(source).Add(float64(deliveries))
}

// LogFault 实现 Reporter
func (r *PrometheusReporter) LogFault(source string) {
	r.faults.WithLabelValues(source).Inc()
}

// LogCancellation 实现 Reporter
func (r *PrometheusReporter) LogCancellation(kind string) {
	r.cancellations.WithLabelValues(kind).Inc()
}

// LogAction 实现 Reporter
func (r *PrometheusReporter) LogAction(outcome string) {
	r.actions.WithLabelValues(outcome).Inc()
}
