// Package observability provides Prometheus instrumentation for the store.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "spacescope"

// Metrics holds the counters and gauges updated by the state store and the
// ISS ticker.
type Metrics struct {
	Actions        *prometheus.CounterVec // labels: action
	IgnoredActions *prometheus.CounterVec // labels: action
	ISSTicks       prometheus.Counter
	Subscribers    prometheus.Gauge
	Notifications  prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_actions_total",
			Help:      "Store actions applied, by action name.",
		}, []string{"action"}),
		IgnoredActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_actions_ignored_total",
			Help:      "Store actions dropped as no-ops (unknown id or invalid value), by action name.",
		}, []string{"action"}),
		ISSTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iss_ticks_total",
			Help:      "Simulated ISS position updates.",
		}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_subscribers",
			Help:      "Current number of store subscribers.",
		}),
		Notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_notifications_total",
			Help:      "Subscriber callbacks delivered.",
		}),
	}
}

// NewMetrics creates the metrics and registers them with reg. A nil reg
// uses the default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := newMetrics()
	reg.MustRegister(
		m.Actions,
		m.IgnoredActions,
		m.ISSTicks,
		m.Subscribers,
		m.Notifications,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build as
// many stores as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// Applied records a state-changing action.
func (m *Metrics) Applied(action string) {
	if m == nil {
		return
	}
	m.Actions.WithLabelValues(action).Inc()
}

// Ignored records an action that was dropped as a no-op.
func (m *Metrics) Ignored(action string) {
	if m == nil {
		return
	}
	m.IgnoredActions.WithLabelValues(action).Inc()
}

// Tick records one simulated ISS update.
func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.ISSTicks.Inc()
}

// SetSubscribers reports the current subscriber count.
func (m *Metrics) SetSubscribers(n int) {
	if m == nil {
		return
	}
	m.Subscribers.Set(float64(n))
}

// Notified records n delivered subscriber callbacks.
func (m *Metrics) Notified(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Notifications.Add(float64(n))
}
