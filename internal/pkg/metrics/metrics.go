// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roadside"

// Delivery channels reported by NotificationFailures.
const (
	ChannelBus    = "bus"
	ChannelDevice = "device"
	ChannelPush   = "push"
)

type Metrics struct {
	// Transitions counts committed status changes by from, to and trigger.
	Transitions *prometheus.CounterVec
	// NotificationFailures counts lifecycle deliveries that failed, by channel.
	NotificationFailures *prometheus.CounterVec
	// Escalations counts orders moved by the escalation sweep, by target status.
	Escalations *prometheus.CounterVec
	// SweepRuns counts sweep passes by result (ok or error).
	SweepRuns *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests
// to keep them isolated.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Committed order status transitions.",
		}, []string{"from", "to", "trigger"}),
		NotificationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Lifecycle notifications that could not be delivered.",
		}, []string{"channel"}),
		Escalations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalations_total",
			Help:      "Orders escalated after the driver did not answer in time.",
		}, []string{"to"}),
		SweepRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalation_sweep_runs_total",
			Help:      "Escalation sweep passes.",
		}, []string{"result"}),
	}
}
