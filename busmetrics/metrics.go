// Package busmetrics exposes the event flow as Prometheus metrics. The
// observer attaches through the public bus subscription contract, the same
// way any other read side does, so the core never learns about Prometheus.
package busmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
)

// Metrics holds the Prometheus instruments fed from the event bus.
type Metrics struct {
	EventsRecorded *prometheus.CounterVec
	ActionFailures *prometheus.CounterVec
	TickHighWater  prometheus.Gauge
}

// New creates the instruments on the given registerer. Pass
// prometheus.DefaultRegisterer for the default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EventsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tycoon_events_recorded_total",
			Help: "Total events appended to the log, by event type",
		}, []string{"event_type"}),
		ActionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tycoon_action_failures_total",
			Help: "Total ACTION_FAILED events recorded, by agent",
		}, []string{"agent_id"}),
		TickHighWater: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tycoon_tick_high_water",
			Help: "Highest tick observed on any recorded event",
		}),
	}
}

// Subscriber returns the bus observer feeding the instruments. Register it
// with SubscribeAll so every event type is counted.
func (m *Metrics) Subscriber() eventstore.Subscriber {
	var highWater int

	return func(recorded eventstore.RecordedEvent) error {
		m.EventsRecorded.WithLabelValues(recorded.EventType).Inc()

		if recorded.EventType == events.ActionFailedEventType {
			m.ActionFailures.WithLabelValues(string(recorded.AgentID)).Inc()
		}

		if recorded.Tick > highWater {
			highWater = recorded.Tick
			m.TickHighWater.Set(float64(highWater))
		}

		return nil
	}
}
