package eventstore

import (
	"fmt"
)

// Subscriber is a callback invoked synchronously for every published event
// of a subscribed type.
type Subscriber func(RecordedEvent) error

// Bus is the in-process publish/subscribe router, keyed by event-type tag.
//
// Publish invokes every subscriber registered for the event's type in
// subscription order. A subscriber that returns an error or panics is caught
// and logged; the remaining subscribers for that event still run. Fault
// isolation between subscribers is a hard requirement: one broken reaction
// must never block unrelated subsystems.
type Bus struct {
	subscribers      map[string][]Subscriber
	wildcard         []Subscriber
	logger           Logger
	metricsCollector MetricsCollector
}

// BusOption defines a functional option for configuring a Bus.
type BusOption func(*Bus) error

// WithBusLogger sets the logger for the Bus.
func WithBusLogger(logger Logger) BusOption {
	return func(b *Bus) error {
		b.logger = logger
		return nil
	}
}

// WithBusMetrics sets the metrics collector for the Bus.
func WithBusMetrics(collector MetricsCollector) BusOption {
	return func(b *Bus) error {
		b.metricsCollector = collector
		return nil
	}
}

// NewBus creates a Bus with optional configuration.
func NewBus(opts ...BusOption) (*Bus, error) {
	bus := &Bus{
		subscribers: make(map[string][]Subscriber),
	}

	for _, opt := range opts {
		if err := opt(bus); err != nil {
			return nil, err
		}
	}

	return bus, nil
}

// Subscribe registers a handler for one event type.
// Handlers for the same type run in subscription order.
func (b *Bus) Subscribe(eventType string, handler Subscriber) error {
	if eventType == "" {
		return ErrEmptyEventTypeSupplied
	}

	if handler == nil {
		return ErrNilSubscriberSupplied
	}

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)

	return nil
}

// SubscribeAll registers a handler for every event type.
// Wildcard handlers run after the type-specific handlers of each event.
func (b *Bus) SubscribeAll(handler Subscriber) error {
	if handler == nil {
		return ErrNilSubscriberSupplied
	}

	b.wildcard = append(b.wildcard, handler)

	return nil
}

// Publish dispatches a recorded event to its subscribers synchronously.
// By the time a subscriber observes the event it is already appended to the
// log, so subscribers may safely query the store.
func (b *Bus) Publish(recorded RecordedEvent) {
	for _, handler := range b.subscribers[recorded.EventType] {
		b.dispatch(handler, recorded)
	}

	for _, handler := range b.wildcard {
		b.dispatch(handler, recorded)
	}
}

// dispatch runs a single subscriber with panic containment.
func (b *Bus) dispatch(handler Subscriber, recorded RecordedEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logSubscriberFailure(recorded, fmt.Errorf("subscriber panic: %v", r))
		}
	}()

	if err := handler(recorded); err != nil {
		b.logSubscriberFailure(recorded, err)
	}
}

func (b *Bus) logSubscriberFailure(recorded RecordedEvent, err error) {
	if b.metricsCollector != nil {
		b.metricsCollector.IncrementCounter(
			"eventbus_subscriber_failures_total",
			map[string]string{"event_type": recorded.EventType},
		)
	}

	if b.logger != nil {
		b.logger.Error(
			"event subscriber failed",
			"event_type", recorded.EventType,
			"event_id", recorded.EventID,
			"agent_id", recorded.AgentID,
			"error", err.Error(),
		)
	}
}
