package state

import (
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
)

// Event pairs a stored envelope with its decoded domain payload, so
// projection handlers can read both the typed fields and the envelope's
// temporal keys (tick, sequence).
type Event struct {
	Recorded eventstore.RecordedEvent
	Domain   events.DomainEvent
}

// ProjectionFunc folds one event into aggregate state, mutating it in place.
// Handlers rely on the store's guarantee that each event is applied exactly
// once, in save order; they are not written to survive double-application.
type ProjectionFunc func(*AggregateState, Event)

// Registry maps event types to their projection handlers. It is an explicit
// object constructed once at startup and passed by reference, so independent
// engine instances never share hidden global state.
type Registry struct {
	handlers map[string][]ProjectionFunc
}

// NewRegistry creates an empty projection registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string][]ProjectionFunc),
	}
}

// Register adds a projection handler for one event type. More than one
// handler per type is allowed; they run in registration order.
func (r *Registry) Register(eventType string, handler ProjectionFunc) {
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// Apply decodes the recorded event once and invokes every handler registered
// for its type. Unregistered event types are a silent no-op, tolerating
// forward-compatible event types during replay.
func (r *Registry) Apply(agg *AggregateState, recorded eventstore.RecordedEvent) error {
	handlers := r.handlers[recorded.EventType]
	if len(handlers) == 0 {
		return nil
	}

	domainEvent, err := recorded.Domain()
	if err != nil {
		return err
	}

	event := Event{Recorded: recorded, Domain: domainEvent}

	for _, handler := range handlers {
		handler(agg, event)
	}

	if recorded.Tick > agg.CurrentTick {
		agg.CurrentTick = recorded.Tick
	}

	return nil
}
