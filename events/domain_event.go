package events

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents a business fact that has occurred in the simulation.
//
// Every variant is an immutable struct with fixed, typed fields and a Build
// factory. Dispatch happens via exhaustive type switches on the concrete
// variant, never via dynamic attribute probing.
type DomainEvent interface {
	// EventType returns the string identifier for this event type.
	EventType() string
}
