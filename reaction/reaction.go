// Package reaction holds the follow-up policies that run after an event is
// saved and projected. A reaction observes one recorded event plus the
// already-updated aggregate and answers with zero or more follow-up events;
// it never writes state itself, and whatever it emits goes back through the
// same save-project pipeline as agent actions.
package reaction

import (
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// Emission is one follow-up event a reaction wants recorded, addressed to an
// agent's log at a tick.
type Emission struct {
	AgentID string
	Tick    int
	Event   events.DomainEvent
}

// Reaction is one follow-up policy. EventTypes announces the triggers so the
// dispatcher only calls React for events the policy cares about.
//
// React runs after the triggering event has been projected, so the aggregate
// it reads already includes that event's effects.
type Reaction interface {
	Name() string
	EventTypes() []string
	React(event state.Event, agg *state.AggregateState) ([]Emission, error)
}
