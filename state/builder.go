package state

import (
	"github.com/sudsim/tycoon-engine-go/eventstore"
)

// Rebuild reconstructs an aggregate from nothing by folding an ordered event
// log through the projection registry. Events belonging to other agents are
// skipped, so a global tape can be replayed directly.
//
// This fold is the formal definition of correctness for the whole pipeline:
// given the same ordered event log, Rebuild always yields structurally
// identical aggregate state. Incremental application during live play is the
// same fold, applied one event at a time.
func Rebuild(registry *Registry, agentID string, log eventstore.RecordedEvents) (*AggregateState, error) {
	agg := NewAggregateState(agentID)

	for _, recorded := range log {
		if recorded.AgentID != agentID {
			continue
		}

		if err := registry.Apply(agg, recorded); err != nil {
			return nil, err
		}
	}

	return agg, nil
}
