package engine

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
	"github.com/sudsim/tycoon-engine-go/state"
)

// DefaultCascadeLimit bounds how many reaction-emitted events one submission
// may record before the cascade is declared runaway.
const DefaultCascadeLimit = 256

// ErrCascadeLimitExceeded is returned when one submission's reaction cascade
// records more events than the configured limit. Events recorded up to the
// limit stay in the log; the remaining queue is dropped.
var ErrCascadeLimitExceeded = errors.New("reaction cascade exceeded event limit")

// workItem is one recorded event awaiting reaction dispatch, carrying the
// event types of its causal ancestors for cycle detection.
type workItem struct {
	event     state.Event
	metadata  eventstore.EventMetadata
	ancestors []string
}

// recordAndCascade saves and projects the decided events, then drains the
// reaction work queue in FIFO order until no reaction emits anything more.
//
// Cycle guard: an emission whose event type already appears in its own causal
// chain is saved and projected like any other event, but never re-dispatched
// to reactions, and the incident is logged. This keeps self-amplifying
// reaction loops observable in the log instead of livelocking the engine.
func (e *Engine) recordAndCascade(
	ctx context.Context,
	agentID string,
	tick int,
	decided events.DomainEvents,
) (events.DomainEvents, error) {

	rootID := uuid.NewString()

	recorded := make(events.DomainEvents, 0, len(decided))
	queue := make([]workItem, 0, len(decided))

	for _, domainEvent := range decided {
		metadata := eventstore.EventMetadata{
			MessageID:     uuid.NewString(),
			CausationID:   rootID,
			CorrelationID: rootID,
		}

		item, err := e.record(domainEvent, agentID, tick, metadata)
		if err != nil {
			return recorded, err
		}

		recorded = append(recorded, domainEvent)
		queue = append(queue, workItem{event: item, metadata: metadata})
	}

	emitted := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return recorded, err
		}

		item := queue[0]
		queue = queue[1:]

		for _, rx := range e.reactions[item.event.Recorded.EventType] {
			agg := e.aggregateFor(string(item.event.Recorded.AgentID))

			emissions, err := rx.React(item.event, agg)
			if err != nil {
				e.logReactionFailure(ctx, rx.Name(), item.event.Recorded, err)
				continue
			}

			for _, emission := range emissions {
				emitted++
				if emitted > e.cascadeLimit {
					e.logError(ctx,
						"reaction cascade exceeded event limit",
						"limit", e.cascadeLimit,
						"reaction", rx.Name(),
						"trigger_event_type", item.event.Recorded.EventType,
					)

					return recorded, ErrCascadeLimitExceeded
				}

				metadata := eventstore.EventMetadata{
					MessageID:     uuid.NewString(),
					CausationID:   item.metadata.MessageID,
					CorrelationID: item.metadata.CorrelationID,
				}

				next, err := e.record(emission.Event, emission.AgentID, emission.Tick, metadata)
				if err != nil {
					e.logReactionFailure(ctx, rx.Name(), item.event.Recorded, err)
					continue
				}

				recorded = append(recorded, emission.Event)

				chain := append(slices.Clone(item.ancestors), item.event.Recorded.EventType)
				if slices.Contains(chain, emission.Event.EventType()) {
					e.logWarn(ctx,
						"cascade cycle detected, event not re-dispatched",
						"event_type", emission.Event.EventType(),
						"agent_id", emission.AgentID,
						"causal_chain", chain,
					)

					continue
				}

				queue = append(queue, workItem{event: next, metadata: metadata, ancestors: chain})
			}
		}
	}

	return recorded, nil
}

// record saves one domain event to the store (which publishes it) and folds
// it into the owning agent's live aggregate.
func (e *Engine) record(
	domainEvent events.DomainEvent,
	agentID string,
	tick int,
	metadata eventstore.EventMetadata,
) (state.Event, error) {

	envelope, err := eventstore.BuildRecordedEvent(domainEvent, agentID, tick, e.clock(), metadata)
	if err != nil {
		return state.Event{}, err
	}

	stored, err := e.store.Save(envelope)
	if err != nil {
		return state.Event{}, err
	}

	if err := e.projections.Apply(e.aggregateFor(agentID), stored); err != nil {
		return state.Event{}, err
	}

	return state.Event{Recorded: stored, Domain: domainEvent}, nil
}

func (e *Engine) logReactionFailure(ctx context.Context, name string, recorded eventstore.RecordedEvent, err error) {
	if e.metricsCollector != nil {
		e.metricsCollector.IncrementCounter(
			"engine_reaction_failures_total",
			map[string]string{"reaction": name, "event_type": recorded.EventType},
		)
	}

	e.logError(ctx,
		"reaction failed",
		"reaction", name,
		"event_type", recorded.EventType,
		"agent_id", recorded.AgentID,
		"error", err.Error(),
	)
}
