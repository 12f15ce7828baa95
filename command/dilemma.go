package command

import (
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

type resolveDilemmaCommand struct {
	DilemmaID string `json:"dilemma_id"`
	Choice    string `json:"choice"`
	Effects   struct {
		Money      float64 `json:"money"`
		Reputation float64 `json:"reputation"`
	} `json:"effects"`
}

// ResolveDilemma records the outcome of an ethical dilemma choice. The single
// event carries both effects; the projection applies the money effect to the
// ledger and the reputation effect to community standing, so resolving one
// dilemma never splits across events that could be observed half-applied.
func ResolveDilemma(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[resolveDilemmaCommand](payload)
	if err != nil {
		return invalidPayload(ActionResolveDilemma, err)
	}

	if cmd.DilemmaID == "" || cmd.Choice == "" {
		return events.DomainEvents{events.BuildActionFailed(ActionResolveDilemma, events.ReasonInvalidPayload, map[string]string{
			"dilemma_id": cmd.DilemmaID,
			"choice":     cmd.Choice,
		})}
	}

	return events.DomainEvents{
		events.BuildDilemmaResolved(cmd.DilemmaID, cmd.Choice, cmd.Effects.Money, cmd.Effects.Reputation),
	}
}
