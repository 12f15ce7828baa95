package reaction

import (
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/partners"
	"github.com/sudsim/tycoon-engine-go/state"
)

// Negotiator is the slice of the vendor contract this reaction consumes.
type Negotiator interface {
	ID() string
	Negotiate(item string, agentID string, reputation float64) partners.NegotiationOutcome
}

// NegotiationReaction plays out a requested vendor negotiation. The dice roll
// lives here instead of the command handler because it consults vendor-side
// goodwill and a random source; the request event stays replayable while the
// outcome is recorded as its own fact.
type NegotiationReaction struct {
	vendor Negotiator
}

// NewNegotiationReaction creates the reaction for one vendor.
func NewNegotiationReaction(vendor Negotiator) *NegotiationReaction {
	return &NegotiationReaction{vendor: vendor}
}

// Name identifies the reaction in logs.
func (r *NegotiationReaction) Name() string {
	return "vendor_negotiation"
}

// EventTypes lists the triggering event types.
func (r *NegotiationReaction) EventTypes() []string {
	return []string{events.NegotiationRequestedEventType}
}

// React attempts the negotiation and records the attempt, the vendor's
// answer, and a message to the requesting agent.
func (r *NegotiationReaction) React(event state.Event, agg *state.AggregateState) ([]Emission, error) {
	request, ok := event.Domain.(events.NegotiationRequested)
	if !ok {
		return nil, nil
	}

	agentID := string(event.Recorded.AgentID)
	tick := event.Recorded.Tick

	outcome := r.vendor.Negotiate(request.Item, agentID, agg.Social.CommunityStanding)

	return []Emission{
		{
			AgentID: agentID,
			Tick:    tick,
			Event:   events.BuildNegotiationAttempted(request.VendorID, request.Item, tick),
		},
		{
			AgentID: agentID,
			Tick:    tick,
			Event:   events.BuildVendorNegotiationOutcome(request.VendorID, request.Item, outcome.Success, outcome.Multiplier, outcome.Message),
		},
		{
			AgentID: agentID,
			Tick:    tick,
			Event:   events.BuildMessageSent(agentID, outcome.Message, tick),
		},
	}, nil
}

var _ Reaction = (*NegotiationReaction)(nil)
