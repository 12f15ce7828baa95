package command

import (
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// DefaultVendorID is the vendor addressed when a negotiation request names
// none. A single supply vendor serves every agent.
const DefaultVendorID = "supply_vendor"

type requestNegotiationCommand struct {
	VendorID string `json:"vendor_id"`
	Item     string `json:"item"`
}

// RequestNegotiation validates the item against the vendor's catalog and
// records the request. The dice roll itself happens in a reaction: the
// outcome depends on vendor-side goodwill the aggregate does not own.
func RequestNegotiation(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[requestNegotiationCommand](payload)
	if err != nil {
		return invalidPayload(ActionRequestNegotiation, err)
	}

	if cmd.VendorID == "" {
		cmd.VendorID = DefaultVendorID
	}

	if _, err := svc.Vendor.GetPrice(cmd.Item, agg.AgentID); err != nil {
		return events.DomainEvents{events.BuildActionFailed(ActionRequestNegotiation, events.ReasonMissingEntity, map[string]string{
			"vendor_id": cmd.VendorID,
			"item":      cmd.Item,
		})}
	}

	return events.DomainEvents{
		events.BuildNegotiationRequested(cmd.VendorID, cmd.Item),
	}
}
