// Package partners holds the external collaborators the simulation core
// consumes through narrow contracts: the supply vendor and the notification
// sink. The core never reaches into their state directly; they answer
// queries from command handlers and reactions.
package partners

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownItem is returned when a vendor does not carry the item.
var ErrUnknownItem = errors.New("vendor does not carry item")

// NegotiationOutcome is the vendor's answer to a discount request.
type NegotiationOutcome struct {
	Success    bool
	Message    string
	Multiplier float64
}

// SupplyVendor sells consumables and haggles over prices. Negotiation is
// impure: it consults an injected random source and a per-agent goodwill
// ledger, which is why it runs inside a reaction rather than a command
// handler.
type SupplyVendor struct {
	id       string
	prices   map[string]float64
	goodwill map[string]int
	rng      *rand.Rand
}

// NewSupplyVendor creates a vendor with the default laundromat price list.
// The random source is injected so tests can seed it.
func NewSupplyVendor(id string, rng *rand.Rand) *SupplyVendor {
	return &SupplyVendor{
		id: id,
		prices: map[string]float64{
			"detergent":     8.0,
			"softener":      6.0,
			"machine_parts": 25.0,
		},
		goodwill: make(map[string]int),
		rng:      rng,
	}
}

// ID returns the vendor identifier.
func (v *SupplyVendor) ID() string {
	return v.id
}

// GetPrice returns the current unit price for an item.
func (v *SupplyVendor) GetPrice(item string, _ string) (float64, error) {
	price, ok := v.prices[item]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownItem, item)
	}

	return price, nil
}

// Negotiate attempts to win a price discount. Success probability grows with
// the agent's reputation and accumulated goodwill; failure burns a little
// goodwill.
func (v *SupplyVendor) Negotiate(item string, agentID string, reputation float64) NegotiationOutcome {
	if _, ok := v.prices[item]; !ok {
		return NegotiationOutcome{
			Success:    false,
			Message:    "we don't carry " + item,
			Multiplier: 1.0,
		}
	}

	chance := 0.30 + reputation/100*0.40 + float64(v.goodwill[agentID])*0.05
	if chance > 0.90 {
		chance = 0.90
	}

	if v.rng.Float64() < chance {
		multiplier := 0.85 + v.rng.Float64()*0.10
		v.goodwill[agentID]++

		return NegotiationOutcome{
			Success:    true,
			Message:    fmt.Sprintf("deal: %s at %.0f%% of list price", item, multiplier*100),
			Multiplier: multiplier,
		}
	}

	if v.goodwill[agentID] > 0 {
		v.goodwill[agentID]--
	}

	return NegotiationOutcome{
		Success:    false,
		Message:    "list price stands for " + item,
		Multiplier: 1.0,
	}
}
