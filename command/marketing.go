package command

import (
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// marketingBoostDivisor converts campaign spend into reputation boost:
// every $50 spent buys one point of community standing.
const marketingBoostDivisor = 50.0

type launchMarketingCommand struct {
	Channel string  `json:"channel"`
	Cost    float64 `json:"cost"`
}

// LaunchMarketing spends on a campaign and records the reputation boost the
// spend bought. The boost lands on the social score by projection.
func LaunchMarketing(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[launchMarketingCommand](payload)
	if err != nil {
		return invalidPayload(ActionLaunchMarketing, err)
	}

	if cmd.Channel == "" || cmd.Cost <= 0 {
		return events.DomainEvents{events.BuildActionFailed(ActionLaunchMarketing, events.ReasonInvalidPayload, map[string]string{
			"channel": cmd.Channel,
			"cost":    formatMoney(cmd.Cost),
		})}
	}

	if agg.Balance() < cmd.Cost {
		return events.DomainEvents{events.BuildActionFailed(ActionLaunchMarketing, events.ReasonInsufficientFunds, map[string]string{
			"required":  formatMoney(cmd.Cost),
			"available": formatMoney(agg.Balance()),
		})}
	}

	boost := cmd.Cost / marketingBoostDivisor

	return events.DomainEvents{
		events.BuildFundsTransferred(-cmd.Cost, events.CategoryMarketing, "campaign: "+cmd.Channel, cmd.Channel),
		events.BuildMarketingCampaignLaunched(cmd.Channel, cmd.Cost, boost),
	}
}
