package events

// MarketingCampaignLaunchedEventType is the event type identifier.
const MarketingCampaignLaunchedEventType = "MARKETING_CAMPAIGN_LAUNCHED"

// MarketingCampaignLaunched records a paid campaign and the reputation boost
// it bought. The boost is cost divided by a fixed divisor, applied to the
// social score by projection.
type MarketingCampaignLaunched struct {
	Channel string
	Cost    float64
	Boost   float64
}

// BuildMarketingCampaignLaunched creates a new MarketingCampaignLaunched event.
func BuildMarketingCampaignLaunched(channel string, cost float64, boost float64) MarketingCampaignLaunched {
	return MarketingCampaignLaunched{
		Channel: channel,
		Cost:    cost,
		Boost:   boost,
	}
}

// EventType returns the event type identifier.
func (e MarketingCampaignLaunched) EventType() string {
	return MarketingCampaignLaunchedEventType
}
