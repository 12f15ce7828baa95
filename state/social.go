package state

// Social score component weights. They sum to 1.0.
const (
	weightCommunityStanding    = 0.30
	weightCustomerSatisfaction = 0.25
	weightEmployeeWelfare      = 0.20
	weightEnvironmentalImpact  = 0.15
	weightBusinessEthics       = 0.10
)

// SocialScore holds the five weighted 0-100 components of an agent's
// standing. The total is a pure function of the components and is never
// stored independently.
type SocialScore struct {
	CommunityStanding    float64
	CustomerSatisfaction float64
	EmployeeWelfare      float64
	EnvironmentalImpact  float64
	BusinessEthics       float64
}

// NewSocialScore returns the neutral starting score.
func NewSocialScore() SocialScore {
	return SocialScore{
		CommunityStanding:    50,
		CustomerSatisfaction: 50,
		EmployeeWelfare:      50,
		EnvironmentalImpact:  50,
		BusinessEthics:       50,
	}
}

// Total returns the weighted 0-100 total.
func (s SocialScore) Total() float64 {
	return s.CommunityStanding*weightCommunityStanding +
		s.CustomerSatisfaction*weightCustomerSatisfaction +
		s.EmployeeWelfare*weightEmployeeWelfare +
		s.EnvironmentalImpact*weightEnvironmentalImpact +
		s.BusinessEthics*weightBusinessEthics
}

func clampComponent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return v
}
