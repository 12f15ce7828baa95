package credit

// Component weights of the FICO-like score. They sum to 1.0.
const (
	WeightPaymentHistory = 0.35
	WeightUtilization    = 0.30
	WeightHistoryLength  = 0.15
	WeightCreditMix      = 0.10
	WeightNewCredit      = 0.10
)

// Score range after the linear mapping from the 0-100 weighted sum.
const (
	MinScore = 300.0
	MaxScore = 850.0
)

// paymentHistoryBaseline is the neutral payment-history component for an
// agent with no settled payments yet.
const paymentHistoryBaseline = 75.0

// inquiryPenalty is the flat new-credit penalty per recorded inquiry,
// applied regardless of approval outcome.
const inquiryPenalty = 3.0

// ScoreComponents are the five 0-100 inputs of the weighted score.
type ScoreComponents struct {
	PaymentHistory float64
	Utilization    float64
	HistoryLength  float64
	CreditMix      float64
	NewCredit      float64
}

// Weighted returns the 0-100 weighted sum of the components.
func (c ScoreComponents) Weighted() float64 {
	return c.PaymentHistory*WeightPaymentHistory +
		c.Utilization*WeightUtilization +
		c.HistoryLength*WeightHistoryLength +
		c.CreditMix*WeightCreditMix +
		c.NewCredit*WeightNewCredit
}

// FicoScore maps the weighted component sum linearly into the 300-850 range.
func FicoScore(c ScoreComponents) float64 {
	score := MinScore + (c.Weighted()/100.0)*(MaxScore-MinScore)

	return clamp(score, MinScore, MaxScore)
}

// ScoreInput is the raw credit file summary a caller projects out of
// aggregate state. The score is a pure function of this input.
type ScoreInput struct {
	// PaymentHistoryImpact is the cumulative impact of all settled payments,
	// including default penalties.
	PaymentHistoryImpact float64
	// OutstandingBalance is the total balance across open accounts.
	OutstandingBalance float64
	// CreditLimit is the agent's total revolving limit.
	CreditLimit float64
	// OldestAccountWeeks is the age in weeks of the oldest account, 0 when
	// the agent has no accounts.
	OldestAccountWeeks int
	// DistinctProducts is the number of distinct loan products ever held.
	DistinctProducts int
	// Inquiries is the number of recorded credit inquiries.
	Inquiries int
}

// Score computes the FICO-like score and its components from a credit file
// summary.
func Score(in ScoreInput) (float64, ScoreComponents) {
	components := ScoreComponents{
		PaymentHistory: PaymentHistoryComponent(in.PaymentHistoryImpact),
		Utilization:    UtilizationComponent(in.OutstandingBalance, in.CreditLimit),
		HistoryLength:  HistoryLengthComponent(in.OldestAccountWeeks),
		CreditMix:      CreditMixComponent(in.DistinctProducts),
		NewCredit:      NewCreditComponent(in.Inquiries),
	}

	return FicoScore(components), components
}

// PaymentHistoryComponent converts the cumulative payment impact into a
// 0-100 component, starting from a neutral baseline.
func PaymentHistoryComponent(cumulativeImpact float64) float64 {
	return clamp(paymentHistoryBaseline+cumulativeImpact, 0, 100)
}

// UtilizationComponent tiers the balance/limit ratio.
func UtilizationComponent(balance, limit float64) float64 {
	if limit <= 0 || balance <= 0 {
		return 100
	}

	ratio := balance / limit

	switch {
	case ratio <= 0.10:
		return 100
	case ratio <= 0.30:
		return 80
	case ratio <= 0.50:
		return 60
	case ratio <= 0.75:
		return 40
	default:
		return 20
	}
}

// HistoryLengthComponent grows with the age of the oldest account on three
// linear ramps (steep in the first 12 weeks, flatter afterwards), capped at
// 90.
func HistoryLengthComponent(oldestAccountWeeks int) float64 {
	weeks := float64(oldestAccountWeeks)
	if weeks <= 0 {
		return 0
	}

	var component float64
	switch {
	case weeks <= 12:
		component = weeks * (40.0 / 12.0)
	case weeks <= 24:
		component = 40 + (weeks-12)*(30.0/12.0)
	default:
		component = 70 + (weeks-24)*0.5
	}

	return clamp(component, 0, 90)
}

// CreditMixComponent scores the variety of loan products ever held.
func CreditMixComponent(distinctProducts int) float64 {
	switch {
	case distinctProducts <= 0:
		return 50
	case distinctProducts == 1:
		return 70
	case distinctProducts == 2:
		return 85
	default:
		return 100
	}
}

// NewCreditComponent applies the flat per-inquiry penalty.
func NewCreditComponent(inquiries int) float64 {
	return clamp(100-inquiryPenalty*float64(inquiries), 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
