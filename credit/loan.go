package credit

import (
	"errors"
	"math"
)

// ErrUnknownProduct is returned when no loan product matches the given name.
var ErrUnknownProduct = errors.New("unknown loan product")

// RatePeriod identifies the period a product's nominal rate is quoted in.
type RatePeriod int

const (
	// RateAnnual means the nominal rate converts to weekly as rate/52.
	RateAnnual RatePeriod = iota
	// RateMonthly means the nominal rate converts to weekly as rate/4.
	RateMonthly
)

// rateSpreadCeiling scales the credit-score rate adjustment: the worst
// possible score adds 5 percentage points to the nominal rate.
const rateSpreadCeiling = 0.05

// Underwriting decline reasons.
const (
	DeclineReasonScoreTooLow    = "score_below_minimum"
	DeclineReasonAmountTooLarge = "amount_above_product_cap"
)

// Product describes one loan product's underwriting gates and pricing.
type Product struct {
	Name        string
	MinScore    float64
	MaxAmount   float64
	NominalRate float64
	RatePeriod  RatePeriod
	TermWeeks   int
}

// Loan product names.
const (
	ProductOperatingCredit = "operating_credit"
	ProductEquipmentLoan   = "equipment_loan"
	ProductExpansionLoan   = "expansion_loan"
	ProductEmergencyLoan   = "emergency_loan"
)

var products = []Product{
	{Name: ProductOperatingCredit, MinScore: 550, MaxAmount: 5_000, NominalRate: 0.08, RatePeriod: RateAnnual, TermWeeks: 26},
	{Name: ProductEquipmentLoan, MinScore: 600, MaxAmount: 20_000, NominalRate: 0.01, RatePeriod: RateMonthly, TermWeeks: 52},
	{Name: ProductExpansionLoan, MinScore: 650, MaxAmount: 50_000, NominalRate: 0.07, RatePeriod: RateAnnual, TermWeeks: 104},
	{Name: ProductEmergencyLoan, MinScore: 500, MaxAmount: 2_500, NominalRate: 0.15, RatePeriod: RateAnnual, TermWeeks: 13},
}

// ProductByName looks up a loan product.
func ProductByName(name string) (Product, error) {
	for _, p := range products {
		if p.Name == name {
			return p, nil
		}
	}

	return Product{}, ErrUnknownProduct
}

// Quote is the result of underwriting one application.
type Quote struct {
	Approved      bool
	DeclineReason string
	WeeklyRate    float64
	TermWeeks     int
	WeeklyPayment float64
}

// AdjustedRate applies the credit-score spread to a product's nominal rate.
// Better credit strictly lowers the quoted rate.
func AdjustedRate(nominalRate, score float64) float64 {
	return nominalRate + (MaxScore-score)/MaxScore*rateSpreadCeiling
}

// WeeklyRateFor converts an adjusted nominal rate into a weekly rate
// according to the product's rate period.
func WeeklyRateFor(p Product, adjustedRate float64) float64 {
	if p.RatePeriod == RateMonthly {
		return adjustedRate / 4
	}

	return adjustedRate / 52
}

// WeeklyPayment computes the level amortizing payment
// P * (r(1+r)^n) / ((1+r)^n - 1) for weekly rate r over n weeks.
// A zero rate degenerates to P/n.
func WeeklyPayment(principal, weeklyRate float64, termWeeks int) float64 {
	if termWeeks <= 0 {
		return principal
	}

	if weeklyRate == 0 {
		return principal / float64(termWeeks)
	}

	compound := math.Pow(1+weeklyRate, float64(termWeeks))

	return principal * (weeklyRate * compound) / (compound - 1)
}

// Underwrite applies the product's minimum-score gate and maximum-amount cap,
// then prices the loan off the applicant's score. The caller records the
// credit inquiry for every application, approved or not.
func Underwrite(p Product, score, amount float64) Quote {
	if score < p.MinScore {
		return Quote{Approved: false, DeclineReason: DeclineReasonScoreTooLow}
	}

	if amount > p.MaxAmount {
		return Quote{Approved: false, DeclineReason: DeclineReasonAmountTooLarge}
	}

	weeklyRate := WeeklyRateFor(p, AdjustedRate(p.NominalRate, score))

	return Quote{
		Approved:      true,
		WeeklyRate:    weeklyRate,
		TermWeeks:     p.TermWeeks,
		WeeklyPayment: WeeklyPayment(amount, weeklyRate, p.TermWeeks),
	}
}
