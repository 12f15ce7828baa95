package credit

// SmallBusinessDeduction excludes the first $500 of quarterly net profit
// from taxable income.
const SmallBusinessDeduction = 500.0

// DefaultTaxRate is the flat quarterly tax rate applied to taxable income.
const DefaultTaxRate = 0.20

// Tax credit rates.
const (
	ecoMachineCreditRate = 0.10
	jobCreationCredit    = 100.0
	donationCreditRate   = 0.05
)

// TaxInput summarizes one quarter of activity for assessment.
type TaxInput struct {
	QuarterlyNetProfit float64
	EcoMachineValue    float64
	StaffCount         int
	DonationTotal      float64
	TaxRate            float64
}

// TaxAssessment is the result of a quarterly filing.
type TaxAssessment struct {
	TaxableIncome float64
	GrossTax      float64
	Credits       float64
	TaxOwed       float64
}

// Assess computes the quarterly tax bill. Credits are 10% of the nominal
// value of eco machines, a flat $100 per staff member, and 5% of
// donation-marked ledger outflows; the result is floored at zero.
func Assess(in TaxInput) TaxAssessment {
	rate := in.TaxRate
	if rate == 0 {
		rate = DefaultTaxRate
	}

	taxable := in.QuarterlyNetProfit - SmallBusinessDeduction
	if taxable < 0 {
		taxable = 0
	}

	grossTax := taxable * rate

	credits := ecoMachineCreditRate*in.EcoMachineValue +
		jobCreationCredit*float64(in.StaffCount) +
		donationCreditRate*in.DonationTotal

	owed := grossTax - credits
	if owed < 0 {
		owed = 0
	}

	return TaxAssessment{
		TaxableIncome: taxable,
		GrossTax:      grossTax,
		Credits:       credits,
		TaxOwed:       owed,
	}
}
