package credit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudsim/tycoon-engine-go/credit"
)

func Test_WeeklyPayment_ZeroRate_DegeneratesToStraightLine(t *testing.T) {
	// act
	payment := credit.WeeklyPayment(1000, 0, 10)

	// assert
	assert.InDelta(t, 100, payment, 0.0001)
}

func Test_WeeklyPayment_StrictlyIncreasingInRate(t *testing.T) {
	// arrange
	rates := []float64{0, 0.001, 0.005, 0.01, 0.02, 0.05}

	previous := -1.0
	for _, rate := range rates {
		// act
		payment := credit.WeeklyPayment(1000, rate, 10)

		// assert
		assert.Greater(t, payment, previous, "payment must grow with the rate")
		previous = payment
	}
}

func Test_AdjustedRate_BetterScoreLowersTheRate(t *testing.T) {
	// act
	worst := credit.AdjustedRate(0.08, credit.MinScore)
	mid := credit.AdjustedRate(0.08, 600)
	best := credit.AdjustedRate(0.08, credit.MaxScore)

	// assert
	assert.Greater(t, worst, mid)
	assert.Greater(t, mid, best)
	assert.InDelta(t, 0.08, best, 0.0001)
}

func Test_Underwrite_DeclinesBelowMinimumScore(t *testing.T) {
	// arrange
	product, err := credit.ProductByName(credit.ProductExpansionLoan)
	require.NoError(t, err)

	// act
	quote := credit.Underwrite(product, 600, 10000)

	// assert
	assert.False(t, quote.Approved)
	assert.Equal(t, credit.DeclineReasonScoreTooLow, quote.DeclineReason)
}

func Test_Underwrite_DeclinesAboveProductCap(t *testing.T) {
	// arrange
	product, err := credit.ProductByName(credit.ProductOperatingCredit)
	require.NoError(t, err)

	// act
	quote := credit.Underwrite(product, 700, 6000)

	// assert
	assert.False(t, quote.Approved)
	assert.Equal(t, credit.DeclineReasonAmountTooLarge, quote.DeclineReason)
}

func Test_Underwrite_ApprovalCarriesPricedQuote(t *testing.T) {
	// arrange
	product, err := credit.ProductByName(credit.ProductOperatingCredit)
	require.NoError(t, err)

	// act
	quote := credit.Underwrite(product, 700, 2000)

	// assert
	assert.True(t, quote.Approved)
	assert.Empty(t, quote.DeclineReason)
	assert.Greater(t, quote.WeeklyRate, 0.0)
	assert.Equal(t, product.TermWeeks, quote.TermWeeks)
	assert.Greater(t, quote.WeeklyPayment, 2000.0/float64(product.TermWeeks))
}

func Test_ProductByName_UnknownProduct(t *testing.T) {
	// act
	_, err := credit.ProductByName("payday_loan")

	// assert
	assert.ErrorIs(t, err, credit.ErrUnknownProduct)
}

func Test_ClassifyLateness_Tiers(t *testing.T) {
	// assert
	assert.Equal(t, credit.StatusOnTime, credit.ClassifyLateness(-1))
	assert.Equal(t, credit.StatusOnTime, credit.ClassifyLateness(0))
	assert.Equal(t, credit.StatusLate30, credit.ClassifyLateness(1))
	assert.Equal(t, credit.StatusLate30, credit.ClassifyLateness(4))
	assert.Equal(t, credit.StatusLate60, credit.ClassifyLateness(5))
	assert.Equal(t, credit.StatusLate60, credit.ClassifyLateness(8))
	assert.Equal(t, credit.StatusLate90, credit.ClassifyLateness(9))
}

func Test_PaymentImpact_VoluntaryHurtsLessThanMissed(t *testing.T) {
	// assert
	assert.InDelta(t, 2.0, credit.PaymentImpact(credit.StatusOnTime, true), 0.0001)
	assert.InDelta(t, -5.0, credit.PaymentImpact(credit.StatusLate30, true), 0.0001)
	assert.InDelta(t, -10.0, credit.PaymentImpact(credit.StatusLate30, false), 0.0001)
	assert.InDelta(t, -15.0, credit.PaymentImpact(credit.StatusLate60, true), 0.0001)
	assert.InDelta(t, -25.0, credit.PaymentImpact(credit.StatusLate60, false), 0.0001)
	assert.InDelta(t, -30.0, credit.PaymentImpact(credit.StatusLate90, true), 0.0001)
	assert.InDelta(t, -40.0, credit.PaymentImpact(credit.StatusLate90, false), 0.0001)
}

func Test_IsDefault_OnlyLate90(t *testing.T) {
	// assert
	assert.True(t, credit.IsDefault(credit.StatusLate90))
	assert.False(t, credit.IsDefault(credit.StatusLate60))
	assert.False(t, credit.IsDefault(credit.StatusOnTime))
}
