package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudsim/tycoon-engine-go/credit"
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
	"github.com/sudsim/tycoon-engine-go/state"
)

func Test_Rebuild_IsDeterministic(t *testing.T) {
	// arrange
	log := eventstore.RecordedEvents{
		givenRecorded(t, "agent-1", 0, events.BuildFundsTransferred(1000, events.CategoryRevenue, "seed capital", "")),
		givenRecorded(t, "agent-1", 1, events.BuildFundsTransferred(-100, events.CategoryPayroll, "hiring fee", "staff-1")),
		givenRecorded(t, "agent-1", 1, events.BuildStaffHired("staff-1", "cleaner", 200)),
		givenRecorded(t, "agent-1", 2, events.BuildBillIssued("bill-1", 300, events.CategoryBill, "weekly rent", 4)),
		givenRecorded(t, "agent-1", 3, events.BuildFundsTransferred(-300, events.CategoryBill, "bill: weekly rent", "bill-1")),
		givenRecorded(t, "agent-1", 3, events.BuildBillPaid("bill-1", 300, 3, false)),
		givenRecorded(t, "agent-1", 4, events.BuildDilemmaResolved("d-1", "donate", -50, 3)),
	}

	registry := state.DefaultRegistry()

	// act
	first, err := state.Rebuild(registry, "agent-1", log)
	require.NoError(t, err)

	second, err := state.Rebuild(registry, "agent-1", log)
	require.NoError(t, err)

	// assert
	assert.Equal(t, first, second, "the same log must always fold to identical state")
}

func Test_Rebuild_SkipsOtherAgentsEvents(t *testing.T) {
	// arrange
	log := eventstore.RecordedEvents{
		givenRecorded(t, "agent-1", 1, events.BuildFundsTransferred(1000, events.CategoryRevenue, "seed capital", "")),
		givenRecorded(t, "agent-2", 1, events.BuildFundsTransferred(9999, events.CategoryRevenue, "seed capital", "")),
	}

	// act
	agg, err := state.Rebuild(state.DefaultRegistry(), "agent-1", log)
	require.NoError(t, err)

	// assert
	assert.InDelta(t, 1000, agg.Balance(), 0.0001)
}

func Test_Apply_LedgerBalanceIsAlwaysTheSumOfTransactions(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	log := eventstore.RecordedEvents{
		givenRecorded(t, "agent-1", 0, events.BuildFundsTransferred(1000, events.CategoryRevenue, "seed capital", "")),
		givenRecorded(t, "agent-1", 1, events.BuildFundsTransferred(-250.5, events.CategorySupplies, "supplies: detergent", "detergent")),
		givenRecorded(t, "agent-1", 2, events.BuildFundsTransferred(499.25, events.CategoryRevenue, "weekly customer revenue", "")),
		givenRecorded(t, "agent-1", 3, events.BuildDilemmaResolved("d-1", "cut corners", 120, -10)),
	}

	// act + assert after every apply
	for _, recorded := range log {
		require.NoError(t, registry.Apply(agg, recorded))

		var sum float64
		for _, tx := range agg.Ledger.Transactions {
			sum += tx.Amount
		}

		assert.InDelta(t, sum, agg.Balance(), 0.0001)
	}
}

func Test_Project_StaffHired_AddsExactlyOneStaffMember(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 0, events.BuildFundsTransferred(1000, events.CategoryRevenue, "seed capital", ""))))
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildFundsTransferred(-100, events.CategoryPayroll, "hiring fee: cleaner", "staff-1"))))

	// act
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildStaffHired("staff-1", "cleaner", 200))))

	// assert
	require.Len(t, agg.Staff, 1)
	assert.Equal(t, "cleaner", agg.Staff[0].Role)
	assert.Greater(t, agg.Staff[0].Wage, 0.0)
	assert.InDelta(t, 900, agg.Balance(), 0.0001)
}

func Test_Project_DilemmaResolved_AppliesBothEffects(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 0, events.BuildFundsTransferred(1000, events.CategoryRevenue, "seed capital", ""))))

	// act
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildDilemmaResolved("d-1", "repair honestly", -100, 5))))

	// assert
	assert.InDelta(t, 900, agg.Balance(), 0.0001)
	assert.InDelta(t, 55, agg.Social.CommunityStanding, 0.0001)
}

func Test_Project_DilemmaResolved_ClampsCommunityStanding(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	// act
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildDilemmaResolved("d-1", "scandal", 0, -80))))

	// assert
	assert.InDelta(t, 0, agg.Social.CommunityStanding, 0.0001)
}

func Test_Project_LoanLifecycle(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildLoanOriginated("loan-1", "operating_credit", 2000, 0.002, 26, 80, 2))))

	account := agg.Credit.AccountByID("loan-1")
	require.NotNil(t, account)
	assert.InDelta(t, 2000, account.Outstanding, 0.0001)
	assert.Equal(t, 2, account.NextDueTick)

	// act: one on-time payment
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 2, events.BuildLoanPaymentMade("loan-1", 80, 2, 2, 0, credit.StatusOnTime))))

	// assert
	account = agg.Credit.AccountByID("loan-1")
	assert.InDelta(t, 1920, account.Outstanding, 0.0001)
	assert.Equal(t, 3, account.NextDueTick)
	assert.Equal(t, 1, account.PaymentsMade)
	assert.InDelta(t, 2.0, agg.Credit.HistoryImpact, 0.0001)

	// act: scheduler marks the next one missed
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 5, events.BuildLoanPaymentMissed("loan-1", 3, 5, 2, credit.StatusLate30))))

	// assert
	account = agg.Credit.AccountByID("loan-1")
	assert.Equal(t, 4, account.NextDueTick)
	assert.InDelta(t, 2.0-10.0, agg.Credit.HistoryImpact, 0.0001)

	// act: default crossing
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 15, events.BuildLoanDefaulted("loan-1", 15))))

	// assert
	assert.True(t, agg.Credit.AccountByID("loan-1").Defaulted)
	assert.InDelta(t, 2.0-10.0+credit.DefaultHistoryPenalty, agg.Credit.HistoryImpact, 0.0001)
}

func Test_Project_BillPenalty_GrowsTheObligation(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildBillIssued("bill-1", 300, events.CategoryBill, "weekly rent", 3))))

	// act
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 4, events.BuildBillPenaltyApplied("bill-1", 30))))

	// assert
	bill := agg.BillByID("bill-1")
	require.NotNil(t, bill)
	assert.True(t, bill.Penalty)
	assert.InDelta(t, 330, bill.Amount, 0.0001)
	assert.InDelta(t, 30, bill.PenaltyAmount, 0.0001)
}

func Test_Project_VendorNegotiationOutcome_OnlySuccessStoresTheDeal(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	// act
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildVendorNegotiationOutcome("supply_vendor", "detergent", false, 1.0, "list price stands"))))
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 2, events.BuildVendorNegotiationOutcome("supply_vendor", "softener", true, 0.9, "deal"))))

	// assert
	_, hasDetergent := agg.VendorDeals["detergent"]
	assert.False(t, hasDetergent)
	assert.InDelta(t, 0.9, agg.VendorDeals["softener"], 0.0001)
}

func Test_Apply_UnknownEventType_IsASilentNoOp(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	recorded := givenRecorded(t, "agent-1", 1, events.BuildFundsTransferred(100, events.CategoryRevenue, "x", ""))
	recorded.EventType = "FROM_A_NEWER_VERSION"

	// act
	err := registry.Apply(agg, recorded)

	// assert
	require.NoError(t, err)
	assert.InDelta(t, 0, agg.Balance(), 0.0001)
}

func Test_Clone_IsDetachedFromTheOriginal(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 0, events.BuildFundsTransferred(1000, events.CategoryRevenue, "seed capital", ""))))
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildBillIssued("bill-1", 300, events.CategoryBill, "weekly rent", 3))))
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildSuppliesStocked("detergent", 20, 8))))

	// act
	clone := agg.Clone()

	// assert: structurally identical at the moment of cloning
	assert.Equal(t, agg, clone)

	// act: mutate every cloned collection
	clone.Ledger.Append(state.Transaction{Amount: -9999})
	clone.Bills[0].Paid = true
	clone.Supplies["detergent"] = 0

	// assert: the original never moves
	assert.InDelta(t, 1000, agg.Balance(), 0.0001)
	assert.False(t, agg.Bills[0].Paid)
	assert.Equal(t, 20, agg.SupplyCount("detergent"))
}

func Test_CreditScoreInput_SummarizesTheFile(t *testing.T) {
	// arrange
	registry := state.DefaultRegistry()
	agg := state.NewAggregateState("agent-1")

	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildCreditInquiryRecorded("operating_credit", 1, true))))
	require.NoError(t, registry.Apply(agg, givenRecorded(t, "agent-1", 1, events.BuildLoanOriginated("loan-1", "operating_credit", 2000, 0.002, 26, 80, 2))))

	// act
	input := agg.CreditScoreInput(13)

	// assert
	assert.InDelta(t, 2000, input.OutstandingBalance, 0.0001)
	assert.InDelta(t, 10000, input.CreditLimit, 0.0001)
	assert.Equal(t, 12, input.OldestAccountWeeks)
	assert.Equal(t, 1, input.DistinctProducts)
	assert.Equal(t, 1, input.Inquiries)
}

func givenRecorded(t *testing.T, agentID string, tick int, event events.DomainEvent) eventstore.RecordedEvent {
	t.Helper()

	recorded, err := eventstore.BuildRecordedEventWithEmptyMetadata(event, agentID, tick, time.Unix(1700000000, 0))
	require.NoError(t, err)

	return recorded
}
