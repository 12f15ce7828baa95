package reaction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudsim/tycoon-engine-go/credit"
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
	"github.com/sudsim/tycoon-engine-go/partners"
	"github.com/sudsim/tycoon-engine-go/reaction"
	"github.com/sudsim/tycoon-engine-go/state"
)

// scriptedNegotiator always answers with a fixed outcome.
type scriptedNegotiator struct {
	outcome partners.NegotiationOutcome
}

func (v *scriptedNegotiator) ID() string { return "supply_vendor" }

func (v *scriptedNegotiator) Negotiate(string, string, float64) partners.NegotiationOutcome {
	return v.outcome
}

func Test_NegotiationReaction_RecordsAttemptOutcomeAndMessage(t *testing.T) {
	// arrange
	vendor := &scriptedNegotiator{outcome: partners.NegotiationOutcome{
		Success:    true,
		Message:    "deal: detergent at 90% of list price",
		Multiplier: 0.9,
	}}

	rx := reaction.NewNegotiationReaction(vendor)
	agg := state.NewAggregateState("agent-1")

	trigger := givenEvent(t, "agent-1", 3, events.BuildNegotiationRequested("supply_vendor", "detergent"))

	// act
	emissions, err := rx.React(trigger, agg)

	// assert
	require.NoError(t, err)
	require.Len(t, emissions, 3)

	attempted, ok := emissions[0].Event.(events.NegotiationAttempted)
	require.True(t, ok)
	assert.Equal(t, "detergent", attempted.Item)
	assert.Equal(t, 3, attempted.Tick)

	outcome, ok := emissions[1].Event.(events.VendorNegotiationOutcome)
	require.True(t, ok)
	assert.True(t, outcome.Success)
	assert.InDelta(t, 0.9, outcome.Multiplier, 0.0001)

	message, ok := emissions[2].Event.(events.MessageSent)
	require.True(t, ok)
	assert.Equal(t, "agent-1", message.Recipient)
	assert.NotEmpty(t, message.Content)
}

func Test_CreditReportingReaction_ScoresTheProjectedFile(t *testing.T) {
	// arrange
	rx := reaction.NewCreditReportingReaction()

	agg := state.NewAggregateState("agent-1")
	agg.Credit.Accounts = append(agg.Credit.Accounts, state.CreditAccount{
		LoanID: "loan-1", Product: "operating_credit", Outstanding: 2000, OpenedTick: 1,
	})
	agg.Credit.HistoryImpact = 2.0
	agg.Credit.Inquiries = append(agg.Credit.Inquiries, state.CreditInquiry{Product: "operating_credit", Tick: 1, Approved: true})

	trigger := givenEvent(t, "agent-1", 5, events.BuildLoanPaymentMade("loan-1", 80, 5, 5, 0, credit.StatusOnTime))

	// act
	emissions, err := rx.React(trigger, agg)

	// assert
	require.NoError(t, err)
	require.Len(t, emissions, 1)

	updated, ok := emissions[0].Event.(events.CreditScoreUpdated)
	require.True(t, ok)

	expectedScore, expectedComponents := credit.Score(agg.CreditScoreInput(5))
	assert.InDelta(t, expectedScore, updated.Score, 0.0001)
	assert.InDelta(t, expectedComponents.PaymentHistory, updated.PaymentHistory, 0.0001)
	assert.GreaterOrEqual(t, updated.Score, credit.MinScore)
	assert.LessOrEqual(t, updated.Score, credit.MaxScore)
}

func Test_CreditReportingReaction_DoesNotSubscribeToItsOwnOutput(t *testing.T) {
	// arrange
	rx := reaction.NewCreditReportingReaction()

	// assert
	assert.NotContains(t, rx.EventTypes(), events.CreditScoreUpdatedEventType)
}

func Test_NotificationReaction_LateBillPaymentWarns(t *testing.T) {
	// arrange
	rx := reaction.NewNotificationReaction()
	agg := state.NewAggregateState("agent-1")

	trigger := givenEvent(t, "agent-1", 4, events.BuildBillPaid("bill-1", 330, 4, true))

	// act
	emissions, err := rx.React(trigger, agg)

	// assert
	require.NoError(t, err)
	require.Len(t, emissions, 1)

	message, ok := emissions[0].Event.(events.MessageSent)
	require.True(t, ok)
	assert.Contains(t, message.Content, "bill-1")
}

func Test_NotificationReaction_OnTimeBillPaymentStaysQuiet(t *testing.T) {
	// arrange
	rx := reaction.NewNotificationReaction()
	agg := state.NewAggregateState("agent-1")

	trigger := givenEvent(t, "agent-1", 2, events.BuildBillPaid("bill-1", 300, 2, false))

	// act
	emissions, err := rx.React(trigger, agg)

	// assert
	require.NoError(t, err)
	assert.Empty(t, emissions)
}

func Test_NotificationReaction_DefaultWarns(t *testing.T) {
	// arrange
	rx := reaction.NewNotificationReaction()
	agg := state.NewAggregateState("agent-1")

	trigger := givenEvent(t, "agent-1", 12, events.BuildLoanDefaulted("loan-1", 12))

	// act
	emissions, err := rx.React(trigger, agg)

	// assert
	require.NoError(t, err)
	require.Len(t, emissions, 1)

	message, ok := emissions[0].Event.(events.MessageSent)
	require.True(t, ok)
	assert.Contains(t, message.Content, "loan-1")
}

func givenEvent(t *testing.T, agentID string, tick int, event events.DomainEvent) state.Event {
	t.Helper()

	recorded, err := eventstore.BuildRecordedEventWithEmptyMetadata(event, agentID, tick, time.Unix(1700000000, 0))
	require.NoError(t, err)

	return state.Event{Recorded: recorded, Domain: event}
}
