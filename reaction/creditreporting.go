package reaction

import (
	"github.com/sudsim/tycoon-engine-go/credit"
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// CreditReportingReaction recomputes the agent's credit score whenever the
// credit file changes. The recomputed score is recorded as its own event so
// rebuilds reproduce the exact score history without rerunning the bureau.
//
// CREDIT_SCORE_UPDATED itself is deliberately not a trigger; the reporting
// chain terminates after one recomputation.
type CreditReportingReaction struct{}

// NewCreditReportingReaction creates the reaction.
func NewCreditReportingReaction() *CreditReportingReaction {
	return &CreditReportingReaction{}
}

// Name identifies the reaction in logs.
func (r *CreditReportingReaction) Name() string {
	return "credit_reporting"
}

// EventTypes lists the credit-file mutations that trigger a rescore.
func (r *CreditReportingReaction) EventTypes() []string {
	return []string{
		events.LoanOriginatedEventType,
		events.LoanPaymentMadeEventType,
		events.LoanPaymentMissedEventType,
		events.LoanDefaultedEventType,
		events.CreditInquiryRecordedEventType,
	}
}

// React scores the already-projected credit file and records the result.
func (r *CreditReportingReaction) React(event state.Event, agg *state.AggregateState) ([]Emission, error) {
	tick := event.Recorded.Tick

	score, components := credit.Score(agg.CreditScoreInput(tick))

	return []Emission{
		{
			AgentID: string(event.Recorded.AgentID),
			Tick:    tick,
			Event: events.BuildCreditScoreUpdated(
				score,
				components.PaymentHistory,
				components.Utilization,
				components.HistoryLength,
				components.CreditMix,
				components.NewCredit,
			),
		},
	}, nil
}

var _ Reaction = (*CreditReportingReaction)(nil)
