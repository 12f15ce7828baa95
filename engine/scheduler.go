package engine

import (
	"context"

	"github.com/sudsim/tycoon-engine-go/credit"
	"github.com/sudsim/tycoon-engine-go/events"
)

// Recurring weekly obligations issued by the scheduler.
const (
	WeeklyRent    = 300.0
	WeeklyUtility = 75.0

	// billGraceWeeks is how many ticks after issuance a bill falls due.
	billGraceWeeks = 2

	// latePenaltyRate is the one-time surcharge on an overdue bill.
	latePenaltyRate = 0.10
)

// AdvanceTick runs the scheduler for one agent at one tick: it issues the
// recurring rent and utility bills, applies the one-time penalty to bills
// that went overdue, and marks past-due loan installments missed. Missed
// installments flow through the same reaction cascade as any other event, so
// the credit score reflects them immediately.
func (e *Engine) AdvanceTick(ctx context.Context, agentID string, tick int) (events.DomainEvents, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	agg := e.aggregateFor(agentID)

	var due events.DomainEvents

	due = append(due,
		events.BuildBillIssued(e.services.NewID(), WeeklyRent, events.CategoryBill, "weekly rent", tick+billGraceWeeks),
		events.BuildBillIssued(e.services.NewID(), WeeklyUtility, events.CategoryBill, "weekly utilities", tick+billGraceWeeks),
	)

	for _, bill := range agg.Bills {
		if bill.Paid || bill.Penalty || bill.DueTick >= tick {
			continue
		}

		due = append(due, events.BuildBillPenaltyApplied(bill.BillID, bill.Amount*latePenaltyRate))
	}

	for _, account := range agg.Credit.Accounts {
		if account.Outstanding <= 0 || account.NextDueTick >= tick {
			continue
		}

		weeksLate := tick - account.NextDueTick
		status := credit.ClassifyLateness(weeksLate)

		due = append(due, events.BuildLoanPaymentMissed(account.LoanID, account.NextDueTick, tick, weeksLate, status))

		if credit.IsDefault(status) && !account.Defaulted {
			due = append(due, events.BuildLoanDefaulted(account.LoanID, tick))
		}
	}

	return e.recordAndCascade(ctx, agentID, tick, due)
}
