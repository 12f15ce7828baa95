package state

import (
	"github.com/sudsim/tycoon-engine-go/credit"
	"github.com/sudsim/tycoon-engine-go/events"
)

// DefaultRegistry builds the projection registry with every game projection
// registered. The registry is the only code path permitted to write
// aggregate fields.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(events.FundsTransferredEventType, projectFundsTransferred)
	r.Register(events.BillIssuedEventType, projectBillIssued)
	r.Register(events.BillPaidEventType, projectBillPaid)
	r.Register(events.BillPenaltyAppliedEventType, projectBillPenaltyApplied)
	r.Register(events.TaxFiledEventType, projectTaxFiled)
	r.Register(events.SuppliesStockedEventType, projectSuppliesStocked)
	r.Register(events.MachinePurchasedEventType, projectMachinePurchased)
	r.Register(events.MachinesMaintainedEventType, projectMachinesMaintained)
	r.Register(events.StaffHiredEventType, projectStaffHired)
	r.Register(events.StaffFiredEventType, projectStaffFired)
	r.Register(events.MarketingCampaignLaunchedEventType, projectMarketingCampaignLaunched)
	r.Register(events.DilemmaResolvedEventType, projectDilemmaResolved)
	r.Register(events.LoanOriginatedEventType, projectLoanOriginated)
	r.Register(events.LoanPaymentMadeEventType, projectLoanPaymentMade)
	r.Register(events.LoanPaymentMissedEventType, projectLoanPaymentMissed)
	r.Register(events.LoanDefaultedEventType, projectLoanDefaulted)
	r.Register(events.CreditInquiryRecordedEventType, projectCreditInquiryRecorded)
	r.Register(events.CreditScoreUpdatedEventType, projectCreditScoreUpdated)
	r.Register(events.VendorNegotiationOutcomeEventType, projectVendorNegotiationOutcome)
	r.Register(events.MessageSentEventType, projectMessageSent)
	r.Register(events.ActionFailedEventType, projectActionFailed)

	return r
}

func projectFundsTransferred(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.FundsTransferred)
	if !ok {
		return
	}

	agg.Ledger.Append(Transaction{
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Tick:        event.Recorded.Tick,
		RelatedID:   e.RelatedID,
	})
}

func projectBillIssued(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.BillIssued)
	if !ok {
		return
	}

	agg.Bills = append(agg.Bills, Bill{
		BillID:      e.BillID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		DueTick:     e.DueTick,
	})
}

func projectBillPaid(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.BillPaid)
	if !ok {
		return
	}

	bill := agg.BillByID(e.BillID)
	if bill == nil {
		return
	}

	bill.Paid = true
	bill.PaidTick = e.TickPaid
}

func projectBillPenaltyApplied(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.BillPenaltyApplied)
	if !ok {
		return
	}

	bill := agg.BillByID(e.BillID)
	if bill == nil {
		return
	}

	bill.Penalty = true
	bill.PenaltyAmount += e.Penalty
	bill.Amount += e.Penalty
}

func projectTaxFiled(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.TaxFiled)
	if !ok {
		return
	}

	agg.TaxFilings = append(agg.TaxFilings, TaxFiling{
		Quarter:       e.Quarter,
		TaxableIncome: e.TaxableIncome,
		Credits:       e.Credits,
		TaxOwed:       e.TaxOwed,
		Tick:          event.Recorded.Tick,
	})
}

func projectSuppliesStocked(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.SuppliesStocked)
	if !ok {
		return
	}

	agg.Supplies[e.Item] += e.Quantity
}

func projectMachinePurchased(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.MachinePurchased)
	if !ok {
		return
	}

	agg.Machines = append(agg.Machines, Machine{
		MachineID:     e.MachineID,
		Model:         e.Model,
		Price:         e.Price,
		Eco:           e.Eco,
		PurchasedTick: event.Recorded.Tick,
	})
}

func projectMachinesMaintained(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.MachinesMaintained)
	if !ok {
		return
	}

	agg.Supplies[events.ItemMachineParts] -= e.PartsUsed
	if agg.Supplies[events.ItemMachineParts] < 0 {
		agg.Supplies[events.ItemMachineParts] = 0
	}

	for i := range agg.Machines {
		agg.Machines[i].LastMaintainedTick = event.Recorded.Tick
	}
}

func projectStaffHired(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.StaffHired)
	if !ok {
		return
	}

	agg.Staff = append(agg.Staff, StaffMember{
		StaffID:   e.StaffID,
		Role:      e.Role,
		Wage:      e.Wage,
		HiredTick: event.Recorded.Tick,
	})
}

func projectStaffFired(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.StaffFired)
	if !ok {
		return
	}

	for i := range agg.Staff {
		if agg.Staff[i].StaffID == e.StaffID {
			agg.Staff = append(agg.Staff[:i], agg.Staff[i+1:]...)
			return
		}
	}
}

func projectMarketingCampaignLaunched(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.MarketingCampaignLaunched)
	if !ok {
		return
	}

	agg.Campaigns = append(agg.Campaigns, Campaign{
		Channel: e.Channel,
		Cost:    e.Cost,
		Boost:   e.Boost,
		Tick:    event.Recorded.Tick,
	})

	agg.Social.CommunityStanding = clampComponent(agg.Social.CommunityStanding + e.Boost)
}

func projectDilemmaResolved(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.DilemmaResolved)
	if !ok {
		return
	}

	if e.MoneyEffect != 0 {
		agg.Ledger.Append(Transaction{
			Amount:      e.MoneyEffect,
			Category:    events.CategoryExpense,
			Description: "dilemma: " + e.Choice,
			Tick:        event.Recorded.Tick,
			RelatedID:   e.DilemmaID,
		})
	}

	agg.Social.CommunityStanding = clampComponent(agg.Social.CommunityStanding + e.ReputationEffect)
}

func projectLoanOriginated(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.LoanOriginated)
	if !ok {
		return
	}

	agg.Credit.Accounts = append(agg.Credit.Accounts, CreditAccount{
		LoanID:        e.LoanID,
		Product:       e.Product,
		Principal:     e.Principal,
		WeeklyRate:    e.WeeklyRate,
		TermWeeks:     e.TermWeeks,
		WeeklyPayment: e.WeeklyPayment,
		Outstanding:   e.Principal,
		OpenedTick:    event.Recorded.Tick,
		NextDueTick:   e.FirstDueTick,
	})
}

func projectLoanPaymentMade(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.LoanPaymentMade)
	if !ok {
		return
	}

	impact := credit.PaymentImpact(e.Status, true)

	agg.Credit.Payments = append(agg.Credit.Payments, PaymentRecord{
		LoanID:    e.LoanID,
		Tick:      e.TickPaid,
		DueTick:   e.DueTick,
		WeeksLate: e.WeeksLate,
		Status:    e.Status,
		Voluntary: true,
		Impact:    impact,
	})
	agg.Credit.HistoryImpact += impact

	account := agg.Credit.AccountByID(e.LoanID)
	if account == nil {
		return
	}

	account.Outstanding -= e.Amount
	if account.Outstanding < 0 {
		account.Outstanding = 0
	}
	account.PaymentsMade++
	account.NextDueTick = e.DueTick + 1
}

func projectLoanPaymentMissed(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.LoanPaymentMissed)
	if !ok {
		return
	}

	impact := credit.PaymentImpact(e.Status, false)

	agg.Credit.Payments = append(agg.Credit.Payments, PaymentRecord{
		LoanID:    e.LoanID,
		Tick:      e.Tick,
		DueTick:   e.DueTick,
		WeeksLate: e.WeeksLate,
		Status:    e.Status,
		Voluntary: false,
		Impact:    impact,
	})
	agg.Credit.HistoryImpact += impact

	account := agg.Credit.AccountByID(e.LoanID)
	if account == nil {
		return
	}

	account.NextDueTick = e.DueTick + 1
}

func projectLoanDefaulted(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.LoanDefaulted)
	if !ok {
		return
	}

	agg.Credit.HistoryImpact += credit.DefaultHistoryPenalty

	account := agg.Credit.AccountByID(e.LoanID)
	if account == nil {
		return
	}

	account.Defaulted = true
}

func projectCreditInquiryRecorded(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.CreditInquiryRecorded)
	if !ok {
		return
	}

	agg.Credit.Inquiries = append(agg.Credit.Inquiries, CreditInquiry{
		Product:  e.Product,
		Tick:     e.Tick,
		Approved: e.Approved,
	})
}

func projectCreditScoreUpdated(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.CreditScoreUpdated)
	if !ok {
		return
	}

	agg.Credit.Score = e.Score
	agg.Credit.Components = ScoreSnapshot{
		PaymentHistory: e.PaymentHistory,
		Utilization:    e.Utilization,
		HistoryLength:  e.HistoryLength,
		CreditMix:      e.CreditMix,
		NewCredit:      e.NewCredit,
	}
}

func projectVendorNegotiationOutcome(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.VendorNegotiationOutcome)
	if !ok {
		return
	}

	if e.Success {
		agg.VendorDeals[e.Item] = e.Multiplier
	}
}

func projectMessageSent(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.MessageSent)
	if !ok {
		return
	}

	agg.Inbox = append(agg.Inbox, Message{
		Recipient: e.Recipient,
		Content:   e.Content,
		Tick:      e.Tick,
	})
}

func projectActionFailed(agg *AggregateState, event Event) {
	e, ok := event.Domain.(events.ActionFailed)
	if !ok {
		return
	}

	agg.Failures = append(agg.Failures, FailureRecord{
		Action: e.Action,
		Reason: e.Reason,
		Tick:   event.Recorded.Tick,
	})
}
