package command

import (
	"strings"

	"github.com/sudsim/tycoon-engine-go/credit"
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// QuarterWeeks is the length of one tax quarter in ticks.
const QuarterWeeks = 13

type payBillCommand struct {
	BillID string `json:"bill_id"`
}

// PayBill settles an open bill, penalty included. Paying a bill that does not
// exist or is already settled is an idempotent no-op: the requested end state
// already holds, so no event is recorded.
func PayBill(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[payBillCommand](payload)
	if err != nil {
		return invalidPayload(ActionPayBill, err)
	}

	bill := agg.BillByID(cmd.BillID)
	if bill == nil || bill.Paid {
		return nil
	}

	// the penalty projection already folded any surcharge into Amount
	amount := bill.Amount
	if agg.Balance() < amount {
		return events.DomainEvents{events.BuildActionFailed(ActionPayBill, events.ReasonInsufficientFunds, map[string]string{
			"bill_id":   bill.BillID,
			"required":  formatMoney(amount),
			"available": formatMoney(agg.Balance()),
		})}
	}

	return events.DomainEvents{
		events.BuildFundsTransferred(-amount, events.CategoryBill, "bill: "+bill.Description, bill.BillID),
		events.BuildBillPaid(bill.BillID, amount, tick, tick > bill.DueTick),
	}
}

// FileTaxes assesses the trailing quarter and pays whatever is owed. The tax
// payment is not gated on the balance; an agent that cannot cover it simply
// goes negative, the same way real estimated taxes work.
func FileTaxes(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	quarter := tick / QuarterWeeks

	for _, filing := range agg.TaxFilings {
		if filing.Quarter == quarter {
			return nil
		}
	}

	windowStart := tick - QuarterWeeks

	var profit, donations float64
	for _, t := range agg.Ledger.Transactions {
		if t.Tick <= windowStart || t.Tick > tick {
			continue
		}

		if t.Category == events.CategoryTax {
			continue
		}

		profit += t.Amount

		if isDonation(t) {
			donations += -t.Amount
		}
	}

	var ecoValue float64
	for _, m := range agg.Machines {
		if m.Eco {
			ecoValue += m.Price
		}
	}

	assessment := credit.Assess(credit.TaxInput{
		QuarterlyNetProfit: profit,
		EcoMachineValue:    ecoValue,
		StaffCount:         len(agg.Staff),
		DonationTotal:      donations,
		TaxRate:            credit.DefaultTaxRate,
	})

	result := events.DomainEvents{
		events.BuildTaxFiled(quarter, assessment.TaxableIncome, assessment.GrossTax, assessment.Credits, assessment.TaxOwed),
	}

	if assessment.TaxOwed > 0 {
		result = append(result,
			events.BuildFundsTransferred(-assessment.TaxOwed, events.CategoryTax, "quarterly tax filing", ""),
		)
	}

	return result
}

func isDonation(t state.Transaction) bool {
	if t.Amount >= 0 {
		return false
	}

	return t.Category == events.CategoryDonation ||
		strings.Contains(strings.ToLower(t.Description), "donation")
}
