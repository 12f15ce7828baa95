package command

import (
	"github.com/sudsim/tycoon-engine-go/credit"
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

type applyLoanCommand struct {
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
}

// ApplyLoan underwrites a loan application against the agent's current credit
// score. Every application records a hard inquiry first, approved or not, so
// repeated shopping shows up in the new-credit score component. An approval
// adds the loan account and disburses the principal.
func ApplyLoan(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[applyLoanCommand](payload)
	if err != nil {
		return invalidPayload(ActionApplyLoan, err)
	}

	product, err := credit.ProductByName(cmd.Product)
	if err != nil {
		return events.DomainEvents{events.BuildActionFailed(ActionApplyLoan, events.ReasonMissingEntity, map[string]string{
			"product": cmd.Product,
		})}
	}

	if cmd.Amount <= 0 {
		return events.DomainEvents{events.BuildActionFailed(ActionApplyLoan, events.ReasonInvalidPayload, map[string]string{
			"amount": formatMoney(cmd.Amount),
		})}
	}

	score := agg.CurrentCreditScore(tick)
	quote := credit.Underwrite(product, score, cmd.Amount)

	inquiry := events.BuildCreditInquiryRecorded(product.Name, tick, quote.Approved)

	if !quote.Approved {
		return events.DomainEvents{
			inquiry,
			events.BuildActionFailed(ActionApplyLoan, events.ReasonUnderwritingDenied, map[string]string{
				"product": product.Name,
				"reason":  quote.DeclineReason,
				"score":   formatMoney(score),
			}),
		}
	}

	loanID := svc.NewID()

	return events.DomainEvents{
		inquiry,
		events.BuildLoanOriginated(loanID, product.Name, cmd.Amount, quote.WeeklyRate, quote.TermWeeks, quote.WeeklyPayment, tick+1),
		events.BuildFundsTransferred(cmd.Amount, events.CategoryLoan, "loan disbursement: "+product.Name, loanID),
	}
}

type makeLoanPaymentCommand struct {
	LoanID string `json:"loan_id"`
}

// MakeLoanPayment pays one scheduled installment on an open loan. The payment
// is classified by how far past the due tick it lands; a LATE_90 payment on a
// loan not yet in default also emits the default crossing.
// Paying a fully amortized loan is an idempotent no-op.
func MakeLoanPayment(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[makeLoanPaymentCommand](payload)
	if err != nil {
		return invalidPayload(ActionMakeLoanPayment, err)
	}

	account := agg.Credit.AccountByID(cmd.LoanID)
	if account == nil {
		return events.DomainEvents{events.BuildActionFailed(ActionMakeLoanPayment, events.ReasonMissingEntity, map[string]string{
			"loan_id": cmd.LoanID,
		})}
	}

	if account.Outstanding <= 0 {
		return nil
	}

	amount := account.WeeklyPayment
	if amount > account.Outstanding {
		amount = account.Outstanding
	}

	if agg.Balance() < amount {
		return events.DomainEvents{events.BuildActionFailed(ActionMakeLoanPayment, events.ReasonInsufficientFunds, map[string]string{
			"loan_id":   account.LoanID,
			"required":  formatMoney(amount),
			"available": formatMoney(agg.Balance()),
		})}
	}

	weeksLate := tick - account.NextDueTick
	status := credit.ClassifyLateness(weeksLate)

	result := events.DomainEvents{
		events.BuildFundsTransferred(-amount, events.CategoryLoanPayment, "loan payment: "+account.Product, account.LoanID),
		events.BuildLoanPaymentMade(account.LoanID, amount, tick, account.NextDueTick, weeksLate, status),
	}

	if credit.IsDefault(status) && !account.Defaulted {
		result = append(result, events.BuildLoanDefaulted(account.LoanID, tick))
	}

	return result
}
