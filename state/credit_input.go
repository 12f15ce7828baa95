package state

import (
	"github.com/sudsim/tycoon-engine-go/credit"
)

// CreditScoreInput summarizes the projected credit file into the raw inputs
// the scoring function needs. Reading the aggregate is allowed anywhere; only
// projections may write it.
func (a *AggregateState) CreditScoreInput(tick int) credit.ScoreInput {
	oldestWeeks := 0
	productSet := make(map[string]struct{})

	for _, account := range a.Credit.Accounts {
		age := tick - account.OpenedTick
		if age > oldestWeeks {
			oldestWeeks = age
		}

		productSet[account.Product] = struct{}{}
	}

	return credit.ScoreInput{
		PaymentHistoryImpact: a.Credit.HistoryImpact,
		OutstandingBalance:   a.Credit.OutstandingBalance(),
		CreditLimit:          a.Credit.Limit,
		OldestAccountWeeks:   oldestWeeks,
		DistinctProducts:     len(productSet),
		Inquiries:            len(a.Credit.Inquiries),
	}
}

// CurrentCreditScore returns the last projected score, or a freshly computed
// one when no CREDIT_SCORE_UPDATED event has been applied yet.
func (a *AggregateState) CurrentCreditScore(tick int) float64 {
	if a.Credit.Score > 0 {
		return a.Credit.Score
	}

	score, _ := credit.Score(a.CreditScoreInput(tick))

	return score
}
