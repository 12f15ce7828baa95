package credit

// Loan payment statuses. A scheduled payment progresses to exactly one of
// the settled statuses based on how late it was paid (or marked missed).
const (
	StatusScheduled = "SCHEDULED"
	StatusOnTime    = "ON_TIME"
	StatusLate30    = "LATE_30"
	StatusLate60    = "LATE_60"
	StatusLate90    = "LATE_90"
)

// DefaultHistoryPenalty is the additional payment-history impact applied
// when a loan crosses into default (LATE_90).
const DefaultHistoryPenalty = -50.0

// ClassifyLateness maps weeksLate = tickPaid - dueTick onto a settled status.
func ClassifyLateness(weeksLate int) string {
	switch {
	case weeksLate <= 0:
		return StatusOnTime
	case weeksLate <= 4:
		return StatusLate30
	case weeksLate <= 8:
		return StatusLate60
	default:
		return StatusLate90
	}
}

// IsDefault reports whether a settled status triggers the default flag.
func IsDefault(status string) bool {
	return status == StatusLate90
}

// PaymentImpact returns the credit-history impact of a settled payment.
// Voluntary late payments hurt less than payments the scheduler marked
// missed.
func PaymentImpact(status string, voluntary bool) float64 {
	switch status {
	case StatusOnTime:
		return 2.0
	case StatusLate30:
		if voluntary {
			return -5.0
		}
		return -10.0
	case StatusLate60:
		if voluntary {
			return -15.0
		}
		return -25.0
	case StatusLate90:
		if voluntary {
			return -30.0
		}
		return -40.0
	default:
		return 0
	}
}
