package events

// LoanOriginatedEventType is the event type identifier.
const LoanOriginatedEventType = "LOAN_ORIGINATED"

// LoanOriginated records an approved and disbursed loan.
type LoanOriginated struct {
	LoanID        string
	Product       string
	Principal     float64
	WeeklyRate    float64
	TermWeeks     int
	WeeklyPayment float64
	FirstDueTick  int
}

// BuildLoanOriginated creates a new LoanOriginated event.
func BuildLoanOriginated(
	loanID string,
	product string,
	principal float64,
	weeklyRate float64,
	termWeeks int,
	weeklyPayment float64,
	firstDueTick int,
) LoanOriginated {

	return LoanOriginated{
		LoanID:        loanID,
		Product:       product,
		Principal:     principal,
		WeeklyRate:    weeklyRate,
		TermWeeks:     termWeeks,
		WeeklyPayment: weeklyPayment,
		FirstDueTick:  firstDueTick,
	}
}

// EventType returns the event type identifier.
func (e LoanOriginated) EventType() string {
	return LoanOriginatedEventType
}

// LoanPaymentMadeEventType is the event type identifier.
const LoanPaymentMadeEventType = "LOAN_PAYMENT_MADE"

// LoanPaymentMade records a voluntary loan payment and its lateness tier.
type LoanPaymentMade struct {
	LoanID    string
	Amount    float64
	TickPaid  int
	DueTick   int
	WeeksLate int
	Status    string
}

// BuildLoanPaymentMade creates a new LoanPaymentMade event.
func BuildLoanPaymentMade(loanID string, amount float64, tickPaid, dueTick, weeksLate int, status string) LoanPaymentMade {
	return LoanPaymentMade{
		LoanID:    loanID,
		Amount:    amount,
		TickPaid:  tickPaid,
		DueTick:   dueTick,
		WeeksLate: weeksLate,
		Status:    status,
	}
}

// EventType returns the event type identifier.
func (e LoanPaymentMade) EventType() string {
	return LoanPaymentMadeEventType
}

// LoanPaymentMissedEventType is the event type identifier.
const LoanPaymentMissedEventType = "LOAN_PAYMENT_MISSED"

// LoanPaymentMissed records a payment the scheduler marked as missed.
type LoanPaymentMissed struct {
	LoanID    string
	DueTick   int
	Tick      int
	WeeksLate int
	Status    string
}

// BuildLoanPaymentMissed creates a new LoanPaymentMissed event.
func BuildLoanPaymentMissed(loanID string, dueTick, tick, weeksLate int, status string) LoanPaymentMissed {
	return LoanPaymentMissed{
		LoanID:    loanID,
		DueTick:   dueTick,
		Tick:      tick,
		WeeksLate: weeksLate,
		Status:    status,
	}
}

// EventType returns the event type identifier.
func (e LoanPaymentMissed) EventType() string {
	return LoanPaymentMissedEventType
}

// LoanDefaultedEventType is the event type identifier.
const LoanDefaultedEventType = "LOAN_DEFAULTED"

// LoanDefaulted records a loan crossing into default after 8+ weeks late.
type LoanDefaulted struct {
	LoanID string
	Tick   int
}

// BuildLoanDefaulted creates a new LoanDefaulted event.
func BuildLoanDefaulted(loanID string, tick int) LoanDefaulted {
	return LoanDefaulted{
		LoanID: loanID,
		Tick:   tick,
	}
}

// EventType returns the event type identifier.
func (e LoanDefaulted) EventType() string {
	return LoanDefaultedEventType
}

// CreditInquiryRecordedEventType is the event type identifier.
const CreditInquiryRecordedEventType = "CREDIT_INQUIRY_RECORDED"

// CreditInquiryRecorded records a hard pull made during loan underwriting.
// Every application records one, approved or not.
type CreditInquiryRecorded struct {
	Product  string
	Tick     int
	Approved bool
}

// BuildCreditInquiryRecorded creates a new CreditInquiryRecorded event.
func BuildCreditInquiryRecorded(product string, tick int, approved bool) CreditInquiryRecorded {
	return CreditInquiryRecorded{
		Product:  product,
		Tick:     tick,
		Approved: approved,
	}
}

// EventType returns the event type identifier.
func (e CreditInquiryRecorded) EventType() string {
	return CreditInquiryRecordedEventType
}

// CreditScoreUpdatedEventType is the event type identifier.
const CreditScoreUpdatedEventType = "CREDIT_SCORE_UPDATED"

// CreditScoreUpdated records a recomputed FICO-like score and its components.
type CreditScoreUpdated struct {
	Score          float64
	PaymentHistory float64
	Utilization    float64
	HistoryLength  float64
	CreditMix      float64
	NewCredit      float64
}

// BuildCreditScoreUpdated creates a new CreditScoreUpdated event.
func BuildCreditScoreUpdated(score, paymentHistory, utilization, historyLength, creditMix, newCredit float64) CreditScoreUpdated {
	return CreditScoreUpdated{
		Score:          score,
		PaymentHistory: paymentHistory,
		Utilization:    utilization,
		HistoryLength:  historyLength,
		CreditMix:      creditMix,
		NewCredit:      newCredit,
	}
}

// EventType returns the event type identifier.
func (e CreditScoreUpdated) EventType() string {
	return CreditScoreUpdatedEventType
}
