package state

import (
	"maps"
	"slices"
)

// Bill is a payment obligation with a due tick.
type Bill struct {
	BillID        string
	Amount        float64
	Category      string
	Description   string
	DueTick       int
	Paid          bool
	PaidTick      int
	Penalty       bool
	PenaltyAmount float64
}

// Machine is one washer or dryer on the laundromat floor.
type Machine struct {
	MachineID          string
	Model              string
	Price              float64
	Eco                bool
	PurchasedTick      int
	LastMaintainedTick int
}

// StaffMember is one employee on the payroll.
type StaffMember struct {
	StaffID   string
	Role      string
	Wage      float64
	HiredTick int
}

// Campaign is a durable record of a launched marketing campaign.
type Campaign struct {
	Channel string
	Cost    float64
	Boost   float64
	Tick    int
}

// Message is one delivered notification.
type Message struct {
	Recipient string
	Content   string
	Tick      int
}

// FailureRecord keeps a rejected action auditable in the read model.
type FailureRecord struct {
	Action string
	Reason string
	Tick   int
}

// TaxFiling records one quarterly filing.
type TaxFiling struct {
	Quarter       int
	TaxableIncome float64
	Credits       float64
	TaxOwed       float64
	Tick          int
}

// CreditAccount is one open loan.
type CreditAccount struct {
	LoanID        string
	Product       string
	Principal     float64
	WeeklyRate    float64
	TermWeeks     int
	WeeklyPayment float64
	Outstanding   float64
	OpenedTick    int
	NextDueTick   int
	PaymentsMade  int
	Defaulted     bool
}

// PaymentRecord is one settled (paid or missed) loan payment.
type PaymentRecord struct {
	LoanID    string
	Tick      int
	DueTick   int
	WeeksLate int
	Status    string
	Voluntary bool
	Impact    float64
}

// CreditInquiry is one recorded hard pull.
type CreditInquiry struct {
	Product  string
	Tick     int
	Approved bool
}

// defaultCreditLimit is the revolving limit every agent starts with; the
// utilization component of the score is tiered against it.
const defaultCreditLimit = 10_000.0

// CreditFile is the projected credit state of one agent.
type CreditFile struct {
	Accounts      []CreditAccount
	Payments      []PaymentRecord
	Inquiries     []CreditInquiry
	HistoryImpact float64
	Limit         float64
	Score         float64
	Components    ScoreSnapshot
}

// ScoreSnapshot stores the component breakdown of the last computed score.
type ScoreSnapshot struct {
	PaymentHistory float64
	Utilization    float64
	HistoryLength  float64
	CreditMix      float64
	NewCredit      float64
}

// AccountByID returns the open account with the given loan id, or nil.
func (f *CreditFile) AccountByID(loanID string) *CreditAccount {
	for i := range f.Accounts {
		if f.Accounts[i].LoanID == loanID {
			return &f.Accounts[i]
		}
	}

	return nil
}

// OutstandingBalance sums the outstanding balance across accounts.
func (f *CreditFile) OutstandingBalance() float64 {
	var total float64
	for _, a := range f.Accounts {
		total += a.Outstanding
	}

	return total
}

// AggregateState is the full owned state of one simulated agent. It is
// created empty and gains all state purely through projected events; every
// numeric mutation happens inside a projection handler triggered by a saved
// event, never through ad-hoc setters.
type AggregateState struct {
	AgentID string

	Ledger      Ledger
	Bills       []Bill
	Machines    []Machine
	Staff       []StaffMember
	Supplies    map[string]int
	Campaigns   []Campaign
	Inbox       []Message
	Failures    []FailureRecord
	TaxFilings  []TaxFiling
	VendorDeals map[string]float64
	Credit      CreditFile
	Social      SocialScore

	// CurrentTick tracks the tick of the last applied event.
	CurrentTick int
}

// NewAggregateState creates the empty aggregate for one agent.
func NewAggregateState(agentID string) *AggregateState {
	return &AggregateState{
		AgentID:     agentID,
		Supplies:    make(map[string]int),
		VendorDeals: make(map[string]float64),
		Credit:      CreditFile{Limit: defaultCreditLimit},
		Social:      NewSocialScore(),
	}
}

// Clone returns a deep copy detached from the projection fold. Mutating the
// copy never touches the live aggregate.
func (a *AggregateState) Clone() *AggregateState {
	clone := *a

	clone.Ledger.Transactions = slices.Clone(a.Ledger.Transactions)
	clone.Bills = slices.Clone(a.Bills)
	clone.Machines = slices.Clone(a.Machines)
	clone.Staff = slices.Clone(a.Staff)
	clone.Supplies = maps.Clone(a.Supplies)
	clone.Campaigns = slices.Clone(a.Campaigns)
	clone.Inbox = slices.Clone(a.Inbox)
	clone.Failures = slices.Clone(a.Failures)
	clone.TaxFilings = slices.Clone(a.TaxFilings)
	clone.VendorDeals = maps.Clone(a.VendorDeals)
	clone.Credit.Accounts = slices.Clone(a.Credit.Accounts)
	clone.Credit.Payments = slices.Clone(a.Credit.Payments)
	clone.Credit.Inquiries = slices.Clone(a.Credit.Inquiries)

	return &clone
}

// Balance recomputes the ledger balance.
func (a *AggregateState) Balance() float64 {
	return a.Ledger.Balance()
}

// BillByID returns the bill with the given id, or nil.
func (a *AggregateState) BillByID(billID string) *Bill {
	for i := range a.Bills {
		if a.Bills[i].BillID == billID {
			return &a.Bills[i]
		}
	}

	return nil
}

// StaffByID returns the staff member with the given id, or nil.
func (a *AggregateState) StaffByID(staffID string) *StaffMember {
	for i := range a.Staff {
		if a.Staff[i].StaffID == staffID {
			return &a.Staff[i]
		}
	}

	return nil
}

// SupplyCount returns the stocked quantity for one item.
func (a *AggregateState) SupplyCount(item string) int {
	return a.Supplies[item]
}
