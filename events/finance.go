package events

// Ledger transaction categories used by FundsTransferred events.
const (
	CategoryRevenue     = "revenue"
	CategoryExpense     = "expense"
	CategoryPayroll     = "payroll"
	CategorySupplies    = "supplies"
	CategoryEquipment   = "equipment"
	CategoryMarketing   = "marketing"
	CategoryBill        = "bill"
	CategoryLoan        = "loan"
	CategoryLoanPayment = "loan_payment"
	CategoryTax         = "tax"
	CategoryDonation    = "donation"
)

// FundsTransferredEventType is the event type identifier.
const FundsTransferredEventType = "FUNDS_TRANSFERRED"

// FundsTransferred records money moving in or out of an agent's ledger.
// Amount is signed: negative for outflows, positive for inflows.
type FundsTransferred struct {
	Amount      float64
	Category    string
	Description string
	RelatedID   string
}

// BuildFundsTransferred creates a new FundsTransferred event.
func BuildFundsTransferred(amount float64, category string, description string, relatedID string) FundsTransferred {
	return FundsTransferred{
		Amount:      amount,
		Category:    category,
		Description: description,
		RelatedID:   relatedID,
	}
}

// EventType returns the event type identifier.
func (e FundsTransferred) EventType() string {
	return FundsTransferredEventType
}

// BillIssuedEventType is the event type identifier.
const BillIssuedEventType = "BILL_ISSUED"

// BillIssued records a new payment obligation with a due tick.
type BillIssued struct {
	BillID      string
	Amount      float64
	Category    string
	Description string
	DueTick     int
}

// BuildBillIssued creates a new BillIssued event.
func BuildBillIssued(billID string, amount float64, category string, description string, dueTick int) BillIssued {
	return BillIssued{
		BillID:      billID,
		Amount:      amount,
		Category:    category,
		Description: description,
		DueTick:     dueTick,
	}
}

// EventType returns the event type identifier.
func (e BillIssued) EventType() string {
	return BillIssuedEventType
}

// BillPaidEventType is the event type identifier.
const BillPaidEventType = "BILL_PAID"

// BillPaid records the settlement of a bill.
type BillPaid struct {
	BillID   string
	Amount   float64
	TickPaid int
	WasLate  bool
}

// BuildBillPaid creates a new BillPaid event.
func BuildBillPaid(billID string, amount float64, tickPaid int, wasLate bool) BillPaid {
	return BillPaid{
		BillID:   billID,
		Amount:   amount,
		TickPaid: tickPaid,
		WasLate:  wasLate,
	}
}

// EventType returns the event type identifier.
func (e BillPaid) EventType() string {
	return BillPaidEventType
}

// BillPenaltyAppliedEventType is the event type identifier.
const BillPenaltyAppliedEventType = "BILL_PENALTY_APPLIED"

// BillPenaltyApplied records a late-payment penalty added to an overdue bill.
type BillPenaltyApplied struct {
	BillID  string
	Penalty float64
}

// BuildBillPenaltyApplied creates a new BillPenaltyApplied event.
func BuildBillPenaltyApplied(billID string, penalty float64) BillPenaltyApplied {
	return BillPenaltyApplied{
		BillID:  billID,
		Penalty: penalty,
	}
}

// EventType returns the event type identifier.
func (e BillPenaltyApplied) EventType() string {
	return BillPenaltyAppliedEventType
}

// TaxFiledEventType is the event type identifier.
const TaxFiledEventType = "TAX_FILED"

// TaxFiled records a quarterly tax filing with the credits that reduced it.
type TaxFiled struct {
	Quarter       int
	TaxableIncome float64
	GrossTax      float64
	Credits       float64
	TaxOwed       float64
}

// BuildTaxFiled creates a new TaxFiled event.
func BuildTaxFiled(quarter int, taxableIncome, grossTax, credits, taxOwed float64) TaxFiled {
	return TaxFiled{
		Quarter:       quarter,
		TaxableIncome: taxableIncome,
		GrossTax:      grossTax,
		Credits:       credits,
		TaxOwed:       taxOwed,
	}
}

// EventType returns the event type identifier.
func (e TaxFiled) EventType() string {
	return TaxFiledEventType
}
