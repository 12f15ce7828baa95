package state

// Transaction is one immutable ledger line.
type Transaction struct {
	Amount      float64
	Category    string
	Description string
	Tick        int
	RelatedID   string
}

// Ledger is the ordered list of an agent's transactions. The balance is
// always recomputed by summation, never cached and mutated.
type Ledger struct {
	Transactions []Transaction
}

// Balance sums every transaction amount.
func (l *Ledger) Balance() float64 {
	var balance float64
	for _, t := range l.Transactions {
		balance += t.Amount
	}

	return balance
}

// Append adds one transaction to the end of the ledger.
func (l *Ledger) Append(t Transaction) {
	l.Transactions = append(l.Transactions, t)
}

// SumByCategory sums amounts of transactions in one category.
func (l *Ledger) SumByCategory(category string) float64 {
	var sum float64
	for _, t := range l.Transactions {
		if t.Category == category {
			sum += t.Amount
		}
	}

	return sum
}
