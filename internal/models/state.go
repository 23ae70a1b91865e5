package models

// LedgerState is the complete persisted state of a ledger: realized
// transactions, pending reminders and the category vocabulary. This is the
// unit of backup and restore.
type LedgerState struct {
	Transactions []Transaction `json:"transactions"`
	Reminders    []Transaction `json:"reminders"`
	Categories   []string      `json:"categories"`
}

// NewLedgerState returns an empty state with non-nil collections so that
// JSON serialization always emits the three-collection shape.
func NewLedgerState() LedgerState {
	return LedgerState{
		Transactions: []Transaction{},
		Reminders:    []Transaction{},
		Categories:   []string{},
	}
}

// Clone returns a deep copy of the state. Transactions are value types so
// copying the slices is sufficient.
func (s LedgerState) Clone() LedgerState {
	out := LedgerState{
		Transactions: make([]Transaction, len(s.Transactions)),
		Reminders:    make([]Transaction, len(s.Reminders)),
		Categories:   make([]string, len(s.Categories)),
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Reminders, s.Reminders)
	copy(out.Categories, s.Categories)
	return out
}

// MaxID returns the highest transaction id across both collections.
// The store seeds its id counter from this after a restore so that new
// entries never collide with loaded ones.
func (s LedgerState) MaxID() int64 {
	var max int64
	for _, t := range s.Transactions {
		if t.ID > max {
			max = t.ID
		}
	}
	for _, t := range s.Reminders {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
