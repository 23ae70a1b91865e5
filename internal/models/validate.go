package models

import (
	"strings"
	"time"

	"moneytrail/internal/ledgererror"
)

// Validate checks the invariants every ledger entry must satisfy before it
// reaches the store: positive amount, valid ISO date, known type and a
// category when money is going out. It returns the first violation found.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return &ledgererror.ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if !t.Amount.IsPositive() {
		return &ledgererror.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return &ledgererror.ValidationError{Field: "date", Reason: "must be a valid YYYY-MM-DD date"}
	}
	if t.Type == TypeExpense && strings.TrimSpace(t.Category) == "" {
		return &ledgererror.ValidationError{Field: "category", Reason: "required for an expense"}
	}
	return nil
}
