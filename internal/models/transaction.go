// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome marks a transaction that increases the balance.
	TypeIncome TransactionType = "income"
	// TypeExpense marks a transaction that decreases the balance.
	TypeExpense TransactionType = "expense"
)

// IsValid returns true if the type is one of the two known values.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single realized or pending ledger entry.
// Dates are stored as ISO strings (YYYY-MM-DD) so that the JSON backup
// format round-trips byte-for-byte.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Recurring   bool            `json:"recurring,omitempty"`
	// Reminder is true while the entry sits in the reminders collection
	// waiting to be realized.
	Reminder bool `json:"reminder,omitempty"`
	// LastRolled holds the YYYY-MM of the most recent recurring roll-forward
	// for this entry. Empty until the scheduler first clones it.
	LastRolled string `json:"last_rolled,omitempty"`
}

// IsExpense returns true if the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome returns true if the transaction is an income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// DateTime parses the ISO date of the transaction.
func (t *Transaction) DateTime() (time.Time, error) {
	return time.Parse("2006-01-02", t.Date)
}

// MonthKey returns the YYYY-MM bucket the transaction falls into.
func (t *Transaction) MonthKey() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// ParseAmount parses a string amount to decimal.Decimal.
// Currency symbols, spaces and thousands separators are stripped so that
// values pasted from reports still parse.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "₹", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "€", "")
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
