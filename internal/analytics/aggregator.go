// Package analytics computes the dashboard metrics of the ledger: totals,
// category and calendar breakdowns, the month-over-month delta and the
// spending heatmap. Every function is pure and accumulates with decimals,
// so totals stay exact no matter how many entries are summed.
package analytics

import (
	"sort"
	"time"

	"moneytrail/internal/dateutils"
	"moneytrail/internal/models"

	"github.com/shopspring/decimal"
)

// Totals is the dashboard headline: income, expense and their difference.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// TotalsByType sums the transactions per type. An empty input yields exact
// zeros.
func TotalsByType(transactions []models.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryBreakdown maps each expense category to its total. Categories
// with a zero total are omitted. Orphaned category strings, whose category
// was deleted from the vocabulary, aggregate like any other.
func CategoryBreakdown(transactions []models.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		sum, ok := out[t.Category]
		if !ok {
			sum = decimal.Zero
		}
		out[t.Category] = sum.Add(t.Amount)
	}
	for category, sum := range out {
		if sum.IsZero() {
			delete(out, category)
		}
	}
	return out
}

// WeeklyPattern buckets expense totals by day of week. Index 0 is Sunday,
// index 6 is Saturday, matching time.Weekday.
func WeeklyPattern(transactions []models.Transaction) [7]decimal.Decimal {
	var out [7]decimal.Decimal
	for i := range out {
		out[i] = decimal.Zero
	}
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		date, err := t.DateTime()
		if err != nil {
			continue
		}
		day := int(date.Weekday())
		out[day] = out[day].Add(t.Amount)
	}
	return out
}

// MonthTotals is one bar pair of the monthly trend chart.
type MonthTotals struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyTrend buckets income and expense totals per calendar month,
// sorted ascending by the YYYY-MM key.
func MonthlyTrend(transactions []models.Transaction) []MonthTotals {
	byMonth := make(map[string]*MonthTotals)
	for _, t := range transactions {
		key := t.MonthKey()
		m, ok := byMonth[key]
		if !ok {
			m = &MonthTotals{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = m
		}
		switch t.Type {
		case models.TypeIncome:
			m.Income = m.Income.Add(t.Amount)
		case models.TypeExpense:
			m.Expense = m.Expense.Add(t.Amount)
		}
	}

	out := make([]MonthTotals, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

var hundred = decimal.NewFromInt(100)

// MonthOverMonth compares the expense total of the calendar month holding
// referenceDate against the month before it, as a percentage change. The
// comparison is year-aware: January is measured against December of the
// previous year, not against every other January. When the previous month
// has no expenses the result is exactly zero.
func MonthOverMonth(transactions []models.Transaction, referenceDate time.Time) decimal.Decimal {
	currentKey := dateutils.MonthKey(referenceDate)
	previousKey := dateutils.MonthKey(dateutils.PreviousMonth(referenceDate))

	current := decimal.Zero
	previous := decimal.Zero
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		switch t.MonthKey() {
		case currentKey:
			current = current.Add(t.Amount)
		case previousKey:
			previous = previous.Add(t.Amount)
		}
	}

	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}
