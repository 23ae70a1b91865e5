// Package filter derives an ordered working subset of transactions from a
// query specification. The input collection is never mutated; a fresh
// slice is always returned.
package filter

import (
	"sort"
	"strings"

	"moneytrail/internal/models"
)

// TypeFilter restricts the result to one transaction type.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeIncome  TypeFilter = "income"
	TypeExpense TypeFilter = "expense"
)

// TimeframeKind selects how the timeframe of a query is interpreted.
type TimeframeKind string

const (
	TimeframeAll   TimeframeKind = "all"
	TimeframeDay   TimeframeKind = "day"
	TimeframeMonth TimeframeKind = "month"
)

// Timeframe restricts the result to a single day (ISO date) or a single
// calendar month (YYYY-MM).
type Timeframe struct {
	Kind  TimeframeKind
	Day   string
	Month string
}

// SortMode selects the ordering of the filtered sequence.
type SortMode string

const (
	// SortByIDDesc is the default ordering: descending by id, which the
	// monotonic id counter makes a recency proxy.
	SortByIDDesc SortMode = "id"
	// SortByAmount orders by amount, largest first. Ties keep their
	// relative order.
	SortByAmount SortMode = "amount"
	// SortByDate orders by date, newest first. Ties keep their relative
	// order.
	SortByDate SortMode = "date"
)

// Query is the specification of a filtered view over the ledger. The zero
// value of each field means "no restriction".
type Query struct {
	Type      TypeFilter
	Category  string
	Timeframe Timeframe
	Search    string
	Sort      SortMode
}

// Apply evaluates the query against the given transactions. The predicate
// is conjunctive: every populated restriction must hold. The search term
// matches case-insensitively against the category or the description.
func Apply(transactions []models.Transaction, q Query) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	search := strings.ToLower(q.Search)

	for _, t := range transactions {
		if !matchesType(t, q.Type) {
			continue
		}
		if !matchesCategory(t, q.Category) {
			continue
		}
		if !matchesTimeframe(t, q.Timeframe) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Category), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}

	sortTransactions(out, q.Sort)
	return out
}

func matchesType(t models.Transaction, f TypeFilter) bool {
	switch f {
	case TypeIncome:
		return t.IsIncome()
	case TypeExpense:
		return t.IsExpense()
	default:
		return true
	}
}

func matchesCategory(t models.Transaction, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return strings.EqualFold(t.Category, category)
}

func matchesTimeframe(t models.Transaction, tf Timeframe) bool {
	switch tf.Kind {
	case TimeframeDay:
		return t.Date == tf.Day
	case TimeframeMonth:
		return t.MonthKey() == tf.Month
	default:
		return true
	}
}

func sortTransactions(out []models.Transaction, mode SortMode) {
	switch mode {
	case SortByAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date > out[j].Date
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	}
}
