// Package report assembles the spending analytics of a ledger into one
// serializable report object.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"moneytrail/internal/analytics"
	"moneytrail/internal/dateutils"
	"moneytrail/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Report is the full analytics view of a ledger at a point in time.
type Report struct {
	GeneratedAt    string                     `json:"generated_at"`
	Totals         analytics.Totals           `json:"totals"`
	ByCategory     map[string]decimal.Decimal `json:"by_category"`
	MonthlyTrend   []analytics.MonthTotals    `json:"monthly_trend"`
	WeeklyPattern  []decimal.Decimal          `json:"weekly_pattern"`
	MonthOverMonth decimal.Decimal            `json:"month_over_month_percent"`
	Heatmap        []analytics.HeatmapEntry   `json:"heatmap,omitempty"`
}

// Generator builds reports from ledger snapshots.
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a report generator using the given logger.
func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{logger: logger}
}

// Build computes every metric over the given transactions. The heatmap is
// included when windowDays > 0.
func (g *Generator) Build(transactions []models.Transaction, referenceDate time.Time, windowDays int) *Report {
	weekly := analytics.WeeklyPattern(transactions)

	r := &Report{
		GeneratedAt:    dateutils.ToISODate(referenceDate),
		Totals:         analytics.TotalsByType(transactions),
		ByCategory:     analytics.CategoryBreakdown(transactions),
		MonthlyTrend:   analytics.MonthlyTrend(transactions),
		WeeklyPattern:  weekly[:],
		MonthOverMonth: analytics.MonthOverMonth(transactions, referenceDate),
	}
	if windowDays > 0 {
		r.Heatmap = analytics.SpendingHeatmap(transactions, referenceDate, windowDays)
	}

	g.logger.WithFields(logrus.Fields{
		"transactions": len(transactions),
		"categories":   len(r.ByCategory),
		"months":       len(r.MonthlyTrend),
	}).Debug("Report built")
	return r
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Text renders the report as a plain-text dashboard.
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trail Summary: %s\n\n", r.GeneratedAt)
	fmt.Fprintf(&b, "Income:  %s\n", r.Totals.Income)
	fmt.Fprintf(&b, "Expense: %s\n", r.Totals.Expense)
	fmt.Fprintf(&b, "Balance: %s\n", r.Totals.Balance)
	fmt.Fprintf(&b, "Month over month: %s%%\n", r.MonthOverMonth.StringFixed(1))

	if len(r.ByCategory) > 0 {
		b.WriteString("\nSpending by category:\n")
		categories := make([]string, 0, len(r.ByCategory))
		for c := range r.ByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Fprintf(&b, "  %-16s %s\n", c, r.ByCategory[c])
		}
	}

	if len(r.MonthlyTrend) > 0 {
		b.WriteString("\nMonthly trend:\n")
		for _, m := range r.MonthlyTrend {
			fmt.Fprintf(&b, "  %s  income %s  expense %s\n", m.Month, m.Income, m.Expense)
		}
	}

	b.WriteString("\nWeekly spending pattern:\n")
	for i, amount := range r.WeeklyPattern {
		fmt.Fprintf(&b, "  %s %s\n", weekdayNames[i], amount)
	}

	return b.String()
}
