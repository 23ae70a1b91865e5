package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneytrail/internal/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: 1, Type: models.TypeIncome, Amount: decimal.NewFromInt(20000), Date: "2025-05-01", Category: "Salary"},
		{ID: 2, Type: models.TypeExpense, Amount: decimal.NewFromInt(500), Date: "2025-05-10", Category: "Food"},
		{ID: 3, Type: models.TypeExpense, Amount: decimal.NewFromInt(1200), Date: "2025-06-02", Category: "Rent"},
		// 2025-06-08 is a Sunday.
		{ID: 4, Type: models.TypeExpense, Amount: decimal.NewFromInt(300), Date: "2025-06-08", Category: "Food"},
	}
}

func TestGenerator_Build(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	r := NewGenerator(nil).Build(sampleTransactions(), ref, 0)

	assert.Equal(t, "2025-06-15", r.GeneratedAt)
	assert.Equal(t, "20000", r.Totals.Income.String())
	assert.Equal(t, "2000", r.Totals.Expense.String())
	assert.Equal(t, "18000", r.Totals.Balance.String())

	require.Len(t, r.ByCategory, 2)
	assert.Equal(t, "800", r.ByCategory["Food"].String())
	assert.Equal(t, "1200", r.ByCategory["Rent"].String())

	require.Len(t, r.MonthlyTrend, 2)
	assert.Equal(t, "2025-05", r.MonthlyTrend[0].Month)
	assert.Equal(t, "2025-06", r.MonthlyTrend[1].Month)

	require.Len(t, r.WeeklyPattern, 7)
	assert.Equal(t, "300", r.WeeklyPattern[0].String()) // Sunday

	// June's 1500 against May's 500 is a 200% increase.
	assert.Equal(t, "200", r.MonthOverMonth.String())

	assert.Empty(t, r.Heatmap)
}

func TestGenerator_Build_HeatmapWindow(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	r := NewGenerator(nil).Build(sampleTransactions(), ref, 30)

	require.Len(t, r.Heatmap, 31)
	assert.Equal(t, "2025-05-16", r.Heatmap[0].Date)
	assert.Equal(t, "2025-06-15", r.Heatmap[30].Date)
}

func TestGenerator_Build_EmptyLedger(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	r := NewGenerator(nil).Build(nil, ref, 0)

	assert.True(t, r.Totals.Balance.IsZero())
	assert.Empty(t, r.ByCategory)
	assert.Empty(t, r.MonthlyTrend)
	assert.True(t, r.MonthOverMonth.IsZero())
}

func TestReport_JSON(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	data, err := NewGenerator(nil).Build(sampleTransactions(), ref, 0).JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2025-06-15", decoded["generated_at"])
	assert.Contains(t, decoded, "totals")
	assert.Contains(t, decoded, "weekly_pattern")
	assert.NotContains(t, decoded, "heatmap")
}

func TestReport_Text(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	text := NewGenerator(nil).Build(sampleTransactions(), ref, 0).Text()

	assert.Contains(t, text, "Trail Summary: 2025-06-15")
	assert.Contains(t, text, "Income:  20000")
	assert.Contains(t, text, "Balance: 18000")
	assert.Contains(t, text, "Month over month: 200.0%")
	assert.Contains(t, text, "Food")
	assert.Contains(t, text, "2025-05  income 20000  expense 500")
	assert.Contains(t, text, "Sun 300")
}
