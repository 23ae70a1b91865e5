package analytics

import (
	"time"

	"moneytrail/internal/dateutils"
	"moneytrail/internal/models"

	"github.com/shopspring/decimal"
)

// HeatmapEntry is one calendar day of the spending heatmap.
type HeatmapEntry struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Level  int             `json:"level"`
}

// Fixed intensity thresholds of the heatmap levels.
var (
	levelTwoThreshold   = decimal.NewFromInt(1000)
	levelThreeThreshold = decimal.NewFromInt(5000)
)

// SpendingHeatmap returns one entry for every calendar day in
// [today-windowDays, today] inclusive, ascending by date. Days without
// expenses are present with a zero amount, so the result always has
// windowDays+1 entries.
func SpendingHeatmap(transactions []models.Transaction, today time.Time, windowDays int) []HeatmapEntry {
	start := dateutils.Truncate(today).AddDate(0, 0, -windowDays)
	end := dateutils.Truncate(today)

	byDay := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		sum, ok := byDay[t.Date]
		if !ok {
			sum = decimal.Zero
		}
		byDay[t.Date] = sum.Add(t.Amount)
	}

	out := make([]HeatmapEntry, 0, windowDays+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := dateutils.ToISODate(day)
		amount, ok := byDay[key]
		if !ok {
			amount = decimal.Zero
		}
		out = append(out, HeatmapEntry{
			Date:   key,
			Amount: amount,
			Level:  heatLevel(amount),
		})
	}
	return out
}

func heatLevel(amount decimal.Decimal) int {
	switch {
	case amount.GreaterThan(levelThreeThreshold):
		return 3
	case amount.GreaterThan(levelTwoThreshold):
		return 2
	case amount.IsPositive():
		return 1
	default:
		return 0
	}
}
