package recurring

import (
	"testing"
	"time"

	"moneytrail/internal/ledger"
	"moneytrail/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithRecurring(t *testing.T) (*ledger.Store, models.Transaction) {
	t.Helper()
	s := ledger.NewStore([]string{"Rent"})
	source, err := s.AddTransaction(models.Transaction{
		Type:      models.TypeExpense,
		Amount:    decimal.NewFromInt(1200),
		Date:      "2025-05-01",
		Category:  "Rent",
		Recurring: true,
	})
	require.NoError(t, err)
	return s, source
}

func TestRoll_FirstOfMonthClonesRecurring(t *testing.T) {
	s, source := newStoreWithRecurring(t)

	rolled, err := NewScheduler(s).Roll(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, rolled)

	entries := s.Transactions()
	require.Len(t, entries, 2)

	clone := entries[1]
	assert.NotEqual(t, source.ID, clone.ID)
	assert.Equal(t, "2025-06-01", clone.Date)
	assert.Equal(t, source.Category, clone.Category)
	assert.True(t, source.Amount.Equal(clone.Amount))
	assert.False(t, clone.Recurring, "the clone does not itself regenerate")

	// The source carries the month stamp.
	assert.Equal(t, "2025-06", entries[0].LastRolled)
}

func TestRoll_NotFirstOfMonthDoesNothing(t *testing.T) {
	s, _ := newStoreWithRecurring(t)

	rolled, err := NewScheduler(s).Roll(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, rolled)
	assert.Len(t, s.Transactions(), 1)
}

func TestRoll_ReinvocationSameDayAddsNothing(t *testing.T) {
	s, _ := newStoreWithRecurring(t)
	scheduler := NewScheduler(s)
	today := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	rolled, err := scheduler.Roll(today)
	require.NoError(t, err)
	require.Equal(t, 1, rolled)

	// The month stamp, unlike a boolean marker, survives re-invocation.
	for i := 0; i < 3; i++ {
		rolled, err = scheduler.Roll(today)
		require.NoError(t, err)
		assert.Equal(t, 0, rolled)
	}
	assert.Len(t, s.Transactions(), 2)
}

func TestRoll_NextMonthRollsAgain(t *testing.T) {
	s, _ := newStoreWithRecurring(t)
	scheduler := NewScheduler(s)

	rolled, err := scheduler.Roll(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 1, rolled)

	rolled, err = scheduler.Roll(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, rolled)
	assert.Len(t, s.Transactions(), 3)
}

func TestRoll_NonRecurringIgnored(t *testing.T) {
	s := ledger.NewStore([]string{"Food"})
	_, err := s.AddTransaction(models.Transaction{
		Type:     models.TypeExpense,
		Amount:   decimal.NewFromInt(50),
		Date:     "2025-05-20",
		Category: "Food",
	})
	require.NoError(t, err)

	rolled, err := NewScheduler(s).Roll(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, rolled)
	assert.Len(t, s.Transactions(), 1)
}
