// Package recurring rolls recurring transactions forward on month
// boundaries: on the first day of a calendar month each transaction
// flagged recurring is cloned into a new realized entry dated today.
package recurring

import (
	"time"

	"moneytrail/internal/dateutils"
	"moneytrail/internal/ledger"
	"moneytrail/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Scheduler clones due recurring transactions into the store.
type Scheduler struct {
	store *ledger.Store
}

// NewScheduler creates a scheduler bound to a store.
func NewScheduler(store *ledger.Store) *Scheduler {
	return &Scheduler{store: store}
}

// Roll processes every recurring transaction that has not yet been rolled
// into the month containing today. Each source carries a last-rolled
// YYYY-MM stamp rather than a boolean, so re-invocation on the same day,
// or any later day of the same month, never duplicates entries. Rolls only
// happen on the first day of a month. Returns the number of entries added.
func (s *Scheduler) Roll(today time.Time) (int, error) {
	if today.Day() != 1 {
		return 0, nil
	}

	monthKey := dateutils.MonthKey(today)
	rolled := 0

	for _, t := range s.store.Transactions() {
		if !t.Recurring || t.LastRolled == monthKey {
			continue
		}

		clone := models.Transaction{
			Type:        t.Type,
			Amount:      t.Amount,
			Date:        dateutils.ToISODate(today),
			Category:    t.Category,
			Description: t.Description,
			// The clone is a plain realized entry; only the source keeps
			// regenerating.
			Recurring: false,
		}

		added, err := s.store.AddTransaction(clone)
		if err != nil {
			return rolled, err
		}
		s.store.MarkRolled(t.ID, monthKey)

		log.WithFields(logrus.Fields{
			"source_id": t.ID,
			"id":        added.ID,
			"month":     monthKey,
			"category":  t.Category,
		}).Info("Recurring transaction rolled forward")
		rolled++
	}

	return rolled, nil
}
