// Package ledger owns the mutable ledger state: realized transactions,
// pending reminders and the category vocabulary. All mutation goes through
// the Store, which behaves as a single logical writer; a mutex guards
// against callers that run it from more than one goroutine.
package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"moneytrail/internal/dateutils"
	"moneytrail/internal/ledgererror"
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

// Store encapsulates the ledger state and hands out ids from a monotonic
// counter. Timestamp-based ids collide under rapid successive calls, so
// the counter is seeded from the highest id in a loaded snapshot instead.
type Store struct {
	mu     sync.Mutex
	state  models.LedgerState
	nextID int64
}

// NewStore creates an empty store seeded with the given category vocabulary.
func NewStore(seedCategories []string) *Store {
	s := &Store{
		state:  models.NewLedgerState(),
		nextID: 1,
	}
	for _, c := range seedCategories {
		s.addCategoryLocked(c)
	}
	return s
}

// NewStoreFromState creates a store around a loaded snapshot. The id
// counter starts above every id already present so new entries never
// collide with restored ones.
func NewStoreFromState(state models.LedgerState) *Store {
	return &Store{
		state:  state.Clone(),
		nextID: state.MaxID() + 1,
	}
}

// Snapshot returns a deep copy of the current state, suitable for
// persistence or for before/after comparisons in tests.
func (s *Store) Snapshot() models.LedgerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Replace swaps in a restored snapshot wholesale and reseeds the id
// counter. Used by restore after the incoming state has been validated.
func (s *Store) Replace(state models.LedgerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	s.nextID = state.MaxID() + 1
}

// AddTransaction validates the entry, assigns it a fresh id and appends it
// to the realized ledger. The stored entry is returned. Nothing is written
// when validation fails.
func (s *Store) AddTransaction(entry models.Transaction) (models.Transaction, error) {
	if err := entry.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.takeIDLocked()
	entry.Reminder = false
	s.state.Transactions = append(s.state.Transactions, entry)

	log.WithFields(logrus.Fields{
		"id":       entry.ID,
		"type":     entry.Type,
		"category": entry.Category,
	}).Debug("Transaction added")

	return entry, nil
}

// AddReminder validates the entry and appends it to the pending reminders.
func (s *Store) AddReminder(entry models.Transaction) (models.Transaction, error) {
	if err := entry.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.takeIDLocked()
	entry.Reminder = true
	s.state.Reminders = append(s.state.Reminders, entry)

	log.WithField("id", entry.ID).Debug("Reminder added")

	return entry, nil
}

// RealizeReminder atomically removes the reminder with the given id and
// appends a realized transaction cloned from it, with a new id and the
// realization date. When no reminder has that id it fails with a
// NotFoundError and both collections are left untouched.
func (s *Store) RealizeReminder(id int64, realizationDate time.Time) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Reminders {
		if s.state.Reminders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Transaction{}, &ledgererror.NotFoundError{Collection: "reminders", ID: id}
	}

	realized := s.state.Reminders[idx]
	realized.ID = s.takeIDLocked()
	realized.Date = dateutils.ToISODate(realizationDate)
	realized.Reminder = false

	s.state.Reminders = append(s.state.Reminders[:idx], s.state.Reminders[idx+1:]...)
	s.state.Transactions = append(s.state.Transactions, realized)

	log.WithFields(logrus.Fields{
		"reminder_id": id,
		"id":          realized.ID,
		"date":        realized.Date,
	}).Info("Reminder realized")

	return realized, nil
}

// RemoveTransaction filters the matching id out of the realized ledger.
// Removing an absent id is a no-op, not an error.
func (s *Store) RemoveTransaction(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Transactions = removeByID(s.state.Transactions, id)
}

// RemoveReminder filters the matching id out of the pending reminders.
// Removing an absent id is a no-op, not an error.
func (s *Store) RemoveReminder(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reminders = removeByID(s.state.Reminders, id)
}

// AddCategory inserts a category name with set semantics: adding a name
// that is already present, in any letter case, is a no-op. It reports
// whether the vocabulary changed.
func (s *Store) AddCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addCategoryLocked(name)
}

// RemoveCategory deletes a name from the vocabulary. Transactions that
// reference the deleted category keep their category string; orphans still
// display and aggregate correctly.
func (s *Store) RemoveCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.state.Categories {
		if strings.EqualFold(c, name) {
			s.state.Categories = append(s.state.Categories[:i], s.state.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// MarkRolled stamps a recurring transaction with the YYYY-MM it was last
// rolled forward into. It reports whether the id was found.
func (s *Store) MarkRolled(id int64, monthKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Transactions {
		if s.state.Transactions[i].ID == id {
			s.state.Transactions[i].LastRolled = monthKey
			return true
		}
	}
	return false
}

// Transactions returns a copy of the realized ledger.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out
}

// Reminders returns a copy of the pending reminders.
func (s *Store) Reminders() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.state.Reminders))
	copy(out, s.state.Reminders)
	return out
}

// Categories returns a sorted copy of the category vocabulary.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.state.Categories))
	copy(out, s.state.Categories)
	sort.Strings(out)
	return out
}

func (s *Store) addCategoryLocked(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, c := range s.state.Categories {
		if strings.EqualFold(c, name) {
			return false
		}
	}
	s.state.Categories = append(s.state.Categories, name)
	return true
}

func (s *Store) takeIDLocked() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func removeByID(entries []models.Transaction, id int64) []models.Transaction {
	out := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
