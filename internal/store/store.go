// Package store provides functionality for persisting and restoring the
// ledger. The snapshot format is the fixed three-collection JSON shape
// {transactions, reminders, categories}; the category vocabulary can also
// be kept in a standalone YAML file so it survives a ledger reset.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"moneytrail/internal/ledgererror"
	"moneytrail/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SnapshotStore loads and saves LedgerState snapshots as JSON files.
type SnapshotStore struct {
	Path string
}

// NewSnapshotStore creates a store for the given snapshot file path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{Path: path}
}

// Load reads and decodes the snapshot. A missing file is not an error: it
// yields an empty state, so a fresh data directory just works. A corrupt
// file yields an InvalidBackupError and no partial state.
func (s *SnapshotStore) Load() (models.LedgerState, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", s.Path).Debug("No snapshot found, starting empty")
			return models.NewLedgerState(), nil
		}
		return models.LedgerState{}, fmt.Errorf("error reading snapshot: %w", err)
	}

	return Decode(s.Path, data)
}

// Save writes the snapshot, creating the parent directory if needed.
func (s *SnapshotStore) Save(state models.LedgerState) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("error writing snapshot: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":         s.Path,
		"transactions": len(state.Transactions),
		"reminders":    len(state.Reminders),
	}).Debug("Snapshot saved")
	return nil
}

// Decode parses snapshot bytes and validates every entry. Any failure
// surfaces as an InvalidBackupError so callers can keep their current
// in-memory state untouched.
func Decode(path string, data []byte) (models.LedgerState, error) {
	var state models.LedgerState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.LedgerState{}, &ledgererror.InvalidBackupError{Path: path, Err: err}
	}

	for i := range state.Transactions {
		if err := state.Transactions[i].Validate(); err != nil {
			return models.LedgerState{}, &ledgererror.InvalidBackupError{Path: path, Err: err}
		}
	}
	for i := range state.Reminders {
		if err := state.Reminders[i].Validate(); err != nil {
			return models.LedgerState{}, &ledgererror.InvalidBackupError{Path: path, Err: err}
		}
	}

	if state.Transactions == nil {
		state.Transactions = []models.Transaction{}
	}
	if state.Reminders == nil {
		state.Reminders = []models.Transaction{}
	}
	if state.Categories == nil {
		state.Categories = []string{}
	}
	return state, nil
}

// categoriesFile is the YAML shape of the category vocabulary file.
type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCategories loads the category vocabulary from a YAML file. A missing
// file returns the given seed list instead.
func LoadCategories(path string, seed []string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("No categories file found, using seed list")
			out := make([]string, len(seed))
			copy(out, seed)
			return out, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var cf categoriesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return cf.Categories, nil
}

// SaveCategories writes the category vocabulary to a YAML file.
func SaveCategories(path string, categories []string) error {
	data, err := yaml.Marshal(categoriesFile{Categories: categories})
	if err != nil {
		return fmt.Errorf("error encoding categories: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	return nil
}
