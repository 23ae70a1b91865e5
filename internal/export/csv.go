// Package export writes ledger rows to CSV and reads them back. The
// column set is Date,Type,Category,Amount, optionally extended with
// Description and Recurring. Fields containing commas are quoted, so
// every export re-parses to the same tuples.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"moneytrail/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row is the basic CSV shape of a ledger entry.
type Row struct {
	Date     string          `csv:"Date"`
	Type     string          `csv:"Type"`
	Category string          `csv:"Category"`
	Amount   decimal.Decimal `csv:"Amount"`
}

// ExtendedRow adds the optional description and recurring columns.
type ExtendedRow struct {
	Row
	Description string `csv:"Description"`
	Recurring   bool   `csv:"Recurring"`
}

// WriteCSV writes the transactions to w in export order.
func WriteCSV(w io.Writer, transactions []models.Transaction, extended bool) error {
	if extended {
		rows := make([]ExtendedRow, 0, len(transactions))
		for _, t := range transactions {
			rows = append(rows, ExtendedRow{
				Row:         rowFrom(t),
				Description: t.Description,
				Recurring:   t.Recurring,
			})
		}
		return gocsv.Marshal(rows, w)
	}

	rows := make([]Row, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, rowFrom(t))
	}
	return gocsv.Marshal(rows, w)
}

// WriteCSVFile writes the transactions to a CSV file, creating the parent
// directory if needed.
func WriteCSVFile(path string, transactions []models.Transaction, extended bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, transactions, extended); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(transactions),
	}).Info("Transactions exported to CSV")
	return nil
}

// ReadCSV parses exported rows back into transactions. IDs are not part of
// the export format, so the returned entries carry none; a store assigns
// fresh ids on import.
func ReadCSV(r io.Reader) ([]models.Transaction, error) {
	var rows []ExtendedRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV: %w", err)
	}

	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Transaction{
			Date:        row.Date,
			Type:        models.TransactionType(row.Type),
			Category:    row.Category,
			Amount:      row.Amount,
			Description: row.Description,
			Recurring:   row.Recurring,
		})
	}
	return out, nil
}

func rowFrom(t models.Transaction) Row {
	return Row{
		Date:     t.Date,
		Type:     string(t.Type),
		Category: t.Category,
		Amount:   t.Amount,
	}
}
