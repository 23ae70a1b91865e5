// Package add handles creating ledger entries and reminders.
package add

import (
	"time"

	"moneytrail/cmd/root"
	"moneytrail/internal/dateutils"
	"moneytrail/internal/models"

	"github.com/spf13/cobra"
)

var (
	txType      string
	amount      string
	date        string
	category    string
	description string
	recurring   bool
	reminder    bool
)

// Cmd represents the add command.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction or a reminder to the ledger",
	Long: `Add a confirmed entry to the ledger. With --reminder the entry is held
as a pending bill until it is paid with "remind pay".`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&txType, "type", "t", "expense", "Entry type: income or expense")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount (positive decimal)")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (default: today)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category name")
	Cmd.Flags().StringVarP(&description, "description", "n", "", "Optional description")
	Cmd.Flags().BoolVar(&recurring, "recurring", false, "Regenerate this entry every month")
	Cmd.Flags().BoolVar(&reminder, "reminder", false, "Hold as a pending reminder instead of realizing")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) {
	if date == "" {
		date = dateutils.ToISODate(time.Now())
	}

	entry := models.Transaction{
		Type:        models.TransactionType(txType),
		Amount:      models.ParseAmount(amount),
		Date:        date,
		Category:    category,
		Description: description,
		Recurring:   recurring,
	}

	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	if reminder {
		added, err := ledgerStore.AddReminder(entry)
		if err != nil {
			root.Log.Fatalf("Rejected: %v", err)
		}
		root.Log.Infof("Reminder saved with id %d", added.ID)
	} else {
		added, err := ledgerStore.AddTransaction(entry)
		if err != nil {
			root.Log.Fatalf("Rejected: %v", err)
		}
		root.Log.Infof("Added to ledger with id %d", added.ID)
	}

	// New custom categories become part of the vocabulary.
	if category != "" {
		ledgerStore.AddCategory(category)
	}

	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
}
