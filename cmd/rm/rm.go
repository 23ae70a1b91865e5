// Package rm deletes realized ledger entries.
package rm

import (
	"strconv"

	"moneytrail/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the rm command.
var Cmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a ledger entry by id",
	Long: `Delete a realized ledger entry. Deleting an id that does not exist is a
no-op. Pending reminders are dropped with "remind rm" instead.`,
	Args: cobra.ExactArgs(1),
	Run:  rmFunc,
}

func rmFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		root.Log.Fatalf("Invalid id %q: must be a number", args[0])
	}

	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	ledgerStore.RemoveTransaction(id)
	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
	root.Log.Infof("Entry %d removed", id)
}
