// Package restore replaces the ledger state from a JSON backup.
package restore

import (
	"os"

	"moneytrail/cmd/root"
	"moneytrail/internal/store"

	"github.com/spf13/cobra"
)

var input string

// Cmd represents the restore command.
var Cmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the ledger from a JSON backup",
	Long: `Restore the ledger from a backup file written by "backup". The file is
fully validated before anything is replaced; a corrupt backup leaves the
current ledger untouched.`,
	Run: restoreFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Backup file to restore from")
	_ = Cmd.MarkFlagRequired("input")
}

func restoreFunc(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(input)
	if err != nil {
		root.Log.Fatalf("Failed to read backup: %v", err)
	}

	state, err := store.Decode(input, data)
	if err != nil {
		root.Log.Fatalf("Restore aborted, ledger unchanged: %v", err)
	}

	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	ledgerStore.Replace(state)
	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
	root.Log.Infof("Restored %d transactions, %d reminders and %d categories",
		len(state.Transactions), len(state.Reminders), len(state.Categories))
}
