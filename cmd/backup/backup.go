// Package backup writes a full JSON backup of the ledger state.
package backup

import (
	"moneytrail/cmd/root"
	"moneytrail/internal/store"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the backup command.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a JSON backup of transactions, reminders and categories",
	Run:   backupFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "moneytrail_backup.json", "Output backup file")
}

func backupFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	if err := store.NewSnapshotStore(output).Save(ledgerStore.Snapshot()); err != nil {
		root.Log.Fatalf("Backup failed: %v", err)
	}
	root.Log.Infof("Backup written to %s", output)
}
