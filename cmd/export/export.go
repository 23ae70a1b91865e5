// Package export writes the ledger to a CSV file.
package export

import (
	"moneytrail/cmd/root"
	csvexport "moneytrail/internal/export"

	"github.com/spf13/cobra"
)

var (
	output   string
	extended bool
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV (Date,Type,Category,Amount)",
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "moneytrail_export.csv", "Output CSV file")
	Cmd.Flags().BoolVar(&extended, "extended", false, "Include Description and Recurring columns")
}

func exportFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	ext := extended || root.Cfg.CSV.IncludeExtended
	if err := csvexport.WriteCSVFile(output, ledgerStore.Transactions(), ext); err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}
	root.Log.Infof("Ledger exported to %s", output)
}
