// Package roll runs the recurring roll-forward.
package roll

import (
	"time"

	"moneytrail/cmd/root"
	"moneytrail/internal/dateutils"
	"moneytrail/internal/recurring"

	"github.com/spf13/cobra"
)

var asOf string

// Cmd represents the roll command.
var Cmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll recurring transactions into the current month",
	Long: `On the first day of a month, clone every recurring transaction into a
new realized entry dated today. Running it again in the same month adds
nothing.`,
	Run: rollFunc,
}

func init() {
	Cmd.Flags().StringVar(&asOf, "as-of", "", "Run as if today were this date (YYYY-MM-DD)")
}

func rollFunc(cmd *cobra.Command, args []string) {
	today := time.Now()
	if asOf != "" {
		parsed, err := dateutils.ParseISODate(asOf)
		if err != nil {
			root.Log.Fatalf("Invalid --as-of date: %v", err)
		}
		today = parsed
	}

	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	scheduler := recurring.NewScheduler(ledgerStore)
	rolled, err := scheduler.Roll(today)
	if err != nil {
		root.Log.Fatalf("Roll-forward failed: %v", err)
	}

	if rolled == 0 {
		root.Log.Info("Nothing to roll forward")
		return
	}
	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
	root.Log.Infof("Rolled %d recurring transactions forward", rolled)
}
