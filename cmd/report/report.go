// Package report prints the spending analytics dashboard.
package report

import (
	"fmt"
	"time"

	"moneytrail/cmd/root"
	reportgen "moneytrail/internal/report"

	"github.com/spf13/cobra"
)

var (
	asJSON      bool
	withHeatmap bool
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show totals, category breakdown, trends and month-over-month change",
	Run:   reportFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	Cmd.Flags().BoolVar(&withHeatmap, "heatmap", false, "Include the daily spending heatmap")
}

func reportFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	windowDays := 0
	if withHeatmap || asJSON {
		windowDays = root.Cfg.Report.HeatmapWindowDays
	}

	generator := reportgen.NewGenerator(root.Log)
	r := generator.Build(ledgerStore.Transactions(), time.Now(), windowDays)

	if asJSON {
		data, err := r.JSON()
		if err != nil {
			root.Log.Fatalf("Failed to encode report: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(r.Text())

	if withHeatmap {
		fmt.Println("\nSpending heatmap (non-zero days):")
		for _, e := range r.Heatmap {
			if e.Level == 0 {
				continue
			}
			fmt.Printf("  %s  level %d  %s\n", e.Date, e.Level, e.Amount)
		}
	}
}
