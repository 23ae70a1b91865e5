// Package remind manages pending bill reminders.
package remind

import (
	"fmt"
	"strconv"
	"time"

	"moneytrail/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the remind command group.
var Cmd = &cobra.Command{
	Use:   "remind",
	Short: "List, pay or drop pending bill reminders",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all pending reminders",
	Run:   listFunc,
}

var payCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Realize a reminder as a transaction dated today",
	Args:  cobra.ExactArgs(1),
	Run:   payFunc,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Drop a reminder without paying it",
	Args:  cobra.ExactArgs(1),
	Run:   rmFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(payCmd)
	Cmd.AddCommand(rmCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	reminders := ledgerStore.Reminders()
	if len(reminders) == 0 {
		fmt.Println("All caught up!")
		return
	}
	for _, r := range reminders {
		fmt.Printf("%4d  %s: %s (%s)\n", r.ID, r.Date, r.Category, r.Amount)
	}
}

func payFunc(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	realized, err := ledgerStore.RealizeReminder(id, time.Now())
	if err != nil {
		root.Log.Fatalf("Failed to pay reminder: %v", err)
	}
	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
	root.Log.Infof("Bill paid and recorded with id %d", realized.ID)
}

func rmFunc(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	ledgerStore.RemoveReminder(id)
	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
	root.Log.Infof("Reminder %d removed", id)
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		root.Log.Fatalf("Invalid id %q: must be a number", arg)
	}
	return id
}
