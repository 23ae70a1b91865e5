// Package categories manages the category vocabulary.
package categories

import (
	"fmt"

	"moneytrail/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command group.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List, add or remove spending categories",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category (no-op if it already exists)",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a category; existing entries keep their category string",
	Args:  cobra.ExactArgs(1),
	Run:   rmFunc,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(rmCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}
	for _, c := range ledgerStore.Categories() {
		fmt.Println(c)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	if !ledgerStore.AddCategory(args[0]) {
		root.Log.Infof("Category %q already exists", args[0])
		return
	}
	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
	root.Log.Infof("Category %q added", args[0])
}

func rmFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	if !ledgerStore.RemoveCategory(args[0]) {
		root.Log.Infof("Category %q not found", args[0])
		return
	}
	if err := root.SaveLedger(ledgerStore); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}
	root.Log.Infof("Category %q removed", args[0])
}
