// Package list shows filtered views of the ledger.
package list

import (
	"fmt"

	"moneytrail/cmd/root"
	"moneytrail/internal/filter"

	"github.com/spf13/cobra"
)

var (
	typeFilter string
	category   string
	month      string
	day        string
	search     string
	sortMode   string
	limit      int
)

// Cmd represents the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries, newest first",
	Run:   listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&typeFilter, "type", "t", "all", "Filter by type: all, income or expense")
	Cmd.Flags().StringVarP(&category, "category", "c", "all", "Filter by category name")
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Filter by calendar month (YYYY-MM)")
	Cmd.Flags().StringVarP(&day, "day", "d", "", "Filter by day (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&search, "search", "s", "", "Search term over category and description")
	Cmd.Flags().StringVar(&sortMode, "sort", "id", "Sort mode: id, amount or date")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum entries to show (0 = all)")
}

func listFunc(cmd *cobra.Command, args []string) {
	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	query := filter.Query{
		Type:     filter.TypeFilter(typeFilter),
		Category: category,
		Search:   search,
		Sort:     filter.SortMode(sortMode),
	}
	switch {
	case day != "":
		query.Timeframe = filter.Timeframe{Kind: filter.TimeframeDay, Day: day}
	case month != "":
		query.Timeframe = filter.Timeframe{Kind: filter.TimeframeMonth, Month: month}
	}

	entries := filter.Apply(ledgerStore.Transactions(), query)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if len(entries) == 0 {
		fmt.Println("No matching entries.")
		return
	}

	for _, t := range entries {
		sign := "+"
		if t.IsExpense() {
			sign = "-"
		}
		line := fmt.Sprintf("%4d  %s  %-14s %s%s", t.ID, t.Date, t.Category, sign, t.Amount)
		if t.Description != "" {
			line += "  " + t.Description
		}
		if t.Recurring {
			line += "  (recurring)"
		}
		fmt.Println(line)
	}
}
