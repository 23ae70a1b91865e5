// Package voice turns a speech transcript into a draft entry.
package voice

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"moneytrail/cmd/root"
	"moneytrail/internal/transcript"

	"github.com/spf13/cobra"
)

var asJSON bool

// Cmd represents the voice command.
var Cmd = &cobra.Command{
	Use:   "voice [transcript]",
	Short: "Parse a spoken sentence into draft entry fields",
	Long: `Parse a free-text transcript such as "spent 500 on food yesterday" into
draft fields. The draft is only a suggestion: confirm it with "add". Fields
the transcript does not mention are left out.`,
	Args: cobra.MinimumNArgs(1),
	Run:  voiceFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Print the draft as JSON")
}

func voiceFunc(cmd *cobra.Command, args []string) {
	text := strings.ToLower(strings.Join(args, " "))

	ledgerStore, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Failed to open ledger: %v", err)
	}

	draft := transcript.Parse(text, ledgerStore.Categories(), time.Now())

	if draft.IsEmpty() {
		root.Log.Warn("Nothing recognized in the transcript")
		return
	}

	if asJSON {
		data, err := json.MarshalIndent(draft, "", "  ")
		if err != nil {
			root.Log.Fatalf("Failed to encode draft: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	if draft.Amount != nil {
		fmt.Printf("amount:   %s\n", draft.Amount)
	}
	if draft.Type != nil {
		fmt.Printf("type:     %s\n", *draft.Type)
	}
	if draft.Category != nil {
		fmt.Printf("category: %s\n", *draft.Category)
	}
	if draft.CustomCategory != nil {
		fmt.Printf("category: %s (new)\n", *draft.CustomCategory)
	}
	if draft.Date != nil {
		fmt.Printf("date:     %s\n", *draft.Date)
	}
	root.Log.Info("Voice recognized! Check the draft and confirm with 'add'.")
}
