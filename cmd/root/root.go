// Package root contains the root command for the application.
package root

import (
	"moneytrail/internal/config"
	"moneytrail/internal/export"
	"moneytrail/internal/ledger"
	"moneytrail/internal/recurring"
	"moneytrail/internal/store"
	"moneytrail/internal/transcript"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the resolved application configuration, populated before any
	// command runs.
	Cfg = &config.Config{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "moneytrail",
		Short: "A personal ledger with voice-draft parsing and spending analytics.",
		Long: `moneytrail keeps a personal ledger of income and expense entries.
Free-text transcripts can be parsed into draft entries, and the ledger can be
filtered, aggregated and exported to CSV or a JSON backup.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to moneytrail!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			// Hand the configured logger to every package that logs.
			ledger.SetLogger(Log)
			store.SetLogger(Log)
			export.SetLogger(Log)
			transcript.SetLogger(Log)
			recurring.SetLogger(Log)
		},
	}
)

// OpenLedger loads the snapshot and the category vocabulary and wraps them
// in a store. Seed categories fill in when neither file has any.
func OpenLedger() (*ledger.Store, error) {
	snapshots := store.NewSnapshotStore(Cfg.SnapshotFile())
	state, err := snapshots.Load()
	if err != nil {
		return nil, err
	}

	if len(state.Categories) == 0 {
		categories, err := store.LoadCategories(Cfg.CategoriesFile(), Cfg.Categories.Seed)
		if err != nil {
			return nil, err
		}
		state.Categories = categories
	}

	return ledger.NewStoreFromState(state), nil
}

// SaveLedger persists the store back to the snapshot and category files.
func SaveLedger(s *ledger.Store) error {
	state := s.Snapshot()
	if err := store.NewSnapshotStore(Cfg.SnapshotFile()).Save(state); err != nil {
		return err
	}
	return store.SaveCategories(Cfg.CategoriesFile(), state.Categories)
}
