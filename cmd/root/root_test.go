package root_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneytrail/cmd/root"
	"moneytrail/internal/models"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "moneytrail", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "personal ledger")
	assert.Contains(t, root.Cmd.Long, "transcripts")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestGlobalVariables_Initialization(t *testing.T) {
	assert.NotNil(t, root.Log)
	assert.NotNil(t, root.Cfg)
	assert.NotNil(t, root.Cmd)
}

func TestOpenLedger_FreshDirectorySeedsCategories(t *testing.T) {
	tempDir := t.TempDir()
	root.Cfg.Data.Directory = tempDir
	root.Cfg.Data.Prefix = "test"
	root.Cfg.Categories.Seed = []string{"Food", "Rent"}

	s, err := root.OpenLedger()
	require.NoError(t, err)

	assert.Equal(t, []string{"Food", "Rent"}, s.Categories())
	assert.Empty(t, s.Transactions())
}

func TestSaveLedger_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	root.Cfg.Data.Directory = tempDir
	root.Cfg.Data.Prefix = "test"
	root.Cfg.Categories.Seed = []string{"Food"}

	s, err := root.OpenLedger()
	require.NoError(t, err)

	_, err = s.AddTransaction(models.Transaction{
		Type:     models.TypeExpense,
		Amount:   decimal.NewFromInt(500),
		Date:     "2025-06-10",
		Category: "Food",
	})
	require.NoError(t, err)
	require.NoError(t, root.SaveLedger(s))

	assert.FileExists(t, filepath.Join(tempDir, "test_ledger.json"))
	assert.FileExists(t, filepath.Join(tempDir, "test_categories.yaml"))

	reopened, err := root.OpenLedger()
	require.NoError(t, err)

	transactions := reopened.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, "Food", transactions[0].Category)
	assert.Equal(t, []string{"Food"}, reopened.Categories())
}
