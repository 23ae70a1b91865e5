package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ".", config.Data.Directory)
	assert.Equal(t, "moneytrail", config.Data.Prefix)
	assert.Equal(t, DefaultSeedCategories, config.Categories.Seed)
	assert.False(t, config.CSV.IncludeExtended)
	assert.Equal(t, 180, config.Report.HeatmapWindowDays)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"MONEYTRAIL_LOG_LEVEL":                  "debug",
		"MONEYTRAIL_LOG_FORMAT":                 "json",
		"MONEYTRAIL_DATA_PREFIX":                "household",
		"MONEYTRAIL_CSV_INCLUDE_EXTENDED":       "true",
		"MONEYTRAIL_REPORT_HEATMAP_WINDOW_DAYS": "30",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "household", config.Data.Prefix)
	assert.True(t, config.CSV.IncludeExtended)
	assert.Equal(t, 30, config.Report.HeatmapWindowDays)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
data:
  directory: "/var/lib/moneytrail"
  prefix: "shared"
categories:
  seed:
    - "Groceries"
    - "Utilities"
report:
  heatmap_window_days: 90
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "/var/lib/moneytrail", config.Data.Directory)
	assert.Equal(t, "shared", config.Data.Prefix)
	assert.Equal(t, []string{"Groceries", "Utilities"}, config.Categories.Seed)
	assert.Equal(t, 90, config.Report.HeatmapWindowDays)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
data:
  prefix: "shared"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Environment variables should override the config file.
	t.Setenv("MONEYTRAIL_LOG_LEVEL", "error")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)    // env var wins
	assert.Equal(t, "shared", config.Data.Prefix) // config file value
}

func TestConfig_DataFilePaths(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "./moneytrail_ledger.json", config.SnapshotFile())
	assert.Equal(t, "./moneytrail_categories.yaml", config.CategoriesFile())

	config.Data.Directory = "/tmp/ledgers"
	config.Data.Prefix = "household"
	assert.Equal(t, "/tmp/ledgers/household_ledger.json", config.SnapshotFile())
	assert.Equal(t, "/tmp/ledgers/household_categories.yaml", config.CategoriesFile())
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"MONEYTRAIL_LOG_LEVEL",
		"MONEYTRAIL_LOG_FORMAT",
		"MONEYTRAIL_DATA_DIRECTORY",
		"MONEYTRAIL_DATA_PREFIX",
		"MONEYTRAIL_CSV_INCLUDE_EXTENDED",
		"MONEYTRAIL_REPORT_HEATMAP_WINDOW_DAYS",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
