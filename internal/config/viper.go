// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSeedCategories is the category vocabulary a fresh ledger starts
// with.
var DefaultSeedCategories = []string{
	"Food", "Rent", "Salary", "Shopping", "Transport", "Entertainment", "Health",
}

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		// Directory holds the ledger snapshot and category files.
		Directory string `mapstructure:"directory" yaml:"directory"`
		// Prefix parameterizes the data file names so several ledgers can
		// share a directory.
		Prefix string `mapstructure:"prefix" yaml:"prefix"`
	} `mapstructure:"data" yaml:"data"`

	Categories struct {
		Seed []string `mapstructure:"seed" yaml:"seed"`
	} `mapstructure:"categories" yaml:"categories"`

	CSV struct {
		// IncludeExtended adds Description and Recurring columns to exports.
		IncludeExtended bool `mapstructure:"include_extended" yaml:"include_extended"`
	} `mapstructure:"csv" yaml:"csv"`

	Report struct {
		// HeatmapWindowDays is the size of the spending heatmap window.
		HeatmapWindowDays int `mapstructure:"heatmap_window_days" yaml:"heatmap_window_days"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then MONEYTRAIL_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.moneytrail")
	v.AddConfigPath(".moneytrail")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MONEYTRAIL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars, but tell the user.
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("data.directory", ".")
	v.SetDefault("data.prefix", "moneytrail")
	v.SetDefault("categories.seed", DefaultSeedCategories)
	v.SetDefault("csv.include_extended", false)
	v.SetDefault("report.heatmap_window_days", 180)
}

// SnapshotFile returns the path of the ledger snapshot file for this config.
func (c *Config) SnapshotFile() string {
	return fmt.Sprintf("%s/%s_ledger.json", c.Data.Directory, c.Data.Prefix)
}

// CategoriesFile returns the path of the category vocabulary file.
func (c *Config) CategoriesFile() string {
	return fmt.Sprintf("%s/%s_categories.yaml", c.Data.Directory, c.Data.Prefix)
}
