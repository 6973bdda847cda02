package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults for the csv source", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, SourceCSV, cfg.Source)
		assert.Equal(t, "salaries.csv", cfg.CSVPath)
		assert.Equal(t, 10, cfg.TopCountries)
		assert.False(t, cfg.RecordRuns)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("DATASET_CSV_PATH", "/data/ds_salaries.csv")
		t.Setenv("TOP_COUNTRIES", "5")
		t.Setenv("LOG_FORMAT", "console")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "/data/ds_salaries.csv", cfg.CSVPath)
		assert.Equal(t, 5, cfg.TopCountries)
		assert.Equal(t, "console", cfg.LogFormat)
	})

	t.Run("should fall back to the default on a malformed integer", func(t *testing.T) {
		t.Setenv("TOP_COUNTRIES", "many")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 10, cfg.TopCountries)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("should reject an unknown source", func(t *testing.T) {
		cfg := &Config{Source: "spreadsheet", TopCountries: 10}
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject a non-positive top countries setting", func(t *testing.T) {
		cfg := &Config{Source: SourceCSV, CSVPath: "salaries.csv", TopCountries: 0}
		assert.Error(t, cfg.Validate())
	})

	t.Run("should require a csv path for the csv source", func(t *testing.T) {
		cfg := &Config{Source: SourceCSV, TopCountries: 10}
		assert.Error(t, cfg.Validate())
	})

	t.Run("should require snowflake settings for the snowflake source", func(t *testing.T) {
		cfg := &Config{Source: SourceSnowflake, Query: "SELECT 1", TopCountries: 10}
		assert.Error(t, cfg.Validate())
	})
}
