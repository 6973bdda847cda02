// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Dataset sources.
const (
	SourceCSV       = "csv"
	SourceSnowflake = "snowflake"
)

// Config represents the application configuration
type Config struct {
	// Dataset source
	Source      string // "csv" or "snowflake"
	CSVPath     string
	DatasetName string
	Query       string // warehouse query when Source is "snowflake"

	// Analysis settings
	TopCountries int

	// Persist quality reports to Postgres
	RecordRuns bool

	// Logging
	LogLevel  string
	LogFormat string

	// Database connections, loaded only when needed
	Postgres  *PostgresConfig
	Snowflake *SnowflakeConfig
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Default values
		Source:       getEnv("DATASET_SOURCE", SourceCSV),
		CSVPath:      getEnv("DATASET_CSV_PATH", "salaries.csv"),
		DatasetName:  getEnv("DATASET_NAME", "salaries"),
		Query:        getEnv("DATASET_QUERY", "SELECT * FROM salaries"),
		TopCountries: getEnvAsInt("TOP_COUNTRIES", 10),
		RecordRuns:   getEnvAsBool("RECORD_RUNS", false),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}

	if cfg.Source == SourceSnowflake {
		snowConfig, err := LoadSnowflakeConfig()
		if err != nil {
			return nil, errors.New("failed to load Snowflake configuration: " + err.Error())
		}
		cfg.Snowflake = snowConfig
	}

	if cfg.RecordRuns {
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	switch c.Source {
	case SourceCSV:
		if c.CSVPath == "" {
			return errors.New("CSV path is required for the csv source")
		}
	case SourceSnowflake:
		if c.Snowflake == nil {
			return errors.New("snowflake configuration is required")
		}
		if c.Query == "" {
			return errors.New("dataset query is required for the snowflake source")
		}
	default:
		return errors.New("dataset source must be csv or snowflake")
	}

	if c.TopCountries <= 0 {
		return errors.New("top countries must be positive")
	}

	if c.RecordRuns && c.Postgres == nil {
		return errors.New("postgreSQL configuration is required to record runs")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
