package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"salaryscope/pkg/aggregate"
	"salaryscope/pkg/config"
	"salaryscope/pkg/loader"
	"salaryscope/pkg/model"
	"salaryscope/pkg/quality"
	"salaryscope/pkg/registry"
	"salaryscope/pkg/report"
	"salaryscope/pkg/warehouse"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "salaryscope:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	input := flag.String("input", cfg.CSVPath, "path to the salary dataset CSV")
	topN := flag.Int("top", cfg.TopCountries, "number of countries in the top-N aggregation")
	flag.Parse()
	cfg.CSVPath = *input
	cfg.TopCountries = *topN

	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	ds, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return err
	}

	checker, err := quality.NewChecker(registry.NewISORegistry(), logger.Named("quality"))
	if err != nil {
		return err
	}

	qualityReport, cleaned, err := checker.CheckAndClean(ds)
	if err != nil {
		return fmt.Errorf("quality check failed: %w", err)
	}

	renderer := report.NewRenderer(os.Stdout)
	if err := renderer.WriteQualityReport(qualityReport); err != nil {
		return err
	}

	counts, averages, err := aggregate.TopCountriesBySalary(cleaned, cfg.TopCountries)
	if err != nil {
		return fmt.Errorf("country aggregation failed: %w", err)
	}
	if err := renderer.WriteTopCountries(cfg.TopCountries, counts, averages); err != nil {
		return err
	}

	yearCounts, yearAverages, err := aggregate.YearlyTrends(cleaned)
	if err != nil {
		return fmt.Errorf("yearly aggregation failed: %w", err)
	}
	if err := renderer.WriteYearlyTrends(yearCounts, yearAverages); err != nil {
		return err
	}

	if cfg.RecordRuns {
		if err := recordRun(ctx, cfg, qualityReport, logger); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	return nil
}

// loadDataset reads the salary dataset from the configured source.
func loadDataset(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*model.Dataset, error) {
	switch cfg.Source {
	case config.SourceSnowflake:
		db, err := warehouse.OpenSnowflake(ctx, cfg.Snowflake)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		queryCtx, cancel := context.WithTimeout(ctx, cfg.Snowflake.QueryTimeout)
		defer cancel()
		return loader.LoadQuery(queryCtx, db, cfg.Query, logger.Named("loader"))
	default:
		return loader.LoadCSV(cfg.CSVPath, logger.Named("loader"))
	}
}

// recordRun persists the quality report to the tracking table.
func recordRun(ctx context.Context, cfg *config.Config, qualityReport *model.QualityReport, logger *zap.Logger) error {
	db, err := warehouse.OpenPostgres(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	recorder, err := warehouse.NewRecorder(db, logger.Named("recorder"))
	if err != nil {
		return err
	}
	return recorder.RecordRun(ctx, cfg.DatasetName, qualityReport)
}
