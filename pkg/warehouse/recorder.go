// pkg/warehouse/recorder.go
package warehouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"salaryscope/pkg/model"
)

// Recorder persists one tracking row per quality check run so repeated runs
// over a dataset can be compared later.
type Recorder struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewRecorder creates a Recorder and ensures the tracking table exists.
func NewRecorder(db *sqlx.DB, logger *zap.Logger) (*Recorder, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	recorder := &Recorder{
		db:     db,
		logger: logger,
	}

	if err := recorder.setupRunsTable(); err != nil {
		return nil, fmt.Errorf("failed to setup runs table: %w", err)
	}

	return recorder, nil
}

// setupRunsTable ensures the quality_check_runs tracking table exists
func (r *Recorder) setupRunsTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	createTableSQL := `
		CREATE TABLE IF NOT EXISTS public.quality_check_runs (
			check_id UUID PRIMARY KEY,
			dataset_name TEXT NOT NULL,
			row_count INTEGER NOT NULL,
			column_count INTEGER NOT NULL,
			duplicate_rows INTEGER NOT NULL,
			clean_row_count INTEGER NOT NULL,
			missing_values JSONB NOT NULL,
			invalid_residences TEXT[] ,
			invalid_locations TEXT[],
			salary_min DOUBLE PRECISION NOT NULL,
			salary_max DOUBLE PRECISION NOT NULL,
			salary_mean DOUBLE PRECISION NOT NULL,
			checked_at TIMESTAMP WITH TIME ZONE NOT NULL,
			recorded_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := r.db.ExecContext(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create tracking table: %w", err)
	}

	r.logger.Info("Ensured quality_check_runs table exists")
	return nil
}

// RecordRun inserts a tracking row for a completed quality check.
func (r *Recorder) RecordRun(ctx context.Context, datasetName string, report *model.QualityReport) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	missing, err := json.Marshal(report.MissingValues)
	if err != nil {
		return fmt.Errorf("failed to encode missing-value counts: %w", err)
	}

	insertCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err = r.db.ExecContext(insertCtx, `
		INSERT INTO public.quality_check_runs
		(check_id, dataset_name, row_count, column_count, duplicate_rows,
		 clean_row_count, missing_values, invalid_residences, invalid_locations,
		 salary_min, salary_max, salary_mean, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		report.CheckID,
		datasetName,
		report.RowCount,
		report.ColumnCount,
		report.DuplicateRows,
		report.CleanRowCount,
		missing,
		pq.Array(report.InvalidResidences),
		pq.Array(report.InvalidLocations),
		report.Salary.Min,
		report.Salary.Max,
		report.Salary.Mean,
		report.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quality check run: %w", err)
	}

	r.logger.Info("Recorded quality check run",
		zap.String("checkID", report.CheckID),
		zap.String("dataset", datasetName))
	return nil
}
