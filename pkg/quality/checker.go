// pkg/quality/checker.go
package quality

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salaryscope/pkg/model"
	"salaryscope/pkg/registry"
)

// Checker performs the data quality check and deduplication pass over a
// salary dataset. It holds no mutable state; the same Checker can be reused
// across datasets.
type Checker struct {
	registry registry.Registry
	logger   *zap.Logger
}

// NewChecker creates a new Checker backed by the given country-code registry.
func NewChecker(reg registry.Registry, logger *zap.Logger) (*Checker, error) {
	if reg == nil {
		return nil, errors.New("country code registry cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Checker{
		registry: reg,
		logger:   logger,
	}, nil
}

// CheckAndClean runs the full quality check over the dataset and returns the
// report together with a deduplicated copy. The input dataset is never
// mutated; the cleaned dataset keeps the first occurrence of each distinct
// row in its original relative order.
func (c *Checker) CheckAndClean(ds *model.Dataset) (*model.QualityReport, *model.Dataset, error) {
	if ds == nil {
		return nil, nil, errors.New("dataset cannot be nil")
	}
	if err := requireColumns(ds, model.RequiredColumns()); err != nil {
		return nil, nil, err
	}

	report := &model.QualityReport{
		CheckID:           uuid.New().String(),
		CheckedAt:         time.Now(),
		RowCount:          ds.Len(),
		ColumnCount:       len(ds.Columns),
		MissingValues:     missingValueCounts(ds),
		CategoricalValues: make(map[string][]string, len(model.CategoricalColumns())),
	}

	for _, col := range model.CategoricalColumns() {
		report.CategoricalValues[col] = distinctValues(ds, col)
	}

	salary, err := describeSalaries(ds)
	if err != nil {
		return nil, nil, err
	}
	report.Salary = salary

	report.InvalidResidences = c.invalidCodes(ds, model.ColEmployeeResidence)
	report.InvalidLocations = c.invalidCodes(ds, model.ColCompanyLocation)

	cleaned, duplicates := dedupe(ds)
	report.DuplicateRows = duplicates
	report.CleanRowCount = cleaned.Len()
	report.ColumnTypes = columnTypes(cleaned)

	c.logger.Info("Quality check completed",
		zap.String("checkID", report.CheckID),
		zap.Int("rows", report.RowCount),
		zap.Int("duplicates", report.DuplicateRows),
		zap.Int("cleanRows", report.CleanRowCount),
		zap.Int("invalidResidences", len(report.InvalidResidences)),
		zap.Int("invalidLocations", len(report.InvalidLocations)))

	return report, cleaned, nil
}

// requireColumns fails with a SchemaError on the first missing column.
func requireColumns(ds *model.Dataset, required []string) error {
	for _, col := range required {
		if !ds.HasColumn(col) {
			return &model.SchemaError{Column: col}
		}
	}
	return nil
}

// missingValueCounts counts absent/null cells per column, keeping only
// columns with a non-zero count.
func missingValueCounts(ds *model.Dataset) map[string]int {
	counts := make(map[string]int)
	for _, col := range ds.Columns {
		n := 0
		for _, row := range ds.Rows {
			v, ok := row[col]
			if !ok || model.IsMissing(v) {
				n++
			}
		}
		if n > 0 {
			counts[col] = n
		}
	}
	return counts
}

// distinctValues returns the distinct non-missing values of a column in
// first-seen order.
func distinctValues(ds *model.Dataset, col string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, row := range ds.Rows {
		v, ok := row[col]
		if !ok || model.IsMissing(v) {
			continue
		}
		s := model.CellString(v)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		values = append(values, s)
	}
	return values
}

// invalidCodes returns the distinct values of a country-code column that are
// neither registry members nor the literal "Kosovo", which has no official
// alpha-2 code but is accepted as valid.
func (c *Checker) invalidCodes(ds *model.Dataset, col string) []string {
	seen := make(map[string]struct{})
	var invalid []string
	for _, row := range ds.Rows {
		v, ok := row[col]
		if !ok || model.IsMissing(v) {
			continue
		}
		code := model.CellString(v)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		if code == "Kosovo" {
			continue
		}
		if !c.registry.IsValidCode(code) {
			invalid = append(invalid, code)
		}
	}
	return invalid
}

// dedupe returns a copy of the dataset keeping only the first occurrence of
// each distinct row, and the number of duplicates dropped.
func dedupe(ds *model.Dataset) (*model.Dataset, int) {
	seen := make(map[uint64]struct{}, ds.Len())
	cleaned := model.NewDataset(ds.Columns)
	duplicates := 0

	for _, row := range ds.Rows {
		fp := rowFingerprint(row, ds.Columns)
		if _, dup := seen[fp]; dup {
			duplicates++
			continue
		}
		seen[fp] = struct{}{}
		cleaned.Append(row)
	}

	return cleaned, duplicates
}

// columnTypes records the type of the first non-missing cell per column.
func columnTypes(ds *model.Dataset) map[string]string {
	types := make(map[string]string, len(ds.Columns))
	for _, col := range ds.Columns {
		types[col] = "unknown"
		for _, row := range ds.Rows {
			if v, ok := row[col]; ok && !model.IsMissing(v) {
				types[col] = model.TypeName(v)
				break
			}
		}
	}
	return types
}
