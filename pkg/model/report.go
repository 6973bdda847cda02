// pkg/model/report.go
package model

import (
	"time"
)

// SalaryStats is the descriptive statistics bundle for salary_in_usd.
// StdDev uses the sample definition (N-1); quartiles use linear
// interpolation on rank h = (n-1)*p.
type SalaryStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Q1     float64
	Median float64
	Q3     float64
}

// QualityReport is the structured result of a quality check run. It is
// produced fresh per invocation and never mutated after construction.
type QualityReport struct {
	CheckID     string    // Unique run identifier
	CheckedAt   time.Time // When the check ran
	RowCount    int       // Input rows
	ColumnCount int       // Input columns

	// MissingValues holds per-column null counts, only for columns where
	// at least one value is missing.
	MissingValues map[string]int

	// CategoricalValues maps each categorical column to its distinct
	// observed values in first-seen order.
	CategoricalValues map[string][]string

	Salary SalaryStats

	// Invalid country codes in first-seen order, one list per column.
	InvalidResidences []string
	InvalidLocations  []string

	DuplicateRows int // Exact duplicates, excluding first occurrences
	CleanRowCount int // Rows remaining after deduplication

	// ColumnTypes maps each column to the Go type observed in its first
	// non-missing cell ("unknown" when every cell is missing).
	ColumnTypes map[string]string
}

// GroupCount is one (group key, row count) element of a group-keyed series.
type GroupCount struct {
	Key   string
	Count int
}

// GroupAverage is one (group key, average salary) element of a group-keyed
// series.
type GroupAverage struct {
	Key     string
	Average float64
}

// YearCount is one (work year, row count) element of a yearly series.
type YearCount struct {
	Year  int
	Count int
}

// YearAverage is one (work year, average salary) element of a yearly series.
type YearAverage struct {
	Year    int
	Average float64
}
