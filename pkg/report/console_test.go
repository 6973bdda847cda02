package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salaryscope/pkg/model"
)

func sampleReport() *model.QualityReport {
	return &model.QualityReport{
		CheckID:     "5f0c4f0e-2b7e-4a3a-9f51-1f8e9a2d6c01",
		CheckedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		RowCount:    5,
		ColumnCount: 8,
		MissingValues: map[string]int{
			model.ColExperienceLevel: 2,
		},
		CategoricalValues: map[string][]string{
			model.ColExperienceLevel: {"SE", "MI"},
			model.ColEmploymentType:  {"FT"},
			model.ColCompanySize:     {"M", "L"},
			model.ColRemoteRatio:     {"0", "100"},
		},
		Salary: model.SalaryStats{
			Count:  5,
			Mean:   120000.5,
			StdDev: 35000.25,
			Min:    40000,
			Max:    200000,
			Q1:     90000,
			Median: 120000,
			Q3:     150000,
		},
		InvalidResidences: []string{"ZZ"},
		DuplicateRows:     1,
		CleanRowCount:     4,
		ColumnTypes: map[string]string{
			model.ColSalaryUSD:         "int64",
			model.ColEmployeeResidence: "string",
		},
	}
}

func TestWriteQualityReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).WriteQualityReport(sampleReport()))
	out := buf.String()

	t.Run("should include the banner and missing-value counts", func(t *testing.T) {
		assert.Contains(t, out, "FINAL DATA QUALITY CHECK")
		assert.Contains(t, out, model.ColExperienceLevel)
		assert.Contains(t, out, "Missing values per column:")
	})

	t.Run("should include the salary statistics block", func(t *testing.T) {
		assert.Contains(t, out, "Range: 40000 to 200000")
		assert.Contains(t, out, "mean   120000.50")
		assert.Contains(t, out, "std    35000.25")
	})

	t.Run("should report invalid residences and valid locations", func(t *testing.T) {
		assert.Contains(t, out, "Invalid employee residence codes: ZZ")
		assert.Contains(t, out, "All company location codes are valid.")
	})

	t.Run("should include duplicates and the cleaned shape", func(t *testing.T) {
		assert.Contains(t, out, "Total duplicates found: 1")
		assert.Contains(t, out, "New dataset shape: (4, 8)")
	})
}

func TestWriteQualityReport_NoMissingValues(t *testing.T) {
	rep := sampleReport()
	rep.MissingValues = nil

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).WriteQualityReport(rep))

	assert.Contains(t, buf.String(), "No missing values found in any column.")
}

func TestWriteTopCountries(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf).WriteTopCountries(2,
		[]model.GroupCount{{Key: "US", Count: 2}, {Key: "DE", Count: 1}},
		[]model.GroupAverage{{Key: "DE", Average: 300}, {Key: "US", Average: 150}},
	)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "Top 2 countries by number of reported salaries:")
	assert.Contains(t, out, "US")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "150.00")
}

func TestWriteYearlyTrends(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf).WriteYearlyTrends(
		[]model.YearCount{{Year: 2022, Count: 3}},
		[]model.YearAverage{{Year: 2022, Average: 123456.78}},
	)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "Number of salary reports per year:")
	assert.Contains(t, out, "2022  3")
	assert.Contains(t, out, "2022  123456.78")
}
