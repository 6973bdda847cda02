// pkg/report/console.go
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"salaryscope/pkg/model"
)

// Renderer writes quality reports and aggregate series as plain text.
// It is presentation only: the computational core never prints, so it stays
// testable without a console.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a Renderer targeting the given writer.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// WriteQualityReport renders the full quality check report.
func (r *Renderer) WriteQualityReport(rep *model.QualityReport) error {
	var sb strings.Builder

	sb.WriteString("\n" + strings.Repeat("-", 40) + "\n")
	sb.WriteString("        FINAL DATA QUALITY CHECK\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n\n")

	// Missing values
	if len(rep.MissingValues) == 0 {
		sb.WriteString("No missing values found in any column.\n")
	} else {
		sb.WriteString("Missing values per column:\n")
		for _, col := range sortedKeys(rep.MissingValues) {
			fmt.Fprintf(&sb, "  %-20s %d\n", col, rep.MissingValues[col])
		}
	}

	// Unique values for categorical columns
	sb.WriteString("\nUnique values for categorical columns:\n")
	for _, col := range model.CategoricalColumns() {
		fmt.Fprintf(&sb, "  %s: [%s]\n", col, strings.Join(rep.CategoricalValues[col], " "))
	}

	// Salary ranges and stats
	sb.WriteString("\nSalary (USD) statistics:\n")
	fmt.Fprintf(&sb, "  Range: %.0f to %.0f\n", rep.Salary.Min, rep.Salary.Max)
	fmt.Fprintf(&sb, "  count  %d\n", rep.Salary.Count)
	fmt.Fprintf(&sb, "  mean   %.2f\n", rep.Salary.Mean)
	fmt.Fprintf(&sb, "  std    %.2f\n", rep.Salary.StdDev)
	fmt.Fprintf(&sb, "  min    %.2f\n", rep.Salary.Min)
	fmt.Fprintf(&sb, "  25%%    %.2f\n", rep.Salary.Q1)
	fmt.Fprintf(&sb, "  50%%    %.2f\n", rep.Salary.Median)
	fmt.Fprintf(&sb, "  75%%    %.2f\n", rep.Salary.Q3)
	fmt.Fprintf(&sb, "  max    %.2f\n", rep.Salary.Max)

	// Country code validation
	sb.WriteString("\n")
	if len(rep.InvalidResidences) > 0 {
		fmt.Fprintf(&sb, "Invalid employee residence codes: %s\n", strings.Join(rep.InvalidResidences, ", "))
	} else {
		sb.WriteString("All employee residence codes are valid.\n")
	}
	if len(rep.InvalidLocations) > 0 {
		fmt.Fprintf(&sb, "Invalid company location codes: %s\n", strings.Join(rep.InvalidLocations, ", "))
	} else {
		sb.WriteString("All company location codes are valid.\n")
	}

	// Duplicates and final shape
	fmt.Fprintf(&sb, "\nTotal duplicates found: %d\n", rep.DuplicateRows)
	fmt.Fprintf(&sb, "Duplicates removed. New dataset shape: (%d, %d)\n", rep.CleanRowCount, rep.ColumnCount)

	sb.WriteString("\nColumn data types:\n")
	for _, col := range sortedKeys(rep.ColumnTypes) {
		fmt.Fprintf(&sb, "  %-20s %s\n", col, rep.ColumnTypes[col])
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// WriteTopCountries renders the aligned top-N country series.
func (r *Renderer) WriteTopCountries(topN int, counts []model.GroupCount, averages []model.GroupAverage) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nTop %d countries by number of reported salaries:\n", topN)
	for _, c := range counts {
		fmt.Fprintf(&sb, "  %-10s %d\n", c.Key, c.Count)
	}

	fmt.Fprintf(&sb, "\nAverage salary (USD) for those top %d countries:\n", topN)
	for _, a := range averages {
		fmt.Fprintf(&sb, "  %-10s %.2f\n", a.Key, a.Average)
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// WriteYearlyTrends renders the per-year count and average series.
func (r *Renderer) WriteYearlyTrends(counts []model.YearCount, averages []model.YearAverage) error {
	var sb strings.Builder

	sb.WriteString("\nNumber of salary reports per year:\n")
	for _, c := range counts {
		fmt.Fprintf(&sb, "  %d  %d\n", c.Year, c.Count)
	}

	sb.WriteString("\nAverage reported salary (USD) per year:\n")
	for _, a := range averages {
		fmt.Fprintf(&sb, "  %d  %.2f\n", a.Year, a.Average)
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
