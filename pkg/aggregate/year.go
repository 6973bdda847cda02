// pkg/aggregate/year.go
package aggregate

import (
	"errors"
	"fmt"
	"sort"

	"salaryscope/pkg/model"
)

// YearlyTrends groups rows by work_year and returns the report count and
// average salary per year. Both series are sorted ascending by year; unlike
// the country aggregation, year is the natural sort key.
func YearlyTrends(ds *model.Dataset) ([]model.YearCount, []model.YearAverage, error) {
	if ds == nil {
		return nil, nil, errors.New("dataset cannot be nil")
	}
	for _, col := range []string{model.ColWorkYear, model.ColSalaryUSD} {
		if !ds.HasColumn(col) {
			return nil, nil, &model.SchemaError{Column: col}
		}
	}

	counts := make(map[int]int)
	sums := make(map[int]float64)
	salaryCounts := make(map[int]int)

	for i, row := range ds.Rows {
		v, ok := row[model.ColWorkYear]
		if !ok || model.IsMissing(v) {
			continue
		}
		year64, err := model.CellInt(v)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d, column %s: %w", i, model.ColWorkYear, err)
		}
		year := int(year64)
		counts[year]++

		sv, ok := row[model.ColSalaryUSD]
		if !ok || model.IsMissing(sv) {
			continue
		}
		salary, err := model.CellFloat(sv)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d, column %s: %w", i, model.ColSalaryUSD, err)
		}
		sums[year] += salary
		salaryCounts[year]++
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	countSeries := make([]model.YearCount, 0, len(years))
	avgSeries := make([]model.YearAverage, 0, len(years))
	for _, year := range years {
		countSeries = append(countSeries, model.YearCount{Year: year, Count: counts[year]})

		avg := 0.0
		if salaryCounts[year] > 0 {
			avg = sums[year] / float64(salaryCounts[year])
		}
		avgSeries = append(avgSeries, model.YearAverage{Year: year, Average: avg})
	}

	return countSeries, avgSeries, nil
}
