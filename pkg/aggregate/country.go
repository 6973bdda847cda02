// pkg/aggregate/country.go
package aggregate

import (
	"errors"
	"fmt"
	"sort"

	"salaryscope/pkg/model"
)

// TopCountriesBySalary groups rows by employee_residence and selects the
// topN countries with the most salary reports. It returns two aligned
// series over that same country set: report counts sorted descending by
// count, and average salaries sorted descending by average. The orderings
// are independent; a country can rank differently on each side.
//
// Ties on count keep first-seen group order. If topN exceeds the number of
// distinct countries, all of them are returned.
func TopCountriesBySalary(ds *model.Dataset, topN int) ([]model.GroupCount, []model.GroupAverage, error) {
	if ds == nil {
		return nil, nil, errors.New("dataset cannot be nil")
	}
	if topN <= 0 {
		return nil, nil, &model.InvalidArgumentError{Name: "topN", Reason: "must be a positive integer"}
	}
	for _, col := range []string{model.ColEmployeeResidence, model.ColSalaryUSD} {
		if !ds.HasColumn(col) {
			return nil, nil, &model.SchemaError{Column: col}
		}
	}

	counts := make(map[string]int)
	sums := make(map[string]float64)
	salaryCounts := make(map[string]int)
	order := make([]string, 0)

	for i, row := range ds.Rows {
		v, ok := row[model.ColEmployeeResidence]
		if !ok || model.IsMissing(v) {
			continue
		}
		key := model.CellString(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++

		sv, ok := row[model.ColSalaryUSD]
		if !ok || model.IsMissing(sv) {
			continue
		}
		salary, err := model.CellFloat(sv)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d, column %s: %w", i, model.ColSalaryUSD, err)
		}
		sums[key] += salary
		salaryCounts[key]++
	}

	// Rank countries by report count; SliceStable keeps first-seen order
	// among equal counts.
	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if topN > len(ranked) {
		topN = len(ranked)
	}
	selected := ranked[:topN]

	countSeries := make([]model.GroupCount, 0, len(selected))
	avgSeries := make([]model.GroupAverage, 0, len(selected))
	for _, key := range selected {
		countSeries = append(countSeries, model.GroupCount{Key: key, Count: counts[key]})

		avg := 0.0
		if salaryCounts[key] > 0 {
			avg = sums[key] / float64(salaryCounts[key])
		}
		avgSeries = append(avgSeries, model.GroupAverage{Key: key, Average: avg})
	}

	sort.SliceStable(avgSeries, func(i, j int) bool {
		return avgSeries[i].Average > avgSeries[j].Average
	})

	return countSeries, avgSeries, nil
}
