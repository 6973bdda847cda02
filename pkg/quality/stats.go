// pkg/quality/stats.go
package quality

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"salaryscope/pkg/model"
)

// describeSalaries computes the descriptive statistics bundle over the
// salary_in_usd column. Missing cells are skipped; if no values remain the
// mean and standard deviation are undefined and an EmptyColumnError is
// returned instead of NaN.
func describeSalaries(ds *model.Dataset) (model.SalaryStats, error) {
	if ds.Len() == 0 {
		return model.SalaryStats{}, &model.EmptyColumnError{Column: model.ColSalaryUSD}
	}

	values := make([]float64, 0, ds.Len())
	for i, row := range ds.Rows {
		v, ok := row[model.ColSalaryUSD]
		if !ok || model.IsMissing(v) {
			continue
		}
		f, err := model.CellFloat(v)
		if err != nil {
			return model.SalaryStats{}, fmt.Errorf("row %d, column %s: %w", i, model.ColSalaryUSD, err)
		}
		values = append(values, f)
	}

	if len(values) == 0 {
		return model.SalaryStats{}, &model.EmptyColumnError{Column: model.ColSalaryUSD}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	stats := model.SalaryStats{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		Q3:     percentile(sorted, 0.75),
	}

	// Sample standard deviation needs at least two observations.
	if len(values) > 1 {
		stats.StdDev = stat.StdDev(values, nil)
	}

	return stats, nil
}

// percentile returns the p-quantile of ascending-sorted values using linear
// interpolation on rank h = (n-1)*p.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
