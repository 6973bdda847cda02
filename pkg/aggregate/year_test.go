package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salaryscope/pkg/model"
)

func TestYearlyTrends(t *testing.T) {
	t.Run("should return both series in ascending year order", func(t *testing.T) {
		ds := countryDataset(
			countryRow("US", int64(200), 2022),
			countryRow("DE", int64(100), 2020),
			countryRow("GB", int64(400), 2022),
			countryRow("IN", int64(150), 2021),
		)

		counts, averages, err := YearlyTrends(ds)
		require.NoError(t, err)

		assert.Equal(t, []model.YearCount{
			{Year: 2020, Count: 1},
			{Year: 2021, Count: 1},
			{Year: 2022, Count: 2},
		}, counts)
		assert.Equal(t, []model.YearAverage{
			{Year: 2020, Average: 100},
			{Year: 2021, Average: 150},
			{Year: 2022, Average: 300},
		}, averages)
	})

	t.Run("should skip rows with a missing year", func(t *testing.T) {
		ds := countryDataset(
			countryRow("US", int64(100), 2022),
			model.Row{model.ColEmployeeResidence: "US", model.ColSalaryUSD: int64(999), model.ColWorkYear: nil},
		)

		counts, _, err := YearlyTrends(ds)
		require.NoError(t, err)

		assert.Equal(t, []model.YearCount{{Year: 2022, Count: 1}}, counts)
	})

	t.Run("should count rows with a missing salary but exclude them from averages", func(t *testing.T) {
		ds := countryDataset(
			countryRow("US", int64(100), 2022),
			countryRow("DE", nil, 2022),
		)

		counts, averages, err := YearlyTrends(ds)
		require.NoError(t, err)

		assert.Equal(t, 2, counts[0].Count)
		assert.InDelta(t, 100.0, averages[0].Average, 1e-9)
	})

	t.Run("should reject a nil dataset", func(t *testing.T) {
		_, _, err := YearlyTrends(nil)
		assert.Error(t, err)
	})

	t.Run("should fail with SchemaError when work_year is absent", func(t *testing.T) {
		ds := model.NewDataset([]string{model.ColSalaryUSD})

		_, _, err := YearlyTrends(ds)

		var schemaErr *model.SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})

	t.Run("should return empty series for an empty dataset", func(t *testing.T) {
		counts, averages, err := YearlyTrends(countryDataset())
		require.NoError(t, err)

		assert.Empty(t, counts)
		assert.Empty(t, averages)
	})
}
