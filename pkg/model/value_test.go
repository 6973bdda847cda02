package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(nil))
	assert.False(t, IsMissing(""))
	assert.False(t, IsMissing(int64(0)))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "US", CellString("US"))
	assert.Equal(t, "100", CellString(int64(100)))
	assert.Equal(t, "0.5", CellString(0.5))
}

func TestCellFloat(t *testing.T) {
	t.Run("should coerce numeric cells", func(t *testing.T) {
		f, err := CellFloat(int64(100))
		require.NoError(t, err)
		assert.Equal(t, 100.0, f)

		f, err = CellFloat("42.5")
		require.NoError(t, err)
		assert.Equal(t, 42.5, f)
	})

	t.Run("should fail on missing and non-numeric cells", func(t *testing.T) {
		_, err := CellFloat(nil)
		assert.Error(t, err)

		_, err = CellFloat("not a number")
		assert.Error(t, err)
	})
}

func TestCellInt(t *testing.T) {
	i, err := CellInt(int64(2022))
	require.NoError(t, err)
	assert.Equal(t, int64(2022), i)

	_, err = CellInt(nil)
	assert.Error(t, err)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "unknown", TypeName(nil))
	assert.Equal(t, "string", TypeName("US"))
	assert.Equal(t, "int64", TypeName(int64(1)))
	assert.Equal(t, "float64", TypeName(0.5))
	assert.Equal(t, "bool", TypeName(true))
}
