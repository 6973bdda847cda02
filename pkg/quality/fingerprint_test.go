package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salaryscope/pkg/model"
)

func TestRowFingerprint(t *testing.T) {
	columns := []string{"a", "b"}

	t.Run("should be stable for equal rows", func(t *testing.T) {
		x := model.Row{"a": int64(1), "b": "hello"}
		y := model.Row{"a": int64(1), "b": "hello"}

		assert.Equal(t, rowFingerprint(x, columns), rowFingerprint(y, columns))
	})

	t.Run("should distinguish values of different types", func(t *testing.T) {
		asInt := model.Row{"a": int64(100), "b": "x"}
		asString := model.Row{"a": "100", "b": "x"}
		asFloat := model.Row{"a": float64(100), "b": "x"}

		assert.NotEqual(t, rowFingerprint(asInt, columns), rowFingerprint(asString, columns))
		assert.NotEqual(t, rowFingerprint(asInt, columns), rowFingerprint(asFloat, columns))
	})

	t.Run("should distinguish a missing cell from an empty string", func(t *testing.T) {
		missing := model.Row{"a": nil, "b": "x"}
		empty := model.Row{"a": "", "b": "x"}

		assert.NotEqual(t, rowFingerprint(missing, columns), rowFingerprint(empty, columns))
	})

	t.Run("should treat an absent key as a missing cell", func(t *testing.T) {
		absent := model.Row{"b": "x"}
		null := model.Row{"a": nil, "b": "x"}

		assert.Equal(t, rowFingerprint(absent, columns), rowFingerprint(null, columns))
	})

	t.Run("should not let adjacent cells run together", func(t *testing.T) {
		x := model.Row{"a": "ab", "b": "c"}
		y := model.Row{"a": "a", "b": "bc"}

		assert.NotEqual(t, rowFingerprint(x, columns), rowFingerprint(y, columns))
	})
}
