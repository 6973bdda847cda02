package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISORegistry(t *testing.T) {
	reg := NewISORegistry()

	t.Run("should accept assigned alpha-2 codes", func(t *testing.T) {
		for _, code := range []string{"US", "DE", "GB", "IN", "JP"} {
			assert.True(t, reg.IsValidCode(code), code)
		}
	})

	t.Run("should accept lowercase input", func(t *testing.T) {
		assert.True(t, reg.IsValidCode("us"))
	})

	t.Run("should reject unassigned codes", func(t *testing.T) {
		assert.False(t, reg.IsValidCode("ZZ"))
	})

	t.Run("should reject anything that is not two letters", func(t *testing.T) {
		assert.False(t, reg.IsValidCode(""))
		assert.False(t, reg.IsValidCode("U"))
		assert.False(t, reg.IsValidCode("USA"))
		assert.False(t, reg.IsValidCode("Kosovo"))
	})
}

func TestStaticRegistry(t *testing.T) {
	reg := NewStaticRegistry("US", "de")

	t.Run("should match members case-insensitively", func(t *testing.T) {
		assert.True(t, reg.IsValidCode("US"))
		assert.True(t, reg.IsValidCode("us"))
		assert.True(t, reg.IsValidCode("DE"))
	})

	t.Run("should reject non-members", func(t *testing.T) {
		assert.False(t, reg.IsValidCode("GB"))
		assert.False(t, reg.IsValidCode(""))
	})

	t.Run("should reject everything when empty", func(t *testing.T) {
		empty := NewStaticRegistry()
		assert.False(t, empty.IsValidCode("US"))
	})
}
