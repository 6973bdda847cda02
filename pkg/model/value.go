// pkg/model/value.go
package model

import (
	"fmt"

	"github.com/spf13/cast"
)

// IsMissing reports whether a cell value counts as absent/null.
func IsMissing(v any) bool {
	return v == nil
}

// CellString renders a cell value for inventories and group keys.
func CellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return cast.ToString(v)
}

// CellFloat coerces a numeric cell to float64. Strings holding numbers are
// accepted, matching the loader's lenient cell typing.
func CellFloat(v any) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("missing value")
	}
	return cast.ToFloat64E(v)
}

// CellInt coerces a numeric cell to int64.
func CellInt(v any) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("missing value")
	}
	return cast.ToInt64E(v)
}

// TypeName returns the dtype label used in the report's column inventory.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "unknown"
	case string:
		return "string"
	case int64:
		return "int64"
	case float64:
		return "float64"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}
