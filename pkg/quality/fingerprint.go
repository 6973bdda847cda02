// pkg/quality/fingerprint.go
package quality

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"salaryscope/pkg/model"
)

// cellSeparator keeps adjacent cells from running together in the digest.
const cellSeparator = "\x1f"

// rowFingerprint hashes a row's cells in schema column order. Encodings are
// type-tagged so that, for example, int64(100) and "100" never collide:
// duplicate detection uses exact value equality, not coerced equality.
func rowFingerprint(row model.Row, columns []string) uint64 {
	digest := xxhash.New()

	for _, col := range columns {
		v, ok := row[col]
		if !ok {
			v = nil
		}

		switch val := v.(type) {
		case nil:
			digest.WriteString("n:")
		case string:
			digest.WriteString("s:")
			digest.WriteString(val)
		case int64:
			digest.WriteString("i:")
			digest.WriteString(strconv.FormatInt(val, 10))
		case float64:
			digest.WriteString("f:")
			digest.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
		case bool:
			digest.WriteString("b:")
			digest.WriteString(strconv.FormatBool(val))
		default:
			digest.WriteString("x:")
			digest.WriteString(model.CellString(v))
		}
		digest.WriteString(cellSeparator)
	}

	return digest.Sum64()
}
