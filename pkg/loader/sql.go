// pkg/loader/sql.go
package loader

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"salaryscope/pkg/model"
)

// LoadQuery materializes a warehouse query result as a Dataset. Column
// order follows the result set; row order follows the query.
func LoadQuery(ctx context.Context, db *sqlx.DB, query string, logger *zap.Logger) (*model.Dataset, error) {
	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	ds := model.NewDataset(columns)
	for rows.Next() {
		raw := make(map[string]any, len(columns))
		if err := rows.MapScan(raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(model.Row, len(columns))
		for col, v := range raw {
			row[col] = normalizeCell(v)
		}
		ds.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if logger != nil {
		logger.Info("Loaded dataset from warehouse",
			zap.Int("rows", ds.Len()),
			zap.Int("columns", len(columns)))
	}

	return ds, nil
}

// normalizeCell maps driver values onto the loader's cell types. Text
// columns arrive as []byte from some drivers and get the same type
// inference as CSV cells.
func normalizeCell(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return parseCell(string(val))
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case float32:
		return float64(val)
	default:
		return v
	}
}
