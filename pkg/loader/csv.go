// pkg/loader/csv.go
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"salaryscope/pkg/model"
)

// LoadCSV reads a delimited salary dataset from disk. The first record is
// treated as the header and becomes the dataset's column list.
func LoadCSV(path string, logger *zap.Logger) (*model.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	ds, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset from %s: %w", path, err)
	}

	if logger != nil {
		logger.Info("Loaded dataset from CSV",
			zap.String("path", path),
			zap.Int("rows", ds.Len()),
			zap.Int("columns", len(ds.Columns)))
	}

	return ds, nil
}

// ReadCSV parses a CSV stream into a Dataset, inferring cell types per
// value. Every record must have the same field count as the header.
func ReadCSV(r io.Reader) (*model.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("input is empty, expected a header record")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	ds := model.NewDataset(header)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := make(model.Row, len(header))
		for i, col := range header {
			row[col] = parseCell(record[i])
		}
		ds.Append(row)
	}

	return ds, nil
}

// parseCell infers a typed cell value. Empty cells are missing; integer and
// float literals get numeric types; everything else stays a string.
func parseCell(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
