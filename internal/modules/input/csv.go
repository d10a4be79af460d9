// Package input provides implementations for input modules.
// This file implements the "csv" input module that loads a delimited table
// file with a header row and infers per-column types.
//
// Type inference follows the narrowest type that fits every non-empty cell:
// int64, then float64, then string. Empty cells are recorded as missing
// values regardless of the inferred type.
package input

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tableprep/runtime/internal/errhandling"
	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/dataset"
)

// CSVConfig represents the configuration for a csv input module.
type CSVConfig struct {
	// Path is the path to the raw CSV file (required)
	Path string `json:"path"`
}

// CSVModule implements the csv input module.
type CSVModule struct {
	path string
}

// NewCSVFromConfig creates a new csv input module from configuration.
func NewCSVFromConfig(config CSVConfig) (*CSVModule, error) {
	if config.Path == "" {
		return nil, errors.New("'path' is required")
	}
	return &CSVModule{path: config.Path}, nil
}

// ParseCSVConfig parses a raw configuration map into CSVConfig.
func ParseCSVConfig(config map[string]interface{}) (CSVConfig, error) {
	var cfg CSVConfig
	if path, ok := config["path"].(string); ok {
		cfg.Path = path
	}
	if cfg.Path == "" {
		return cfg, errors.New("'path' is required")
	}
	return cfg, nil
}

// Fetch reads the CSV file into a table.
func (m *CSVModule) Fetch(ctx context.Context) (*dataset.Table, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := os.Open(m.path)
	if err != nil {
		return nil, errhandling.NewIOError("input", fmt.Errorf("failed to open input file: %w", err))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errhandling.NewIOError("input", fmt.Errorf("failed to read %s: %w", m.path, err))
	}
	if len(records) == 0 {
		return nil, errhandling.NewIOError("input", fmt.Errorf("%s: missing header row", m.path))
	}

	header := records[0]
	rows := records[1:]

	table, err := buildTable(header, rows)
	if err != nil {
		return nil, errhandling.NewIOError("input", err)
	}

	logger.Info("raw table loaded",
		"path", m.path,
		"rows", table.NumRows(),
		"columns", table.NumCols(),
	)
	return table, nil
}

// Close releases resources (no-op; the file handle is scoped to Fetch).
func (m *CSVModule) Close() error {
	return nil
}

// buildTable assembles a typed table from header names and raw row strings.
func buildTable(header []string, rows [][]string) (*dataset.Table, error) {
	cols := make([]*dataset.Column, 0, len(header))
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[j]
		}
		col, err := inferColumn(name, cells)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return dataset.New(cols...)
}

// inferColumn builds a typed column from raw cell text.
func inferColumn(name string, cells []string) (*dataset.Column, error) {
	allInt := true
	allFloat := true
	missing := make([]bool, len(cells))
	hasMissing := false

	for i, cell := range cells {
		if cell == "" {
			missing[i] = true
			hasMissing = true
			continue
		}
		if allInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
			}
		}
	}

	var col *dataset.Column
	switch {
	case allInt:
		vals := make([]int64, len(cells))
		for i, cell := range cells {
			if missing[i] {
				continue
			}
			vals[i], _ = strconv.ParseInt(cell, 10, 64)
		}
		col = dataset.NewIntColumn(name, vals)
	case allFloat:
		vals := make([]float64, len(cells))
		for i, cell := range cells {
			if missing[i] {
				continue
			}
			vals[i], _ = strconv.ParseFloat(cell, 64)
		}
		col = dataset.NewFloatColumn(name, vals)
	default:
		col = dataset.NewStringColumn(name, append([]string(nil), cells...))
	}

	if hasMissing {
		if err := col.SetMissing(missing); err != nil {
			return nil, err
		}
	}
	return col, nil
}

// Verify CSVModule implements Module
var _ Module = (*CSVModule)(nil)
