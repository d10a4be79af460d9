// Package output provides implementations for output modules.
// This file implements the "csv" output module that writes the processed
// table as a delimited file with a header row, creating the output
// directory if needed.
package output

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tableprep/runtime/internal/errhandling"
	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/dataset"
	"github.com/tableprep/runtime/pkg/pipeline"
)

// CSVConfig represents the configuration for a csv output module.
type CSVConfig struct {
	// Directory is the output directory (required); created if absent
	Directory string `json:"directory"`
	// Filename is the output file name; defaults to creditcard_clean.csv
	Filename string `json:"filename"`
}

// CSVModule implements the csv output module.
type CSVModule struct {
	directory string
	filename  string
}

// NewCSVFromConfig creates a new csv output module from configuration.
func NewCSVFromConfig(config CSVConfig) (*CSVModule, error) {
	if config.Directory == "" {
		return nil, errors.New("'directory' is required")
	}
	filename := config.Filename
	if filename == "" {
		filename = pipeline.DefaultOutputFilename
	}
	return &CSVModule{directory: config.Directory, filename: filename}, nil
}

// ParseCSVConfig parses a raw configuration map into CSVConfig.
func ParseCSVConfig(config map[string]interface{}) (CSVConfig, error) {
	var cfg CSVConfig
	if dir, ok := config["directory"].(string); ok {
		cfg.Directory = dir
	}
	if filename, ok := config["filename"].(string); ok {
		cfg.Filename = filename
	}
	if cfg.Directory == "" {
		return cfg, errors.New("'directory' is required")
	}
	return cfg, nil
}

// Destination returns the full output path.
func (m *CSVModule) Destination() string {
	return filepath.Join(m.directory, m.filename)
}

// Write writes the table to the configured path, header row first.
func (m *CSVModule) Write(ctx context.Context, table *dataset.Table) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	if err := os.MkdirAll(m.directory, 0o755); err != nil {
		return 0, errhandling.NewIOError("output", fmt.Errorf("failed to create output directory: %w", err))
	}

	path := m.Destination()
	f, err := os.Create(path)
	if err != nil {
		return 0, errhandling.NewIOError("output", fmt.Errorf("failed to create output file: %w", err))
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.ColumnNames()); err != nil {
		return 0, errhandling.NewIOError("output", err)
	}
	for i := 0; i < table.NumRows(); i++ {
		if err := w.Write(table.RowStrings(i)); err != nil {
			return i, errhandling.NewIOError("output", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return table.NumRows(), errhandling.NewIOError("output", err)
	}

	logger.Info("processed table written",
		"path", path,
		"rows", table.NumRows(),
		"columns", table.NumCols(),
	)
	return table.NumRows(), nil
}

// Close releases resources (no-op; the file handle is scoped to Write).
func (m *CSVModule) Close() error {
	return nil
}

// Verify CSVModule implements Module
var _ Module = (*CSVModule)(nil)
