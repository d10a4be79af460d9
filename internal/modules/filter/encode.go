// Package filter provides implementations for filter modules.
// This file implements the "encode" stage: each categorical column's
// distinct values are sorted and assigned integers 0..n-1 in that order,
// a new <name>_encoded column is appended, and the original column is
// removed. Sorting makes the mapping independent of row order.
package filter

import (
	"context"
	"log/slog"
	"sort"

	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/dataset"
)

// EncodeConfig represents the configuration for an encode stage.
type EncodeConfig struct {
	// Columns lists the categorical columns to encode, in order; defaults
	// to merchant_category plus the three derived bin columns
	Columns []string `json:"columns"`
}

// EncodeModule implements the encode filter stage.
type EncodeModule struct {
	columns []string
}

// NewEncodeFromConfig creates a new encode stage from configuration.
func NewEncodeFromConfig(config EncodeConfig) *EncodeModule {
	columns := config.Columns
	if len(columns) == 0 {
		columns = []string{ColMerchantCategory, ColAmountBin, ColAgeGroup, ColTimePeriod}
	}
	return &EncodeModule{columns: columns}
}

// ParseEncodeConfig parses a raw configuration map into EncodeConfig.
func ParseEncodeConfig(config map[string]interface{}) (EncodeConfig, error) {
	var cfg EncodeConfig
	switch v := config["columns"].(type) {
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				cfg.Columns = append(cfg.Columns, s)
			}
		}
	case []string:
		cfg.Columns = v
	}
	return cfg, nil
}

// EncodingTable maps a column's distinct category values (as text) to the
// integers assigned to them. It is rebuilt on every run and never persisted.
type EncodingTable map[string]int

// buildEncoding returns the sorted-order encoding table for a column.
func buildEncoding(col *dataset.Column) EncodingTable {
	distinct := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		distinct[col.Text(i)] = struct{}{}
	}
	values := make([]string, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Strings(values)

	table := make(EncodingTable, len(values))
	for idx, v := range values {
		table[v] = idx
	}
	return table
}

// Process encodes each configured column. Columns absent from the table are
// skipped silently.
func (m *EncodeModule) Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	out := table.Clone()
	encoded := 0
	for _, name := range m.columns {
		col, ok := out.Column(name)
		if !ok {
			logger.Debug("encode stage skipping absent column", slog.String("column", name))
			continue
		}

		mapping := buildEncoding(col)
		codes := make([]int64, col.Len())
		for i := 0; i < col.Len(); i++ {
			codes[i] = int64(mapping[col.Text(i)])
		}

		if err := out.AddColumn(dataset.NewIntColumn(name+EncodedSuffix, codes)); err != nil {
			return nil, err
		}
		out.DropColumn(name)
		encoded++

		logger.Info("categorical column encoded",
			slog.String("column", name),
			slog.Int("categories", len(mapping)),
		)
	}

	logger.Info("encode stage completed",
		slog.Int("rows", out.NumRows()),
		slog.Int("columns_encoded", encoded),
	)
	return out, nil
}

// Verify interface compliance at compile time
var _ Module = (*EncodeModule)(nil)
