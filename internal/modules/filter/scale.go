// Package filter provides implementations for filter modules.
// This file implements the "scale" stage: a fixed set of numeric columns
// is standardized to zero mean and unit variance using the mean and
// population standard deviation of the column's current values.
//
// A zero-variance target column is a fatal computation error: standardizing
// a constant column would divide by zero, and emitting NaN into the output
// is never acceptable.
package filter

import (
	"context"
	"log/slog"

	"github.com/tableprep/runtime/internal/errhandling"
	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/internal/stats"
	"github.com/tableprep/runtime/pkg/dataset"
)

// StageScale is the stage name used in scaling errors.
const StageScale = "scale"

// ScaleConfig represents the configuration for a scale stage.
type ScaleConfig struct {
	// Columns lists the columns to standardize; defaults to the fraud
	// dataset's model feature set. Absent columns are skipped.
	Columns []string `json:"columns"`
}

// ScaleModule implements the scale filter stage.
type ScaleModule struct {
	columns []string
}

// NewScaleFromConfig creates a new scale stage from configuration.
func NewScaleFromConfig(config ScaleConfig) *ScaleModule {
	columns := config.Columns
	if len(columns) == 0 {
		columns = []string{
			ColAmount,
			ColTransactionHour,
			ColDeviceTrustScore,
			ColVelocity24h,
			ColCardholderAge,
			ColMerchantCategory + EncodedSuffix,
		}
	}
	return &ScaleModule{columns: columns}
}

// ParseScaleConfig parses a raw configuration map into ScaleConfig.
func ParseScaleConfig(config map[string]interface{}) (ScaleConfig, error) {
	var cfg ScaleConfig
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

// Process standardizes each configured column that is present in the table.
// Int columns are promoted to Float64 by scaling. A table with zero rows
// passes through unchanged.
func (m *ScaleModule) Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	out := table.Clone()
	if out.NumRows() == 0 {
		logger.Warn("scale stage skipped: table has no rows")
		return out, nil
	}

	scaled := 0
	for _, name := range m.columns {
		col, ok := out.Column(name)
		if !ok {
			logger.Debug("scale stage skipping absent column", slog.String("column", name))
			continue
		}
		if !col.Type().Numeric() {
			return nil, errhandling.NewValidationError(StageScale, "column %q is not numeric", name)
		}

		values := col.Floats()
		mean := stats.Mean(values)
		std := stats.PopStdDev(values)
		if std == 0 {
			return nil, errhandling.NewComputationError(StageScale,
				"column %q has zero variance; cannot standardize", name)
		}

		standardized := make([]float64, col.Len())
		for i := 0; i < col.Len(); i++ {
			standardized[i] = (col.Float(i) - mean) / std
		}
		if err := out.ReplaceColumn(name, dataset.NewFloatColumn(name, standardized)); err != nil {
			return nil, err
		}
		scaled++

		logger.Debug("column standardized",
			slog.String("column", name),
			slog.Float64("mean", mean),
			slog.Float64("std_dev", std),
		)
	}

	logger.Info("scale stage completed",
		slog.Int("rows", out.NumRows()),
		slog.Int("columns_scaled", scaled),
	)
	return out, nil
}

// Verify interface compliance at compile time
var _ Module = (*ScaleModule)(nil)
