// Package filter provides implementations for filter modules.
// This file implements the "capOutliers" stage: per numeric column, values
// outside the 1.5*IQR fences are replaced with the fence value (capping,
// not row removal). Bounds are computed from each column's pre-capping
// values, so capping one column never influences another.
package filter

import (
	"context"
	"log/slog"

	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/internal/stats"
	"github.com/tableprep/runtime/pkg/dataset"
)

// OutliersConfig represents the configuration for a capOutliers stage.
type OutliersConfig struct {
	// IDColumn is the row-identifier column to leave uncapped;
	// defaults to transaction_id
	IDColumn string `json:"idColumn"`
}

// OutliersModule implements the capOutliers filter stage.
type OutliersModule struct {
	idColumn string
}

// NewOutliersFromConfig creates a new capOutliers stage from configuration.
func NewOutliersFromConfig(config OutliersConfig) *OutliersModule {
	idColumn := config.IDColumn
	if idColumn == "" {
		idColumn = ColTransactionID
	}
	return &OutliersModule{idColumn: idColumn}
}

// ParseOutliersConfig parses a raw configuration map into OutliersConfig.
func ParseOutliersConfig(config map[string]interface{}) (OutliersConfig, error) {
	var cfg OutliersConfig
	if id, ok := config["idColumn"].(string); ok {
		cfg.IDColumn = id
	}
	return cfg, nil
}

// Process caps every numeric column except the identifier column.
func (m *OutliersModule) Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	out := table.Clone()
	capped := 0
	for _, name := range out.ColumnNames() {
		col, _ := out.Column(name)
		if !col.Type().Numeric() || name == m.idColumn {
			continue
		}

		values := col.Floats()
		if len(values) == 0 {
			continue
		}
		lower, upper := stats.IQRBounds(values)

		replacement, changed := capColumn(col, lower, upper)
		if changed == 0 {
			continue
		}
		if err := out.ReplaceColumn(name, replacement); err != nil {
			return nil, err
		}
		capped += changed

		logger.Debug("outliers capped",
			slog.String("column", name),
			slog.Float64("lower_bound", lower),
			slog.Float64("upper_bound", upper),
			slog.Int("values_capped", changed),
		)
	}

	logger.Info("capOutliers stage completed",
		slog.Int("rows", out.NumRows()),
		slog.Int("values_capped", capped),
	)
	return out, nil
}

// capColumn clips col into [lower, upper] and returns the resulting column
// plus the number of values changed. Int columns keep their dtype unless a
// value is capped to a non-integral bound, in which case the whole column
// is promoted to Float64.
func capColumn(col *dataset.Column, lower, upper float64) (*dataset.Column, int) {
	n := col.Len()
	clipped := make([]float64, n)
	changed := 0
	integral := true

	for i := 0; i < n; i++ {
		v := col.Float(i)
		switch {
		case v < lower:
			v = lower
			changed++
		case v > upper:
			v = upper
			changed++
		}
		if v != float64(int64(v)) {
			integral = false
		}
		clipped[i] = v
	}

	if changed == 0 {
		return col, 0
	}
	if col.Type() == dataset.Int64 && integral {
		ints := make([]int64, n)
		for i, v := range clipped {
			ints[i] = int64(v)
		}
		return dataset.NewIntColumn(col.Name(), ints), changed
	}
	return dataset.NewFloatColumn(col.Name(), clipped), changed
}

// Verify interface compliance at compile time
var _ Module = (*OutliersModule)(nil)
