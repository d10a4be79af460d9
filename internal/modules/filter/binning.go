// Package filter provides implementations for filter modules.
// This file implements the "bin" stage, which derives three categorical
// columns from continuous ones:
//
//   - amount_bin: 3 equal-width intervals over the observed amount range,
//     labeled Low/Medium/High; min and max are both inclusive, interior
//     boundaries belong to the lower interval.
//   - age_group: fixed edges 0,25,35,50,65,100 labeled Youth/Young Adult/
//     Middle Age/Senior/Elderly; lowest-inclusive, right-inclusive.
//   - time_period: fixed edges 0,6,12,18,24 labeled Night/Morning/
//     Afternoon/Evening; left-inclusive, right-exclusive.
//
// A value outside a fixed-edge domain is a validation error, not a missing
// category.
package filter

import (
	"context"
	"log/slog"

	"github.com/tableprep/runtime/internal/errhandling"
	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/internal/stats"
	"github.com/tableprep/runtime/pkg/dataset"
)

// StageBin is the stage name used in binning errors.
const StageBin = "bin"

// Fixed bin edges and labels.
var (
	amountLabels = []string{"Low", "Medium", "High"}

	ageEdges  = []float64{0, 25, 35, 50, 65, 100}
	ageLabels = []string{"Youth", "Young Adult", "Middle Age", "Senior", "Elderly"}

	hourEdges  = []float64{0, 6, 12, 18, 24}
	hourLabels = []string{"Night", "Morning", "Afternoon", "Evening"}
)

// BinConfig represents the configuration for a bin stage.
type BinConfig struct {
	// AmountColumn is the source for amount_bin; defaults to amount
	AmountColumn string `json:"amountColumn"`
	// AgeColumn is the source for age_group; defaults to cardholder_age
	AgeColumn string `json:"ageColumn"`
	// HourColumn is the source for time_period; defaults to transaction_hour
	HourColumn string `json:"hourColumn"`
}

// BinModule implements the bin filter stage.
type BinModule struct {
	amountColumn string
	ageColumn    string
	hourColumn   string
}

// NewBinFromConfig creates a new bin stage from configuration.
func NewBinFromConfig(config BinConfig) *BinModule {
	m := &BinModule{
		amountColumn: config.AmountColumn,
		ageColumn:    config.AgeColumn,
		hourColumn:   config.HourColumn,
	}
	if m.amountColumn == "" {
		m.amountColumn = ColAmount
	}
	if m.ageColumn == "" {
		m.ageColumn = ColCardholderAge
	}
	if m.hourColumn == "" {
		m.hourColumn = ColTransactionHour
	}
	return m
}

// ParseBinConfig parses a raw configuration map into BinConfig.
func ParseBinConfig(config map[string]interface{}) (BinConfig, error) {
	var cfg BinConfig
	if s, ok := config["amountColumn"].(string); ok {
		cfg.AmountColumn = s
	}
	if s, ok := config["ageColumn"].(string); ok {
		cfg.AgeColumn = s
	}
	if s, ok := config["hourColumn"].(string); ok {
		cfg.HourColumn = s
	}
	return cfg, nil
}

// Process appends the three derived bin columns. Source columns are left in
// place; the prune stage removes them later.
func (m *BinModule) Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	out := table.Clone()

	amountBin, err := m.binAmount(out)
	if err != nil {
		return nil, err
	}
	if err := out.AddColumn(amountBin); err != nil {
		return nil, err
	}

	ageGroup, err := binFixed(out, m.ageColumn, ColAgeGroup, ageEdges, ageLabels, true)
	if err != nil {
		return nil, err
	}
	if err := out.AddColumn(ageGroup); err != nil {
		return nil, err
	}

	timePeriod, err := binFixed(out, m.hourColumn, ColTimePeriod, hourEdges, hourLabels, false)
	if err != nil {
		return nil, err
	}
	if err := out.AddColumn(timePeriod); err != nil {
		return nil, err
	}

	logger.Info("bin stage completed",
		slog.Int("rows", out.NumRows()),
		slog.Int("derived_columns", 3),
	)
	return out, nil
}

// binAmount builds the amount_bin column: three equal-width intervals over
// the observed amount range, interior boundaries right-inclusive. If the
// range is degenerate (min == max) every row gets the lowest label.
func (m *BinModule) binAmount(table *dataset.Table) (*dataset.Column, error) {
	col, ok := table.Column(m.amountColumn)
	if !ok {
		return nil, errhandling.NewValidationError(StageBin, "column %q not found", m.amountColumn)
	}
	if !col.Type().Numeric() {
		return nil, errhandling.NewValidationError(StageBin, "column %q is not numeric", m.amountColumn)
	}

	min, max := stats.MinMax(col.Floats())
	width := (max - min) / float64(len(amountLabels))
	labels := make([]string, col.Len())
	for i := 0; i < col.Len(); i++ {
		v := col.Float(i)
		idx := 0
		for idx < len(amountLabels)-1 && v > min+width*float64(idx+1) {
			idx++
		}
		labels[i] = amountLabels[idx]
	}
	return dataset.NewStringColumn(ColAmountBin, labels), nil
}

// binFixed builds a derived column from fixed edges. With rightInclusive,
// interval i covers (edges[i], edges[i+1]] and the lowest edge is included
// in the first interval; otherwise interval i covers [edges[i], edges[i+1]).
// Values outside the edge range fail with a validation error.
func binFixed(table *dataset.Table, source, derived string, edges []float64, labels []string, rightInclusive bool) (*dataset.Column, error) {
	col, ok := table.Column(source)
	if !ok {
		return nil, errhandling.NewValidationError(StageBin, "column %q not found", source)
	}
	if !col.Type().Numeric() {
		return nil, errhandling.NewValidationError(StageBin, "column %q is not numeric", source)
	}

	out := make([]string, col.Len())
	for i := 0; i < col.Len(); i++ {
		v := col.Float(i)
		idx, ok := bucketOf(v, edges, rightInclusive)
		if !ok {
			return nil, errhandling.NewValidationError(StageBin,
				"value %v in column %q (row %d) is outside the %s domain [%v, %v%s",
				v, source, i, derived, edges[0], edges[len(edges)-1], domainClose(rightInclusive))
		}
		out[i] = labels[idx]
	}
	return dataset.NewStringColumn(derived, out), nil
}

// bucketOf returns the interval index for v, or false if v is out of domain.
func bucketOf(v float64, edges []float64, rightInclusive bool) (int, bool) {
	first, last := edges[0], edges[len(edges)-1]
	if rightInclusive {
		if v < first || v > last {
			return 0, false
		}
		for i := 1; i < len(edges); i++ {
			if v <= edges[i] {
				return i - 1, true
			}
		}
		// v == edges[0] falls through only when it equals every edge
		return 0, true
	}
	if v < first || v >= last {
		return 0, false
	}
	for i := 1; i < len(edges); i++ {
		if v < edges[i] {
			return i - 1, true
		}
	}
	return len(edges) - 2, true
}

func domainClose(rightInclusive bool) string {
	if rightInclusive {
		return "]"
	}
	return ")"
}

// Verify interface compliance at compile time
var _ Module = (*BinModule)(nil)
