// Package filter provides implementations for filter modules.
// This file implements the "clean" stage: rows containing missing values
// are dropped (no imputation), then exact-duplicate rows are dropped,
// keeping the first occurrence.
package filter

import (
	"context"
	"log/slog"

	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/dataset"
)

// CleanModule implements the clean filter stage.
type CleanModule struct{}

// NewClean creates a new clean stage.
func NewClean() *CleanModule {
	return &CleanModule{}
}

// Process drops rows with missing values, then duplicate rows.
// An empty result table is valid and propagates to later stages.
func (m *CleanModule) Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	withoutMissing, missingDropped, err := dropMissing(table)
	if err != nil {
		return nil, err
	}

	deduped, duplicatesDropped, err := dropDuplicates(withoutMissing)
	if err != nil {
		return nil, err
	}

	logger.Info("clean stage completed",
		slog.Int("rows_in", table.NumRows()),
		slog.Int("rows_with_missing_dropped", missingDropped),
		slog.Int("duplicate_rows_dropped", duplicatesDropped),
		slog.Int("rows_out", deduped.NumRows()),
	)
	return deduped, nil
}

// dropMissing removes every row that has a missing value in any column and
// logs the per-column missing counts.
func dropMissing(table *dataset.Table) (*dataset.Table, int, error) {
	keep := make([]bool, table.NumRows())
	for i := range keep {
		keep[i] = true
	}

	dropped := 0
	for j := 0; j < table.NumCols(); j++ {
		col := table.ColumnAt(j)
		if count := col.MissingCount(); count > 0 {
			logger.Info("missing values detected",
				slog.String("column", col.Name()),
				slog.Int("count", count),
			)
		}
	}
	for i := 0; i < table.NumRows(); i++ {
		for j := 0; j < table.NumCols(); j++ {
			if table.ColumnAt(j).IsMissing(i) {
				keep[i] = false
				dropped++
				break
			}
		}
	}

	out, err := table.FilterRows(keep)
	if err != nil {
		return nil, 0, err
	}
	return out, dropped, nil
}

// dropDuplicates removes rows that are exact duplicates of an earlier row
// across all columns, keeping the first occurrence.
func dropDuplicates(table *dataset.Table) (*dataset.Table, int, error) {
	seen := make(map[string]struct{}, table.NumRows())
	keep := make([]bool, table.NumRows())
	dropped := 0

	for i := 0; i < table.NumRows(); i++ {
		key := table.RowKey(i)
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		keep[i] = true
	}

	out, err := table.FilterRows(keep)
	if err != nil {
		return nil, 0, err
	}
	return out, dropped, nil
}

// Verify interface compliance at compile time
var _ Module = (*CleanModule)(nil)
