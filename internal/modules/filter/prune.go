// Package filter provides implementations for filter modules.
// This file implements the "prune" stage, which drops the row-identifier
// column and any raw categorical/bin columns still present after encoding.
// If a target column is already absent the table is left unchanged (no
// error).
package filter

import (
	"context"
	"log/slog"

	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/dataset"
)

// PruneConfig represents the configuration for a prune stage.
type PruneConfig struct {
	// Targets is the list of columns to drop; defaults to the identifier
	// plus the raw categorical and bin columns
	Targets []string `json:"targets"`
}

// PruneModule implements the prune filter stage.
type PruneModule struct {
	targets []string
}

// NewPruneFromConfig creates a new prune stage from configuration.
// Duplicate targets are removed while preserving order.
func NewPruneFromConfig(config PruneConfig) *PruneModule {
	targets := config.Targets
	if len(targets) == 0 {
		targets = []string{
			ColTransactionID,
			ColMerchantCategory,
			ColAmountBin,
			ColAgeGroup,
			ColTimePeriod,
		}
	}

	seen := make(map[string]bool, len(targets))
	unique := make([]string, 0, len(targets))
	for _, t := range targets {
		if t != "" && !seen[t] {
			seen[t] = true
			unique = append(unique, t)
		}
	}
	return &PruneModule{targets: unique}
}

// ParsePruneConfig parses a raw configuration map into PruneConfig.
func ParsePruneConfig(config map[string]interface{}) (PruneConfig, error) {
	var cfg PruneConfig
	switch v := config["targets"].(type) {
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				cfg.Targets = append(cfg.Targets, s)
			}
		}
	case []string:
		cfg.Targets = v
	}
	return cfg, nil
}

// Process drops the configured columns from the table.
func (m *PruneModule) Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	out := table.Clone()
	dropped := make([]string, 0, len(m.targets))
	for _, target := range m.targets {
		if out.DropColumn(target) {
			dropped = append(dropped, target)
		}
	}

	logger.Info("prune stage completed",
		slog.Any("columns_dropped", dropped),
		slog.Int("columns_remaining", out.NumCols()),
	)
	return out, nil
}

// Verify interface compliance at compile time
var _ Module = (*PruneModule)(nil)
