// Package filter provides implementations for filter modules.
// This file implements the "condition" stage: an optional row filter that
// keeps the rows for which a boolean expression over the row's fields
// evaluates to true. It is not part of the default preprocessing pipeline.
package filter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tableprep/runtime/internal/errhandling"
	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/dataset"
)

// StageCondition is the stage name used in condition errors.
const StageCondition = "condition"

// ErrEmptyExpression is returned when the condition expression is missing.
var ErrEmptyExpression = errors.New("expression cannot be empty")

// ConditionConfig represents the configuration for a condition stage.
type ConditionConfig struct {
	// Expression is the boolean row predicate (required); column names are
	// the expression's variables, e.g. "amount > 0 && merchant_category != 'unknown'"
	Expression string `json:"expression"`
}

// ConditionModule implements the condition filter stage.
type ConditionModule struct {
	expression string
	program    *vm.Program
}

// NewConditionFromConfig creates a new condition stage from configuration.
// The expression is compiled once; compile errors fail construction.
func NewConditionFromConfig(config ConditionConfig) (*ConditionModule, error) {
	if config.Expression == "" {
		return nil, ErrEmptyExpression
	}
	program, err := expr.Compile(config.Expression, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", config.Expression, err)
	}
	return &ConditionModule{expression: config.Expression, program: program}, nil
}

// ParseConditionConfig parses a raw configuration map into ConditionConfig.
func ParseConditionConfig(config map[string]interface{}) (ConditionConfig, error) {
	var cfg ConditionConfig
	if s, ok := config["expression"].(string); ok {
		cfg.Expression = s
	}
	if cfg.Expression == "" {
		return cfg, ErrEmptyExpression
	}
	return cfg, nil
}

// Process evaluates the expression per row and keeps the rows where it is
// true. Evaluation errors fail the run (fail-fast, no partial output).
func (m *ConditionModule) Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	keep := make([]bool, table.NumRows())
	kept := 0
	for i := 0; i < table.NumRows(); i++ {
		env := rowEnv(table, i)
		result, err := vm.Run(m.program, env)
		if err != nil {
			return nil, errhandling.NewValidationError(StageCondition,
				"expression %q failed at row %d: %v", m.expression, i, err)
		}
		matched, ok := result.(bool)
		if !ok {
			return nil, errhandling.NewValidationError(StageCondition,
				"expression %q returned %T at row %d; want bool", m.expression, result, i)
		}
		keep[i] = matched
		if matched {
			kept++
		}
	}

	out, err := table.FilterRows(keep)
	if err != nil {
		return nil, err
	}

	logger.Info("condition stage completed",
		slog.String("expression", m.expression),
		slog.Int("rows_in", table.NumRows()),
		slog.Int("rows_out", kept),
	)
	return out, nil
}

// rowEnv builds the expression environment for row i: one variable per
// column, holding the row's typed value.
func rowEnv(table *dataset.Table, i int) map[string]interface{} {
	env := make(map[string]interface{}, table.NumCols())
	for j := 0; j < table.NumCols(); j++ {
		col := table.ColumnAt(j)
		env[col.Name()] = col.Value(i)
	}
	return env
}

// Verify interface compliance at compile time
var _ Module = (*ConditionModule)(nil)
