// Package runtime provides the pipeline execution engine.
// It orchestrates the execution of Input, Filter, and Output modules over a
// single table artifact: strictly sequential, fail-fast, no partial output.
package runtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/internal/modules/filter"
	"github.com/tableprep/runtime/internal/modules/input"
	"github.com/tableprep/runtime/internal/modules/output"
	"github.com/tableprep/runtime/pkg/dataset"
	"github.com/tableprep/runtime/pkg/pipeline"
)

// Error codes for pipeline execution errors
const (
	ErrCodeInputFailed  = "INPUT_FAILED"
	ErrCodeFilterFailed = "FILTER_FAILED"
	ErrCodeOutputFailed = "OUTPUT_FAILED"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// Execution status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common errors
var (
	// ErrNilPipeline is returned when pipeline configuration is nil
	ErrNilPipeline = errors.New("pipeline configuration is nil")

	// ErrNilInputModule is returned when input module is nil
	ErrNilInputModule = errors.New("input module is nil")

	// ErrNilOutputModule is returned when output module is nil
	ErrNilOutputModule = errors.New("output module is nil")
)

// Executor is responsible for executing pipeline configurations.
// It orchestrates the execution flow: Input → Filters → Output.
//
// The Executor only interacts with modules through their public interfaces,
// so modules can be developed independently without depending on runtime
// internals.
type Executor struct {
	inputModule   input.Module
	filterModules []filter.Module
	outputModule  output.Module
	dryRun        bool
}

// NewExecutor creates a new pipeline executor with all modules configured.
//
// Parameters:
//   - inputModule: loads the raw table
//   - filterModules: ordered table transformation stages (can be nil)
//   - outputModule: writes the processed table
//   - dryRun: if true, skips the output module (validation only)
func NewExecutor(
	inputModule input.Module,
	filterModules []filter.Module,
	outputModule output.Module,
	dryRun bool,
) *Executor {
	return &Executor{
		inputModule:   inputModule,
		filterModules: filterModules,
		outputModule:  outputModule,
		dryRun:        dryRun,
	}
}

// Execute runs a pipeline configuration with a background context.
// For cancellation support, use ExecuteWithContext instead.
func (e *Executor) Execute(p *pipeline.Pipeline) (*pipeline.ExecutionResult, error) {
	return e.ExecuteWithContext(context.Background(), p)
}

// ExecuteWithContext runs a pipeline configuration with the given context.
//
// Execution flow:
//  1. Validate pipeline and modules
//  2. Execute the input module to load the raw table
//  3. Execute the filter stages in sequence over the table
//  4. Summarize original vs. processed tables into a report
//  5. Execute the output module (unless dry-run mode)
//
// The first stage error aborts the remaining pipeline; no partial table is
// persisted on failure.
func (e *Executor) ExecuteWithContext(ctx context.Context, p *pipeline.Pipeline) (*pipeline.ExecutionResult, error) {
	result := &pipeline.ExecutionResult{
		ExecutionID: uuid.NewString(),
		Status:      StatusError,
		StartedAt:   time.Now(),
	}
	defer func() { result.CompletedAt = time.Now() }()

	if err := e.validateExecution(p, result); err != nil {
		return result, err
	}
	result.PipelineID = p.ID

	log := logger.WithPipeline(p.ID)
	log.Info("pipeline execution started",
		slog.String("execution_id", result.ExecutionID),
		slog.String("pipeline_name", p.Name),
		slog.Int("filters", len(e.filterModules)),
		slog.Bool("dry_run", e.dryRun),
	)

	// Input
	raw, err := e.executeInput(ctx, log)
	if err != nil {
		result.Error = &pipeline.ExecutionError{Code: ErrCodeInputFailed, Stage: "input", Message: err.Error()}
		return result, err
	}
	result.RowsIn = raw.NumRows()

	// Filters
	processed, failedIdx, err := e.executeFilters(ctx, log, raw)
	if err != nil {
		stage := "filter"
		if failedIdx >= 0 && failedIdx < len(p.Filters) {
			stage = p.Filters[failedIdx].Type
		}
		result.Error = &pipeline.ExecutionError{Code: ErrCodeFilterFailed, Stage: stage, Message: err.Error()}
		return result, err
	}
	result.RowsOut = processed.NumRows()
	result.Report = Summarize(raw, processed, filter.ColIsFraud)

	// Output
	if e.dryRun {
		log.Info("dry-run mode: skipping output module",
			slog.Int("rows_would_write", processed.NumRows()),
		)
	} else {
		written, err := e.executeOutput(ctx, log, processed)
		if err != nil {
			result.Error = &pipeline.ExecutionError{Code: ErrCodeOutputFailed, Stage: "output", Message: err.Error()}
			return result, err
		}
		result.OutputPath = e.outputModule.Destination()
		log.Info("output completed", slog.Int("rows_written", written))
	}

	result.Status = StatusSuccess
	log.Info("pipeline execution completed",
		slog.String("execution_id", result.ExecutionID),
		slog.Int("rows_in", result.RowsIn),
		slog.Int("rows_out", result.RowsOut),
		slog.Duration("duration", time.Since(result.StartedAt)),
	)
	return result, nil
}

// validateExecution checks that the pipeline and modules are usable.
func (e *Executor) validateExecution(p *pipeline.Pipeline, result *pipeline.ExecutionResult) error {
	var err error
	switch {
	case p == nil:
		err = ErrNilPipeline
	case e.inputModule == nil:
		err = ErrNilInputModule
	case e.outputModule == nil && !e.dryRun:
		err = ErrNilOutputModule
	}
	if err != nil {
		result.Error = &pipeline.ExecutionError{Code: ErrCodeInvalidInput, Message: err.Error()}
		return err
	}
	return nil
}

// executeInput runs the input module and closes it immediately afterwards;
// the loaded table stays in memory for the rest of the run.
func (e *Executor) executeInput(ctx context.Context, log *slog.Logger) (*dataset.Table, error) {
	start := time.Now()
	table, err := e.inputModule.Fetch(ctx)
	if closeErr := e.inputModule.Close(); closeErr != nil {
		log.Warn("input module close failed", slog.String("error", closeErr.Error()))
	}
	if err != nil {
		log.Error("input module execution failed",
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	log.Debug("input module completed",
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumCols()),
		slog.Duration("duration", time.Since(start)),
	)
	return table, nil
}

// executeFilters runs all filter stages in sequence on the table.
// Returns the transformed table, or the index of the failed stage and its
// error.
func (e *Executor) executeFilters(ctx context.Context, log *slog.Logger, table *dataset.Table) (*dataset.Table, int, error) {
	current := table
	for i, stage := range e.filterModules {
		if stage == nil {
			log.Warn("nil filter module encountered; skipping", slog.Int("filter_index", i))
			continue
		}

		start := time.Now()
		next, err := stage.Process(ctx, current)
		if err != nil {
			log.Error("filter stage execution failed",
				slog.Int("filter_index", i),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()),
			)
			return nil, i, err
		}
		log.Debug("filter stage completed",
			slog.Int("filter_index", i),
			slog.Int("rows_in", current.NumRows()),
			slog.Int("rows_out", next.NumRows()),
			slog.Duration("duration", time.Since(start)),
		)
		current = next
	}
	return current, -1, nil
}

// executeOutput runs the output module on the processed table.
func (e *Executor) executeOutput(ctx context.Context, log *slog.Logger, table *dataset.Table) (int, error) {
	start := time.Now()
	written, err := e.outputModule.Write(ctx, table)
	if closeErr := e.outputModule.Close(); closeErr != nil {
		log.Warn("output module close failed", slog.String("error", closeErr.Error()))
	}
	if err != nil {
		log.Error("output module execution failed",
			slog.Int("rows_written", written),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return written, err
	}
	return written, nil
}
