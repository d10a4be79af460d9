// Package pipeline provides public types for preprocessing pipeline
// configurations and execution results. This package is intended to be
// importable by external projects that need to drive the tableprep runtime.
package pipeline

import "time"

// Pipeline represents a complete preprocessing pipeline configuration.
// It contains the input, the ordered filter stages, and the output module
// required to turn a raw table into a model-ready one.
type Pipeline struct {
	// ID is the unique identifier for this pipeline
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable name of the pipeline
	Name string `json:"name" yaml:"name"`

	// Description provides additional context about the pipeline
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is the pipeline configuration version
	Version string `json:"version" yaml:"version"`

	// Input defines the table source module
	Input *ModuleConfig `json:"input" yaml:"input"`

	// Filters is an ordered list of table transformation stages
	Filters []ModuleConfig `json:"filters,omitempty" yaml:"filters,omitempty"`

	// Output defines the table destination module
	Output *ModuleConfig `json:"output" yaml:"output"`
}

// ModuleConfig represents the configuration for a pipeline module.
// Modules can be Input, Filter, or Output types.
type ModuleConfig struct {
	// Type identifies the module type (e.g., "csv", "clean", "capOutliers")
	Type string `json:"type" yaml:"type"`

	// Config contains the module-specific configuration
	Config map[string]interface{} `json:"config,omitempty" yaml:"config,omitempty"`
}

// ExecutionResult represents the result of a pipeline execution.
type ExecutionResult struct {
	// PipelineID is the ID of the executed pipeline
	PipelineID string `json:"pipelineId"`

	// ExecutionID uniquely identifies this run
	ExecutionID string `json:"executionId"`

	// Status is the execution status ("success", "error")
	Status string `json:"status"`

	// StartedAt is when execution started
	StartedAt time.Time `json:"startedAt"`

	// CompletedAt is when execution completed
	CompletedAt time.Time `json:"completedAt"`

	// RowsIn is the number of rows fetched from the input
	RowsIn int `json:"rowsIn"`

	// RowsOut is the number of rows in the final table
	RowsOut int `json:"rowsOut"`

	// OutputPath is where the processed table was written (empty in dry-run)
	OutputPath string `json:"outputPath,omitempty"`

	// Error contains error details if execution failed
	Error *ExecutionError `json:"error,omitempty"`

	// Report summarizes the original vs. processed tables
	Report *Report `json:"report,omitempty"`
}

// ExecutionError provides structured details about a failed execution.
type ExecutionError struct {
	// Code is the error code (e.g., INPUT_FAILED, FILTER_FAILED)
	Code string `json:"code"`

	// Stage names the pipeline stage that failed (input, the filter type, output)
	Stage string `json:"stage,omitempty"`

	// Message is the human-readable error message
	Message string `json:"message"`
}

// ColumnInfo describes a single column in a report.
type ColumnInfo struct {
	// Name is the column name
	Name string `json:"name"`

	// DType is the pandas-style dtype name (int64, float64, object)
	DType string `json:"dtype"`
}

// LabelCount holds the row count for one class of the fraud label.
type LabelCount struct {
	// Label is the class value as text
	Label string `json:"label"`

	// Count is the number of rows with that value
	Count int `json:"count"`
}

// Report summarizes a preprocessing run: shape deltas, final schema, a
// preview of the leading rows, and the fraud-label distribution when the
// label column survived into the output.
type Report struct {
	// OriginalRows and OriginalCols are the raw table shape
	OriginalRows int `json:"originalRows"`
	OriginalCols int `json:"originalCols"`

	// ProcessedRows and ProcessedCols are the final table shape
	ProcessedRows int `json:"processedRows"`
	ProcessedCols int `json:"processedCols"`

	// Columns lists the final columns with their dtypes, in table order
	Columns []ColumnInfo `json:"columns"`

	// Preview holds up to the first five rows of the final table as text
	Preview [][]string `json:"preview,omitempty"`

	// LabelColumn is the name of the fraud-label column, if present
	LabelColumn string `json:"labelColumn,omitempty"`

	// LabelCounts is the class distribution of the label column
	LabelCounts []LabelCount `json:"labelCounts,omitempty"`

	// PositiveRate is the percentage of rows with a positive label
	PositiveRate float64 `json:"positiveRate,omitempty"`
}
