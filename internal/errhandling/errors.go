// Package errhandling provides error types and classification for the
// preprocessing runtime. Every stage error is classified into a category
// that determines the exit code and user-visible message; the pipeline is
// fail-fast, so no category is retryable.
package errhandling

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the type/category of an error.
type ErrorCategory string

// Error categories for classification.
const (
	// CategoryConfig represents configuration errors (bad pipeline file,
	// unknown module type, invalid stage options).
	CategoryConfig ErrorCategory = "config"

	// CategoryIO represents file errors from the input or output
	// collaborators (missing input file, unwritable output directory).
	CategoryIO ErrorCategory = "io"

	// CategoryValidation represents domain errors: a binning or encoding
	// operation encountered a value outside its defined domain.
	CategoryValidation ErrorCategory = "validation"

	// CategoryComputation represents degenerate statistics, such as a
	// zero-variance column during standardization.
	CategoryComputation ErrorCategory = "computation"

	// CategoryUnknown represents unclassified errors.
	CategoryUnknown ErrorCategory = "unknown"
)

// ClassifiedError wraps an error with classification metadata.
type ClassifiedError struct {
	// Category is the error classification category.
	Category ErrorCategory

	// Stage names the pipeline stage where the error occurred, if any.
	Stage string

	// Message is a human-readable error message.
	Message string

	// OriginalErr is the underlying error that was classified.
	OriginalErr error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s error in stage %q: %s", e.Category, e.Stage, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// Unwrap returns the original error for use with errors.Is and errors.As.
func (e *ClassifiedError) Unwrap() error {
	return e.OriginalErr
}

// NewValidationError creates a validation-category error for the given stage.
func NewValidationError(stage, format string, args ...interface{}) *ClassifiedError {
	return &ClassifiedError{
		Category: CategoryValidation,
		Stage:    stage,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewComputationError creates a computation-category error for the given stage.
func NewComputationError(stage, format string, args ...interface{}) *ClassifiedError {
	return &ClassifiedError{
		Category: CategoryComputation,
		Stage:    stage,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewIOError wraps a file error from an input or output collaborator.
func NewIOError(stage string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryIO,
		Stage:       stage,
		Message:     err.Error(),
		OriginalErr: err,
	}
}

// NewConfigError creates a config-category error.
func NewConfigError(format string, args ...interface{}) *ClassifiedError {
	return &ClassifiedError{
		Category: CategoryConfig,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Classify returns the category of err, walking the error chain.
// Unwrapped errors classify as CategoryUnknown.
func Classify(err error) ErrorCategory {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return CategoryUnknown
}

// StageOf returns the stage recorded on err, or empty if none.
func StageOf(err error) string {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Stage
	}
	return ""
}
