// Package input provides implementations for input modules.
// Input modules are responsible for loading the raw table from a source.
package input

import (
	"context"

	"github.com/tableprep/runtime/pkg/dataset"
)

// Module represents an input module that loads a table from a source.
type Module interface {
	// Fetch loads the table from the source system.
	// The context can be used to cancel long-running operations.
	Fetch(ctx context.Context) (*dataset.Table, error)

	// Close releases any resources held by the module.
	Close() error
}
