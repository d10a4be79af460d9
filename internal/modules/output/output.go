// Package output provides implementations for output modules.
// Output modules are responsible for writing the processed table to a
// destination.
package output

import (
	"context"

	"github.com/tableprep/runtime/pkg/dataset"
)

// Module represents an output module that writes a table to a destination.
type Module interface {
	// Write persists the table to the destination system.
	// Returns the number of rows written and any error.
	Write(ctx context.Context, table *dataset.Table) (int, error)

	// Destination describes where the table is written (for logs and the
	// execution result).
	Destination() string

	// Close releases any resources held by the module.
	Close() error
}
