// Package output provides implementations for output modules.
package output

import (
	"context"

	"github.com/tableprep/runtime/pkg/dataset"
)

// CaptureModule records the table it receives instead of persisting it.
// It is used by tests and dry-run previews.
type CaptureModule struct {
	Table *dataset.Table
}

// NewCapture creates a capture output module.
func NewCapture() *CaptureModule {
	return &CaptureModule{}
}

// Write stores the table on the module.
func (m *CaptureModule) Write(_ context.Context, table *dataset.Table) (int, error) {
	m.Table = table
	return table.NumRows(), nil
}

// Destination describes the capture target.
func (m *CaptureModule) Destination() string {
	return "(captured in memory)"
}

// Close releases resources (no-op for capture).
func (m *CaptureModule) Close() error {
	return nil
}

// Verify CaptureModule implements Module
var _ Module = (*CaptureModule)(nil)
