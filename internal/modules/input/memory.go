// Package input provides implementations for input modules.
package input

import (
	"context"

	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/dataset"
)

// MemoryModule serves a pre-built table. It is used by tests and by callers
// that already hold the raw table in memory.
type MemoryModule struct {
	table *dataset.Table
}

// NewMemory creates an input module that returns the given table.
func NewMemory(table *dataset.Table) *MemoryModule {
	return &MemoryModule{table: table}
}

// Fetch returns the held table.
func (m *MemoryModule) Fetch(_ context.Context) (*dataset.Table, error) {
	logger.Debug("memory input serving table",
		"rows", m.table.NumRows(),
		"columns", m.table.NumCols(),
	)
	return m.table, nil
}

// Close releases resources (no-op for memory input).
func (m *MemoryModule) Close() error {
	return nil
}

// Verify MemoryModule implements Module
var _ Module = (*MemoryModule)(nil)
