// Package output provides implementations for output modules.
// This file implements the "stdout" output module, which prints the
// processed table as CSV on standard output instead of writing a file.
package output

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/tableprep/runtime/internal/errhandling"
	"github.com/tableprep/runtime/pkg/dataset"
)

// StdoutModule writes the table as CSV to an io.Writer (os.Stdout by
// default).
type StdoutModule struct {
	w io.Writer
}

// NewStdout creates a stdout output module.
func NewStdout() *StdoutModule {
	return &StdoutModule{w: os.Stdout}
}

// NewStdoutTo creates a stdout output module writing to w (for tests).
func NewStdoutTo(w io.Writer) *StdoutModule {
	return &StdoutModule{w: w}
}

// Write prints the table, header row first.
func (m *StdoutModule) Write(ctx context.Context, table *dataset.Table) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	w := csv.NewWriter(m.w)
	if err := w.Write(table.ColumnNames()); err != nil {
		return 0, errhandling.NewIOError("output", err)
	}
	for i := 0; i < table.NumRows(); i++ {
		if err := w.Write(table.RowStrings(i)); err != nil {
			return i, errhandling.NewIOError("output", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return table.NumRows(), errhandling.NewIOError("output", err)
	}
	return table.NumRows(), nil
}

// Destination describes the target stream.
func (m *StdoutModule) Destination() string {
	return "stdout"
}

// Close releases resources (no-op for stdout).
func (m *StdoutModule) Close() error {
	return nil
}

// Verify StdoutModule implements Module
var _ Module = (*StdoutModule)(nil)
