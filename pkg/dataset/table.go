// Package dataset provides the columnar table artifact shared by pipeline
// modules. This package is intended to be importable by external projects
// that need to build inputs for, or consume outputs of, the tableprep
// runtime.
//
// A Table is an ordered sequence of named, typed columns aligned by row
// index. All columns have equal length at all times; every operation that
// could violate that invariant returns an error instead.
package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DType identifies the storage type of a column.
type DType int

// Column storage types. Int64 is the narrowest numeric type; loaders promote
// Int64 to Float64 and Float64 to String when values require it.
const (
	Int64 DType = iota
	Float64
	String
)

// String returns the pandas-style name of the dtype, used in reports.
func (t DType) String() string {
	switch t {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case String:
		return "object"
	default:
		return fmt.Sprintf("dtype(%d)", int(t))
	}
}

// Numeric reports whether the dtype holds numbers.
func (t DType) Numeric() bool {
	return t == Int64 || t == Float64
}

// Common errors returned by table operations.
var (
	// ErrColumnExists is returned when adding a column whose name is taken.
	ErrColumnExists = errors.New("column already exists")

	// ErrLengthMismatch is returned when column lengths would diverge.
	ErrLengthMismatch = errors.New("column length mismatch")

	// ErrColumnNotFound is returned when a named column is absent.
	ErrColumnNotFound = errors.New("column not found")
)

// Column is a single named, typed sequence of values with an optional
// missing-value mask. Exactly one of the backing slices is populated,
// matching Type.
type Column struct {
	name    string
	dtype   DType
	ints    []int64
	floats  []float64
	strs    []string
	missing []bool // nil when the column has no missing values
}

// NewIntColumn creates an Int64 column.
func NewIntColumn(name string, values []int64) *Column {
	return &Column{name: name, dtype: Int64, ints: values}
}

// NewFloatColumn creates a Float64 column.
func NewFloatColumn(name string, values []float64) *Column {
	return &Column{name: name, dtype: Float64, floats: values}
}

// NewStringColumn creates a String column.
func NewStringColumn(name string, values []string) *Column {
	return &Column{name: name, dtype: String, strs: values}
}

// SetMissing attaches a missing-value mask to the column. The mask must have
// the same length as the column; a nil mask clears it.
func (c *Column) SetMissing(mask []bool) error {
	if mask != nil && len(mask) != c.Len() {
		return fmt.Errorf("%w: mask has %d entries, column %q has %d rows",
			ErrLengthMismatch, len(mask), c.name, c.Len())
	}
	c.missing = mask
	return nil
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the column dtype.
func (c *Column) Type() DType { return c.dtype }

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	switch c.dtype {
	case Int64:
		return len(c.ints)
	case Float64:
		return len(c.floats)
	default:
		return len(c.strs)
	}
}

// IsMissing reports whether the value at row i is missing.
func (c *Column) IsMissing(i int) bool {
	return c.missing != nil && c.missing[i]
}

// HasMissing reports whether any value in the column is missing.
func (c *Column) HasMissing() bool {
	for _, m := range c.missing {
		if m {
			return true
		}
	}
	return false
}

// MissingCount returns the number of missing values in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}
	return n
}

// Float returns the value at row i as a float64. String columns return 0;
// callers are expected to check Type first.
func (c *Column) Float(i int) float64 {
	switch c.dtype {
	case Int64:
		return float64(c.ints[i])
	case Float64:
		return c.floats[i]
	default:
		return 0
	}
}

// Floats returns the column values as a freshly allocated float64 slice,
// excluding missing entries. Only valid for numeric columns.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			continue
		}
		out = append(out, c.Float(i))
	}
	return out
}

// Int returns the value at row i as an int64. Only valid for Int64 columns.
func (c *Column) Int(i int) int64 { return c.ints[i] }

// Text returns the canonical textual representation of the value at row i.
// Missing values render as the empty string. Floats use the shortest
// round-trip representation.
func (c *Column) Text(i int) string {
	if c.IsMissing(i) {
		return ""
	}
	switch c.dtype {
	case Int64:
		return strconv.FormatInt(c.ints[i], 10)
	case Float64:
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64)
	default:
		return c.strs[i]
	}
}

// Value returns the value at row i boxed as an interface{} (int64, float64,
// or string). Missing values return nil.
func (c *Column) Value(i int) interface{} {
	if c.IsMissing(i) {
		return nil
	}
	switch c.dtype {
	case Int64:
		return c.ints[i]
	case Float64:
		return c.floats[i]
	default:
		return c.strs[i]
	}
}

// SetFloat replaces the value at row i. Only valid for Float64 columns.
func (c *Column) SetFloat(i int, v float64) { c.floats[i] = v }

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	cp := &Column{name: c.name, dtype: c.dtype}
	if c.ints != nil {
		cp.ints = append([]int64(nil), c.ints...)
	}
	if c.floats != nil {
		cp.floats = append([]float64(nil), c.floats...)
	}
	if c.strs != nil {
		cp.strs = append([]string(nil), c.strs...)
	}
	if c.missing != nil {
		cp.missing = append([]bool(nil), c.missing...)
	}
	return cp
}

// filter returns a copy of the column keeping only rows where keep is true.
func (c *Column) filter(keep []bool) *Column {
	cp := &Column{name: c.name, dtype: c.dtype}
	for i := 0; i < c.Len(); i++ {
		if !keep[i] {
			continue
		}
		switch c.dtype {
		case Int64:
			cp.ints = append(cp.ints, c.ints[i])
		case Float64:
			cp.floats = append(cp.floats, c.floats[i])
		default:
			cp.strs = append(cp.strs, c.strs[i])
		}
		if c.missing != nil {
			cp.missing = append(cp.missing, c.missing[i])
		}
	}
	return cp
}

// ToFloat converts the column to Float64, preserving the missing mask.
// String columns are returned unchanged.
func (c *Column) ToFloat() *Column {
	switch c.dtype {
	case Float64:
		return c
	case Int64:
		floats := make([]float64, len(c.ints))
		for i, v := range c.ints {
			floats[i] = float64(v)
		}
		cp := &Column{name: c.name, dtype: Float64, floats: floats}
		if c.missing != nil {
			cp.missing = append([]bool(nil), c.missing...)
		}
		return cp
	default:
		return c
	}
}

// Table is an ordered collection of equal-length columns.
type Table struct {
	cols  []*Column
	index map[string]int
}

// New creates a table from the given columns. All columns must have distinct
// names and equal lengths.
func New(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for _, col := range cols {
		if err := t.AddColumn(col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NumRows returns the number of rows. An empty table has zero rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.name
	}
	return names
}

// Column returns the named column, or false if absent.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// ColumnAt returns the column at position i in table order.
func (t *Table) ColumnAt(i int) *Column { return t.cols[i] }

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AddColumn appends a column to the table. Fails if the name is taken or the
// length differs from existing columns.
func (t *Table) AddColumn(col *Column) error {
	if _, ok := t.index[col.name]; ok {
		return fmt.Errorf("%w: %q", ErrColumnExists, col.name)
	}
	if len(t.cols) > 0 && col.Len() != t.NumRows() {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			ErrLengthMismatch, col.name, col.Len(), t.NumRows())
	}
	t.index[col.name] = len(t.cols)
	t.cols = append(t.cols, col)
	return nil
}

// ReplaceColumn swaps the named column for a new one of equal length,
// keeping its position in column order.
func (t *Table) ReplaceColumn(name string, col *Column) error {
	i, ok := t.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if col.Len() != t.NumRows() {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			ErrLengthMismatch, col.name, col.Len(), t.NumRows())
	}
	if col.name != name {
		delete(t.index, name)
		t.index[col.name] = i
	}
	t.cols[i] = col
	return nil
}

// RenameColumn changes a column's name in place, keeping its position.
// Fails if the old name is absent or the new name is taken.
func (t *Table) RenameColumn(oldName, newName string) error {
	i, ok := t.index[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, taken := t.index[newName]; taken {
		return fmt.Errorf("%w: %q", ErrColumnExists, newName)
	}
	t.cols[i].name = newName
	delete(t.index, oldName)
	t.index[newName] = i
	return nil
}

// Select returns a new table holding deep copies of the named columns, in
// the given order. Fails if any name is absent.
func (t *Table) Select(names ...string) (*Table, error) {
	out := &Table{index: make(map[string]int, len(names))}
	for _, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		if err := out.AddColumn(t.cols[i].Clone()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DropColumn removes the named column. Returns false if the column was
// already absent (the operation is idempotent).
func (t *Table) DropColumn(name string) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	t.cols = append(t.cols[:i], t.cols[i+1:]...)
	delete(t.index, name)
	for j := i; j < len(t.cols); j++ {
		t.index[t.cols[j].name] = j
	}
	return true
}

// FilterRows returns a new table keeping only rows where keep is true.
// The mask must cover every row.
func (t *Table) FilterRows(keep []bool) (*Table, error) {
	if len(keep) != t.NumRows() {
		return nil, fmt.Errorf("%w: mask has %d entries, table has %d rows",
			ErrLengthMismatch, len(keep), t.NumRows())
	}
	out := &Table{index: make(map[string]int, len(t.cols))}
	for _, col := range t.cols {
		if err := out.AddColumn(col.filter(keep)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Clone returns a deep copy of the table. Stages clone before mutating so
// each stage boundary sees an independent snapshot.
func (t *Table) Clone() *Table {
	out := &Table{
		cols:  make([]*Column, len(t.cols)),
		index: make(map[string]int, len(t.cols)),
	}
	for i, col := range t.cols {
		out.cols[i] = col.Clone()
		out.index[col.name] = i
	}
	return out
}

// RowKey builds a deterministic key for exact-duplicate detection by joining
// the textual representation of every value in row i.
func (t *Table) RowKey(i int) string {
	var b strings.Builder
	for j, col := range t.cols {
		if j > 0 {
			b.WriteByte(0x1f) // unit separator, cannot appear in CSV fields unescaped
		}
		b.WriteString(col.Text(i))
	}
	return b.String()
}

// RowStrings returns the textual representation of row i in column order.
func (t *Table) RowStrings(i int) []string {
	out := make([]string, len(t.cols))
	for j, col := range t.cols {
		out[j] = col.Text(i)
	}
	return out
}
