package dataset

import (
	"errors"
	"testing"
)

func mustTable(t *testing.T, cols ...*Column) *Table {
	t.Helper()
	table, err := New(cols...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return table
}

func TestDTypeString(t *testing.T) {
	tests := []struct {
		dtype DType
		want  string
	}{
		{Int64, "int64"},
		{Float64, "float64"},
		{String, "object"},
	}
	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.want {
			t.Errorf("DType(%d).String() = %q, want %q", tt.dtype, got, tt.want)
		}
	}
}

func TestDTypeNumeric(t *testing.T) {
	if !Int64.Numeric() || !Float64.Numeric() {
		t.Error("Int64 and Float64 should be numeric")
	}
	if String.Numeric() {
		t.Error("String should not be numeric")
	}
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New(
		NewIntColumn("a", []int64{1}),
		NewIntColumn("a", []int64{2}),
	)
	if !errors.Is(err, ErrColumnExists) {
		t.Errorf("New() error = %v, want ErrColumnExists", err)
	}
}

func TestNew_RejectsLengthMismatch(t *testing.T) {
	_, err := New(
		NewIntColumn("a", []int64{1, 2}),
		NewIntColumn("b", []int64{1}),
	)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("New() error = %v, want ErrLengthMismatch", err)
	}
}

func TestColumn_Text(t *testing.T) {
	tests := []struct {
		name string
		col  *Column
		row  int
		want string
	}{
		{"int", NewIntColumn("c", []int64{42}), 0, "42"},
		{"float shortest round trip", NewFloatColumn("c", []float64{10.5}), 0, "10.5"},
		{"float integral", NewFloatColumn("c", []float64{3}), 0, "3"},
		{"string", NewStringColumn("c", []string{"grocery"}), 0, "grocery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.col.Text(tt.row); got != tt.want {
				t.Errorf("Text(%d) = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestColumn_MissingMask(t *testing.T) {
	col := NewFloatColumn("amount", []float64{1.5, 0, 3})
	if err := col.SetMissing([]bool{false, true, false}); err != nil {
		t.Fatalf("SetMissing() error = %v", err)
	}

	if !col.HasMissing() {
		t.Error("HasMissing() = false, want true")
	}
	if got := col.MissingCount(); got != 1 {
		t.Errorf("MissingCount() = %d, want 1", got)
	}
	if !col.IsMissing(1) || col.IsMissing(0) {
		t.Error("IsMissing() mask not respected")
	}
	if got := col.Text(1); got != "" {
		t.Errorf("Text(1) = %q, want empty string for missing value", got)
	}
	if got := col.Value(1); got != nil {
		t.Errorf("Value(1) = %v, want nil for missing value", got)
	}

	// Floats excludes missing entries.
	floats := col.Floats()
	if len(floats) != 2 || floats[0] != 1.5 || floats[1] != 3 {
		t.Errorf("Floats() = %v, want [1.5 3]", floats)
	}
}

func TestColumn_SetMissing_LengthMismatch(t *testing.T) {
	col := NewIntColumn("c", []int64{1, 2})
	if err := col.SetMissing([]bool{true}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("SetMissing() error = %v, want ErrLengthMismatch", err)
	}
}

func TestColumn_ToFloat(t *testing.T) {
	col := NewIntColumn("c", []int64{1, 2})
	if err := col.SetMissing([]bool{false, true}); err != nil {
		t.Fatalf("SetMissing() error = %v", err)
	}

	converted := col.ToFloat()
	if converted.Type() != Float64 {
		t.Fatalf("ToFloat().Type() = %v, want Float64", converted.Type())
	}
	if converted.Float(0) != 1 {
		t.Errorf("Float(0) = %v, want 1", converted.Float(0))
	}
	if !converted.IsMissing(1) {
		t.Error("ToFloat() should preserve the missing mask")
	}
}

func TestTable_AddReplaceDrop(t *testing.T) {
	table := mustTable(t,
		NewIntColumn("id", []int64{1, 2}),
		NewFloatColumn("amount", []float64{10, 20}),
	)

	if err := table.AddColumn(NewStringColumn("category", []string{"a", "b"})); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	if err := table.AddColumn(NewIntColumn("id", []int64{3, 4})); !errors.Is(err, ErrColumnExists) {
		t.Errorf("AddColumn(duplicate) error = %v, want ErrColumnExists", err)
	}
	if err := table.AddColumn(NewIntColumn("short", []int64{1})); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("AddColumn(short) error = %v, want ErrLengthMismatch", err)
	}

	// Replacement keeps column order.
	if err := table.ReplaceColumn("amount", NewFloatColumn("amount", []float64{1, 2})); err != nil {
		t.Fatalf("ReplaceColumn() error = %v", err)
	}
	names := table.ColumnNames()
	want := []string{"id", "amount", "category"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("ColumnNames() = %v, want %v", names, want)
		}
	}

	if !table.DropColumn("category") {
		t.Error("DropColumn(category) = false, want true")
	}
	if table.DropColumn("category") {
		t.Error("DropColumn(category) second call = true, want false")
	}
	if table.NumCols() != 2 {
		t.Errorf("NumCols() = %d, want 2", table.NumCols())
	}

	// Index stays consistent after removal.
	col, ok := table.Column("amount")
	if !ok || col.Float(0) != 1 {
		t.Error("Column(amount) lookup broken after DropColumn")
	}
}

func TestTable_RenameColumn(t *testing.T) {
	table := mustTable(t,
		NewIntColumn("id", []int64{1, 2}),
		NewFloatColumn("amount", []float64{10, 20}),
	)

	if err := table.RenameColumn("amount", "value"); err != nil {
		t.Fatalf("RenameColumn() error = %v", err)
	}
	names := table.ColumnNames()
	want := []string{"id", "value"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("ColumnNames() = %v, want %v", names, want)
		}
	}
	col, ok := table.Column("value")
	if !ok || col.Float(1) != 20 {
		t.Error("Column(value) lookup broken after rename")
	}
	if table.HasColumn("amount") {
		t.Error("old name still resolves after rename")
	}

	if err := table.RenameColumn("missing", "x"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("RenameColumn(missing) error = %v, want ErrColumnNotFound", err)
	}
	if err := table.RenameColumn("id", "value"); !errors.Is(err, ErrColumnExists) {
		t.Errorf("RenameColumn(taken) error = %v, want ErrColumnExists", err)
	}
	if err := table.RenameColumn("id", "id"); err != nil {
		t.Errorf("RenameColumn(same name) error = %v, want nil", err)
	}
}

func TestTable_Select(t *testing.T) {
	table := mustTable(t,
		NewIntColumn("id", []int64{1, 2}),
		NewFloatColumn("amount", []float64{10, 20}),
		NewStringColumn("category", []string{"a", "b"}),
	)

	sub, err := table.Select("category", "id")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	names := sub.ColumnNames()
	want := []string{"category", "id"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("ColumnNames() = %v, want %v", names, want)
		}
	}

	// Selected columns are copies, not views.
	sub2, err := table.Select("amount")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	col, _ := sub2.Column("amount")
	col.SetFloat(0, 99)
	orig, _ := table.Column("amount")
	if orig.Float(0) != 10 {
		t.Error("Select() shares storage with the source table")
	}

	if _, err := table.Select("id", "missing"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Select(missing) error = %v, want ErrColumnNotFound", err)
	}
}

func TestTable_FilterRows(t *testing.T) {
	table := mustTable(t,
		NewIntColumn("id", []int64{1, 2, 3}),
		NewStringColumn("category", []string{"a", "b", "c"}),
	)

	filtered, err := table.FilterRows([]bool{true, false, true})
	if err != nil {
		t.Fatalf("FilterRows() error = %v", err)
	}
	if filtered.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", filtered.NumRows())
	}
	col, _ := filtered.Column("id")
	if col.Int(0) != 1 || col.Int(1) != 3 {
		t.Errorf("filtered ids = [%d %d], want [1 3]", col.Int(0), col.Int(1))
	}

	if _, err := table.FilterRows([]bool{true}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("FilterRows(short mask) error = %v, want ErrLengthMismatch", err)
	}
}

func TestTable_CloneIsIndependent(t *testing.T) {
	table := mustTable(t, NewFloatColumn("amount", []float64{10, 20}))
	clone := table.Clone()

	col, _ := clone.Column("amount")
	col.SetFloat(0, 99)

	orig, _ := table.Column("amount")
	if orig.Float(0) != 10 {
		t.Errorf("mutating clone changed original: Float(0) = %v, want 10", orig.Float(0))
	}

	clone.DropColumn("amount")
	if !table.HasColumn("amount") {
		t.Error("dropping a column on the clone removed it from the original")
	}
}

func TestTable_RowKeyDistinguishesRows(t *testing.T) {
	table := mustTable(t,
		NewStringColumn("a", []string{"x", "x", "xy"}),
		NewStringColumn("b", []string{"y", "y", ""}),
	)

	if table.RowKey(0) != table.RowKey(1) {
		t.Error("identical rows should share a key")
	}
	if table.RowKey(0) == table.RowKey(2) {
		t.Error("different rows should not share a key")
	}
}

func TestTable_RowStrings(t *testing.T) {
	table := mustTable(t,
		NewIntColumn("id", []int64{7}),
		NewFloatColumn("amount", []float64{10.5}),
		NewStringColumn("category", []string{"travel"}),
	)

	got := table.RowStrings(0)
	want := []string{"7", "10.5", "travel"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RowStrings(0) = %v, want %v", got, want)
		}
	}
}

func TestTable_EmptyHasZeroRows(t *testing.T) {
	table := mustTable(t)
	if table.NumRows() != 0 || table.NumCols() != 0 {
		t.Errorf("empty table = %dx%d, want 0x0", table.NumRows(), table.NumCols())
	}
}
