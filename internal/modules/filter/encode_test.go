package filter

import (
	"context"
	"testing"

	"github.com/tableprep/runtime/pkg/dataset"
)

func TestEncode_SortedDistinctValuesGetStableCodes(t *testing.T) {
	// Codes follow sorted order of the distinct values, not row order.
	table := mustTable(t,
		dataset.NewStringColumn(ColMerchantCategory, []string{"travel", "grocery", "online", "grocery"}),
	)

	got, err := NewEncodeFromConfig(EncodeConfig{Columns: []string{ColMerchantCategory}}).
		Process(context.Background(), table)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	col, ok := got.Column(ColMerchantCategory + EncodedSuffix)
	if !ok {
		t.Fatal("encoded column missing")
	}
	want := []int64{2, 0, 1, 0} // grocery=0, online=1, travel=2
	for i, w := range want {
		if col.Int(i) != w {
			t.Errorf("row %d code = %d, want %d", i, col.Int(i), w)
		}
	}
	if got.HasColumn(ColMerchantCategory) {
		t.Error("original column should be dropped after encoding")
	}
}

func TestEncode_MappingIndependentOfRowOrder(t *testing.T) {
	encode := func(values []string) []int64 {
		table := mustTable(t, dataset.NewStringColumn("cat", values))
		got, err := NewEncodeFromConfig(EncodeConfig{Columns: []string{"cat"}}).
			Process(context.Background(), table)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		col, _ := got.Column("cat" + EncodedSuffix)
		out := make([]int64, col.Len())
		for i := range out {
			out[i] = col.Int(i)
		}
		return out
	}

	first := encode([]string{"b", "a", "c"})
	second := encode([]string{"c", "b", "a"})

	// a=0, b=1, c=2 in both permutations.
	if first[0] != 1 || first[1] != 0 || first[2] != 2 {
		t.Errorf("codes for [b a c] = %v, want [1 0 2]", first)
	}
	if second[0] != 2 || second[1] != 1 || second[2] != 0 {
		t.Errorf("codes for [c b a] = %v, want [2 1 0]", second)
	}
}

func TestEncode_DefaultColumns(t *testing.T) {
	table := mustTable(t,
		dataset.NewStringColumn(ColMerchantCategory, []string{"grocery", "travel"}),
		dataset.NewStringColumn(ColAmountBin, []string{"Low", "High"}),
		dataset.NewStringColumn(ColAgeGroup, []string{"Youth", "Senior"}),
		dataset.NewStringColumn(ColTimePeriod, []string{"Night", "Morning"}),
	)

	got, err := NewEncodeFromConfig(EncodeConfig{}).Process(context.Background(), table)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, name := range []string{ColMerchantCategory, ColAmountBin, ColAgeGroup, ColTimePeriod} {
		if got.HasColumn(name) {
			t.Errorf("raw column %q should be dropped", name)
		}
		if !got.HasColumn(name + EncodedSuffix) {
			t.Errorf("encoded column %q missing", name+EncodedSuffix)
		}
	}
}

func TestEncode_AbsentColumnsSkipped(t *testing.T) {
	table := mustTable(t,
		dataset.NewFloatColumn(ColAmount, []float64{1, 2}),
	)

	got, err := NewEncodeFromConfig(EncodeConfig{}).Process(context.Background(), table)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got.NumCols() != 1 {
		t.Errorf("NumCols() = %d, want 1 (nothing encoded)", got.NumCols())
	}
}

func TestEncode_NumericColumnUsesTextRepresentation(t *testing.T) {
	// An already-numeric column can still be label encoded; its sorted text
	// values define the codes.
	table := mustTable(t, dataset.NewIntColumn("code", []int64{30, 10, 20}))

	got, err := NewEncodeFromConfig(EncodeConfig{Columns: []string{"code"}}).
		Process(context.Background(), table)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	col, _ := got.Column("code" + EncodedSuffix)
	want := []int64{2, 0, 1} // "10"=0, "20"=1, "30"=2
	for i, w := range want {
		if col.Int(i) != w {
			t.Errorf("row %d code = %d, want %d", i, col.Int(i), w)
		}
	}
}

func TestParseEncodeConfig(t *testing.T) {
	cfg, err := ParseEncodeConfig(map[string]interface{}{
		"columns": []interface{}{"a", "", "b", 7},
	})
	if err != nil {
		t.Fatalf("ParseEncodeConfig() error = %v", err)
	}
	if len(cfg.Columns) != 2 || cfg.Columns[0] != "a" || cfg.Columns[1] != "b" {
		t.Errorf("Columns = %v, want [a b]", cfg.Columns)
	}
}
