package filter

import (
	"context"
	"testing"

	"github.com/tableprep/runtime/pkg/dataset"
)

func TestPrune_DropsDefaultTargets(t *testing.T) {
	table := mustTable(t,
		dataset.NewIntColumn(ColTransactionID, []int64{1, 2}),
		dataset.NewFloatColumn(ColAmount, []float64{10, 20}),
		dataset.NewStringColumn(ColMerchantCategory, []string{"a", "b"}),
		dataset.NewStringColumn(ColAmountBin, []string{"Low", "High"}),
		dataset.NewStringColumn(ColAgeGroup, []string{"Youth", "Senior"}),
		dataset.NewStringColumn(ColTimePeriod, []string{"Night", "Morning"}),
		dataset.NewIntColumn(ColIsFraud, []int64{0, 1}),
	)

	got, err := NewPruneFromConfig(PruneConfig{}).Process(context.Background(), table)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, name := range []string{ColTransactionID, ColMerchantCategory, ColAmountBin, ColAgeGroup, ColTimePeriod} {
		if got.HasColumn(name) {
			t.Errorf("column %q should be dropped", name)
		}
	}
	for _, name := range []string{ColAmount, ColIsFraud} {
		if !got.HasColumn(name) {
			t.Errorf("column %q should be kept", name)
		}
	}
}

func TestPrune_AbsentTargetsAreNoOps(t *testing.T) {
	table := mustTable(t, dataset.NewFloatColumn(ColAmount, []float64{10}))

	got, err := NewPruneFromConfig(PruneConfig{}).Process(context.Background(), table)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got.NumCols() != 1 {
		t.Errorf("NumCols() = %d, want 1", got.NumCols())
	}
}

func TestPrune_CustomTargetsDeduplicated(t *testing.T) {
	table := mustTable(t,
		dataset.NewFloatColumn("a", []float64{1}),
		dataset.NewFloatColumn("b", []float64{2}),
	)

	got, err := NewPruneFromConfig(PruneConfig{Targets: []string{"a", "a", ""}}).
		Process(context.Background(), table)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got.HasColumn("a") {
		t.Error("column a should be dropped")
	}
	if !got.HasColumn("b") {
		t.Error("column b should be kept")
	}
}

func TestParsePruneConfig(t *testing.T) {
	cfg, err := ParsePruneConfig(map[string]interface{}{
		"targets": []interface{}{"x", "y"},
	})
	if err != nil {
		t.Fatalf("ParsePruneConfig() error = %v", err)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[0] != "x" || cfg.Targets[1] != "y" {
		t.Errorf("Targets = %v, want [x y]", cfg.Targets)
	}
}
