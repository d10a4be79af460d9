package stats

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		p    float64
		want float64
	}{
		{"empty", nil, 0.5, 0},
		{"single value", []float64{42}, 0.25, 42},
		{"median of even count interpolates", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"first quartile interpolates", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"third quartile interpolates", []float64{1, 2, 3, 4}, 0.75, 3.25},
		{"p=0 is minimum", []float64{5, 1, 3}, 0, 1},
		{"p=1 is maximum", []float64{5, 1, 3}, 1, 5},
		{"unsorted input", []float64{4, 1, 3, 2}, 0.5, 2.5},
		{"exact order statistic", []float64{10, 20, 30, 40, 50}, 0.25, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantile(tt.x, tt.p); !almostEqual(got, tt.want) {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.x, tt.p, got, tt.want)
			}
		})
	}
}

func TestQuantile_DoesNotMutateInput(t *testing.T) {
	x := []float64{3, 1, 2}
	Quantile(x, 0.5)
	if x[0] != 3 || x[1] != 1 || x[2] != 2 {
		t.Errorf("Quantile mutated its input: %v", x)
	}
}

func TestIQRBounds(t *testing.T) {
	// Q1 = 3.25, Q3 = 7.75, IQR = 4.5 for 1..10.
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	lower, upper := IQRBounds(x)
	if !almostEqual(lower, -3.5) {
		t.Errorf("lower = %v, want -3.5", lower)
	}
	if !almostEqual(upper, 14.5) {
		t.Errorf("upper = %v, want 14.5", upper)
	}
}

func TestIQRBounds_ConstantColumn(t *testing.T) {
	lower, upper := IQRBounds([]float64{5, 5, 5, 5})
	if lower != 5 || upper != 5 {
		t.Errorf("bounds = [%v, %v], want [5, 5] for constant values", lower, upper)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); !almostEqual(got, 2.5) {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}

func TestPopStdDev(t *testing.T) {
	// Population variance of this sample is exactly 4.
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := PopStdDev(x); !almostEqual(got, 2) {
		t.Errorf("PopStdDev = %v, want 2", got)
	}
	if got := PopStdDev([]float64{3, 3, 3}); got != 0 {
		t.Errorf("PopStdDev(constant) = %v, want 0", got)
	}
	if got := PopStdDev(nil); got != 0 {
		t.Errorf("PopStdDev(nil) = %v, want 0", got)
	}
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 0})
	if min != -1 || max != 7 {
		t.Errorf("MinMax = (%v, %v), want (-1, 7)", min, max)
	}
	min, max = MinMax(nil)
	if min != 0 || max != 0 {
		t.Errorf("MinMax(nil) = (%v, %v), want (0, 0)", min, max)
	}
}
