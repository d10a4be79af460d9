// Package stats provides the descriptive statistics the preprocessing
// stages are built on: linear-interpolation quantiles for IQR bounds,
// mean and population standard deviation for standardization, and range
// helpers for equal-width binning.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Quantile returns the p-th quantile (0 <= p <= 1) of x using linear
// interpolation between order statistics at rank p*(n-1). This is the
// estimator pandas and numpy use by default, so quartile-derived outlier
// bounds match theirs exactly. Returns 0 for an empty slice.
func Quantile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	if p <= 0 {
		return cp[0]
	}
	if p >= 1 {
		return cp[n-1]
	}
	rank := p * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// IQRBounds returns the 1.5*IQR outlier fences for x:
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
func IQRBounds(x []float64) (lower, upper float64) {
	q1 := Quantile(x, 0.25)
	q3 := Quantile(x, 0.75)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// Mean returns the arithmetic mean of x. Returns 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// PopStdDev returns the population standard deviation of x (the divisor is
// n, not n-1, matching scikit-learn's StandardScaler). Returns 0 for an
// empty slice.
func PopStdDev(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.PopStdDev(x, nil)
}

// MinMax returns the minimum and maximum of x. Returns (0, 0) for an empty
// slice.
func MinMax(x []float64) (min, max float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}
