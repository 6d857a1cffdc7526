package numeric

import (
	"math"
	"sort"
)

// DerivStepRel is the relative finite-difference step used everywhere a
// derivative of the shape or redshift function is taken. The absolute step is
// DerivStepRel * l0. Every call site must use Step(l0) so that the throat
// flare-out parameter, the stress-energy components and the ANEC integrands
// agree to the last bit.
const DerivStepRel = 1e-6

// Eps guards square roots and divisions against small negative values from
// floating-point noise near the throat, where 1 - b/l crosses zero.
const Eps = 1e-12

func Step(l0 float64) float64 {
	return DerivStepRel * l0
}

// CentralDiff approximates f'(x) with a second-order central difference.
func CentralDiff(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// SecondDiff approximates f''(x) with a second-order central difference.
func SecondDiff(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
}

// Linspace returns n evenly spaced samples over [a, b] inclusive.
func Linspace(a, b float64, n int) []float64 {
	if n <= 1 {
		return []float64{a}
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}

// Trapezoid integrates y over x with the composite trapezoidal rule.
// x and y must have equal length; fewer than two samples integrate to zero.
func Trapezoid(y, x []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += 0.5 * (y[i] + y[i-1]) * (x[i] - x[i-1])
	}
	return sum
}

// FilterFinite returns the subsequences of y and x where y is finite.
func FilterFinite(y, x []float64) ([]float64, []float64) {
	yOut := make([]float64, 0, len(y))
	xOut := make([]float64, 0, len(x))
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		yOut = append(yOut, v)
		xOut = append(xOut, x[i])
	}
	return yOut, xOut
}

// Median returns the median of vals. vals is not modified.
func Median(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	tmp := make([]float64, len(vals))
	copy(tmp, vals)
	sort.Float64s(tmp)
	mid := len(tmp) / 2
	if len(tmp)%2 == 0 {
		return 0.5 * (tmp[mid-1] + tmp[mid])
	}
	return tmp[mid]
}
