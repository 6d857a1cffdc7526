package geometry

import (
	"math"

	"wormsim/internal/numeric"
)

// The proper radial coordinate l is defined from the areal radius r by
//
//	dl/dr = 1/√(1 - b(r)/r),   l(r0) = 0
//
// where r0 is the throat radius, b(r0) = r0. Each side of the throat maps to
// r ≥ r0; crossing is modeled by l ∈ (-L, +L) with the mirror symmetry
// r(l) = r(|l|).

// DefaultMapSteps is the integration resolution for the forward map and the
// inverse table.
const DefaultMapSteps = 2000

func dlDr(r float64, b func(float64) float64) float64 {
	rc := math.Max(r, numeric.Eps)
	denom := math.Max(1.0-b(rc)/rc, numeric.Eps)
	return 1.0 / math.Sqrt(denom)
}

// LOfR integrates dl/dr from r0 to each r via the trapezoidal rule over steps
// sub-points. Inputs at or below r0 map to l = 0; the output is monotonically
// non-decreasing for monotone inputs.
func LOfR(rVals []float64, b func(float64) float64, r0 float64, steps int) []float64 {
	if steps < 2 {
		steps = DefaultMapSteps
	}
	out := make([]float64, len(rVals))
	for i, r := range rVals {
		if r <= r0 {
			continue
		}
		rs := numeric.Linspace(r0, r, steps)
		integrand := make([]float64, steps)
		for j, rj := range rs {
			integrand[j] = dlDr(rj, b)
		}
		out[i] = numeric.Trapezoid(integrand, rs)
	}
	return out
}

// RMapper maps a proper-distance coordinate (either side of the throat) back
// to the areal radius.
type RMapper func(l float64) float64

// BuildRMapper precomputes a monotone table r ∈ [r0, rMax] → l(r) and returns
// a reusable interpolating inverse r(l). Interpolation clamps |l| into the
// table range; callers needing a larger extent must rebuild with larger rMax.
func BuildRMapper(b func(float64) float64, r0, rMax float64, steps int) RMapper {
	if steps < 2 {
		steps = 2 * DefaultMapSteps
	}
	rGrid := numeric.Linspace(r0, rMax, steps)
	lGrid := LOfR(rGrid, b, r0, steps/2)

	// Nudge any non-increasing step so interpolation stays well defined.
	for j := 1; j < len(lGrid); j++ {
		if lGrid[j] <= lGrid[j-1] {
			lGrid[j] = lGrid[j-1] + 1e-12
		}
	}

	return func(l float64) float64 {
		return interp(clamp(math.Abs(l), lGrid[0], lGrid[len(lGrid)-1]), lGrid, rGrid)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// interp performs linear interpolation of ys over the strictly increasing xs.
func interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	frac := (x - xs[lo]) / (xs[hi] - xs[lo])
	return ys[lo] + frac*(ys[hi]-ys[lo])
}
