package anec

import (
	"math"

	"wormsim/internal/geometry"
	"wormsim/internal/numeric"
)

// CrossingResult is the outcome of a full throat-crossing ANEC integral.
type CrossingResult struct {
	Value            float64 `json:"anec_crossing"`
	Violated         bool    `json:"anec_violated"`
	NegativeFraction float64 `json:"negative_fraction"`
	L                float64 `json:"L"`
	RMax             float64 `json:"r_max"`
	NPoints          int     `json:"n_points"`
}

// ComputeCrossing integrates the ANEC along a radial null ray that passes
// through the throat, parameterized by the proper-distance coordinate
// l ∈ [-L, +L] with the mirror map r(l) = r(|l|).
//
// The integrand is e^{-Φ(r)}·(p_r(r) - ρ(r)): the (p_r - ρ) combination with
// the e^{-Φ} Jacobian factor is the conserved projection along a symmetric
// crossing ray in the l coordinate, where the radial direction reverses sign
// across the throat. This is the physically faithful ANEC; the approach sweep
// in this package is the cheaper one-sided diagnostic.
//
// The half-extent L is estimated by densely sampling r(l) over [0, 10·rMax]
// and taking the l at which r is maximal, a proxy for the saturation point
// of the inverse table, not an exact inversion of r(L) = rMax. Non-finite
// integrand samples are discarded; fewer than three finite samples degrade
// the result to NaN with Violated=false.
func (it *Integrator) ComputeCrossing(rMaxFactor float64, nPoints int) CrossingResult {
	if rMaxFactor <= 1 {
		rMaxFactor = DefaultRMaxFactor
	}
	if nPoints < 3 {
		nPoints = DefaultCrossingPoints
	}

	r0 := it.wh.Params.L0
	rMax := rMaxFactor * r0
	mapper := geometry.BuildRMapper(it.wh.Shape(), r0, rMax, 2*geometry.DefaultMapSteps)

	// Estimate the proper-distance half-extent.
	lProbe := numeric.Linspace(0, 10*rMax, 5000)
	L := lProbe[len(lProbe)-1]
	rBest := math.Inf(-1)
	for _, l := range lProbe {
		if r := mapper(l); r > rBest {
			rBest = r
			L = l
		}
	}

	lGrid := numeric.Linspace(-L, L, nPoints)
	integrand := make([]float64, nPoints)
	for i, l := range lGrid {
		r := mapper(l)
		t := it.solver.StressEnergy(r)
		integrand[i] = math.Exp(-it.wh.Phi(r)) * (t.Pr - t.Rho)
	}

	valid, lValid := numeric.FilterFinite(integrand, lGrid)
	if len(valid) < 3 {
		return CrossingResult{
			Value:   math.NaN(),
			L:       L,
			RMax:    rMax,
			NPoints: nPoints,
		}
	}

	value := numeric.Trapezoid(valid, lValid)
	negatives := 0
	for _, v := range valid {
		if v < 0 {
			negatives++
		}
	}

	return CrossingResult{
		Value:            value,
		Violated:         value < 0,
		NegativeFraction: float64(negatives) / float64(len(valid)),
		L:                L,
		RMax:             rMax,
		NPoints:          nPoints,
	}
}
