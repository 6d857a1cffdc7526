// Package anec computes Averaged Null Energy Condition integrals
//
//	ANEC = ∫ T_μν k^μ k^ν dλ
//
// along radial null geodesics of a Morris-Thorne wormhole. A negative
// integral signals an energy-condition violation (exotic matter on the ray).
//
// Two modes exist: an approach sweep over one-sided geodesics that stop short
// of the throat, and the physically more meaningful throat-crossing integral
// taken in the proper-distance coordinate through the throat to the mirror
// side.
package anec

import (
	"math"

	"wormsim/internal/metric"
	"wormsim/internal/numeric"
	"wormsim/internal/stress"
)

// Defaults for the two integration modes.
const (
	DefaultGeodesicPoints = 1000
	DefaultSweepGeodesics = 9
	DefaultLRangeFactor   = 5.0
	DefaultCrossingPoints = 4001 // odd, keeps the grid symmetric about l=0
	DefaultRMaxFactor     = 3.0
)

// Integrator walks null geodesics of one wormhole and integrates the
// projected stress-energy.
type Integrator struct {
	wh     *metric.MorrisThorne
	solver *stress.Solver
}

func NewIntegrator(wh *metric.MorrisThorne) *Integrator {
	return &Integrator{wh: wh, solver: stress.NewSolver(wh)}
}

// RadialNullGeodesic integrates the coordinate time along a radial null ray
// between lStart and lEnd: from ds² = 0,
//
//	dt/dl = e^{-Φ}·√(1 - b/l)
//
// accumulated by forward Euler over n evenly spaced samples. The max with
// Eps absorbs small negative values of 1-b/l from floating-point noise near
// the throat. The affine parameter is approximated by l itself.
func (it *Integrator) RadialNullGeodesic(lStart, lEnd float64, n int) (ls, ts []float64) {
	if n < 2 {
		n = DefaultGeodesicPoints
	}
	ls = numeric.Linspace(lStart, lEnd, n)
	ts = make([]float64, n)
	for i := 1; i < n; i++ {
		dl := ls[i] - ls[i-1]
		factor := math.Exp(-it.wh.Phi(ls[i])) *
			math.Sqrt(math.Max(numeric.Eps, 1.0-it.wh.B(ls[i])/ls[i]))
		ts[i] = ts[i-1] + factor*dl
	}
	return ls, ts
}

// NullTangent returns the contravariant null tangent components at l,
// normalized to k^t = 1:
//
//	k^t = 1
//	k^l = √(1 - b/l)·e^{-Φ}
//
// The angular components vanish for a radial ray.
func (it *Integrator) NullTangent(l float64) (kT, kL float64) {
	kT = 1.0
	kL = math.Sqrt(math.Max(numeric.Eps, 1.0-it.wh.B(l)/l)) * math.Exp(-it.wh.Phi(l))
	return kT, kL
}

// Projection evaluates T_μν k^μ k^ν at l. With the diagonal stress-energy and
// covariant components k_μ = g_μν k^ν this is
//
//	ρ·(k^t)²·g_tt + p_r·(k^l)²·g_ll
func (it *Integrator) Projection(l float64) float64 {
	t := it.solver.StressEnergy(l)
	kT, kL := it.NullTangent(l)

	gTT := -math.Exp(2 * it.wh.Phi(l))
	gLL := 1.0 / (1.0 - it.wh.B(l)/l)

	return t.Rho*kT*(gTT*kT) + t.Pr*kL*(gLL*kL)
}

// Result is the outcome of one geodesic integration.
type Result struct {
	Integral         float64 `json:"anec_integral_J"`
	Violated         bool    `json:"anec_violated"`
	MedianTkk        float64 `json:"median_T_kk"`
	MinTkk           float64 `json:"min_T_kk"`
	MaxTkk           float64 `json:"max_T_kk"`
	NegativeFraction float64 `json:"negative_fraction"`
	LStart           float64 `json:"l_start"`
	LEnd             float64 `json:"l_end"`
	NPoints          int     `json:"n_points"`
	GeodesicID       int     `json:"geodesic_id"`
}

// ComputeIntegral integrates the projected stress-energy along one approach
// geodesic. The end point is held at least 1% above the throat to avoid the
// coordinate singularity at b(l) = l. Non-finite samples are discarded; with
// fewer than two finite samples the result degrades to NaN with
// Violated=false rather than failing.
func (it *Integrator) ComputeIntegral(lStart, lEnd float64, n int) Result {
	if n < 2 {
		n = DefaultGeodesicPoints
	}
	l0 := it.wh.Params.L0
	lEndSafe := math.Max(lEnd, l0*1.01)

	ls, _ := it.RadialNullGeodesic(lStart, lEndSafe, n)

	tkk := make([]float64, len(ls))
	for i, l := range ls {
		tkk[i] = it.Projection(l)
	}

	tkkValid, lambdaValid := numeric.FilterFinite(tkk, ls)
	if len(tkkValid) < 2 {
		return Result{
			Integral: math.NaN(),
			Violated: false,
			MedianTkk: math.NaN(), MinTkk: math.NaN(), MaxTkk: math.NaN(),
			LStart: lStart, LEnd: lEndSafe, NPoints: n,
		}
	}

	integral := numeric.Trapezoid(tkkValid, lambdaValid)

	minV, maxV := tkkValid[0], tkkValid[0]
	negatives := 0
	for _, v := range tkkValid {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		if v < 0 {
			negatives++
		}
	}

	return Result{
		Integral:         integral,
		Violated:         integral < 0,
		MedianTkk:        numeric.Median(tkkValid),
		MinTkk:           minV,
		MaxTkk:           maxV,
		NegativeFraction: float64(negatives) / float64(len(tkkValid)),
		LStart:           lStart,
		LEnd:             lEndSafe,
		NPoints:          n,
	}
}

// ThroatSweep integrates n geodesics whose starting coordinate varies
// linearly between lRangeFactor·l0 and 2·lRangeFactor·l0, each ending at
// 1.05·l0 on the near side of the throat.
func (it *Integrator) ThroatSweep(lRangeFactor float64, nGeodesics int) []Result {
	if nGeodesics < 1 {
		nGeodesics = DefaultSweepGeodesics
	}
	if lRangeFactor <= 0 {
		lRangeFactor = DefaultLRangeFactor
	}
	l0 := it.wh.Params.L0
	results := make([]Result, 0, nGeodesics)

	for i := 0; i < nGeodesics; i++ {
		factor := lRangeFactor + float64(i)/math.Max(1, float64(nGeodesics-1))*lRangeFactor
		res := it.ComputeIntegral(factor*l0, l0*1.05, DefaultGeodesicPoints)
		res.GeodesicID = i
		results = append(results, res)
	}
	return results
}

// Summary aggregates a sweep's results.
type Summary struct {
	NGeodesics        int     `json:"n_geodesics"`
	NViolations       int     `json:"n_violations"`
	ViolationFraction float64 `json:"violation_fraction"`
	MedianANEC        float64 `json:"median_anec_J"`
	MeanANEC          float64 `json:"mean_anec_J"`
	MinANEC           float64 `json:"min_anec_J"`
	MaxANEC           float64 `json:"max_anec_J"`
	AllViolated       bool    `json:"all_violated"`
	AnyViolated       bool    `json:"any_violated"`
}

// Summarize reduces sweep results to aggregate statistics.
func Summarize(results []Result) Summary {
	s := Summary{NGeodesics: len(results), AllViolated: len(results) > 0}
	if len(results) == 0 {
		s.MedianANEC = math.NaN()
		s.MeanANEC = math.NaN()
		s.MinANEC = math.NaN()
		s.MaxANEC = math.NaN()
		s.AllViolated = false
		return s
	}

	integrals := make([]float64, len(results))
	sum := 0.0
	s.MinANEC = results[0].Integral
	s.MaxANEC = results[0].Integral
	for i, r := range results {
		integrals[i] = r.Integral
		sum += r.Integral
		if r.Integral < s.MinANEC {
			s.MinANEC = r.Integral
		}
		if r.Integral > s.MaxANEC {
			s.MaxANEC = r.Integral
		}
		if r.Violated {
			s.NViolations++
			s.AnyViolated = true
		} else {
			s.AllViolated = false
		}
	}
	s.ViolationFraction = float64(s.NViolations) / float64(len(results))
	s.MedianANEC = numeric.Median(integrals)
	s.MeanANEC = sum / float64(len(results))
	return s
}
