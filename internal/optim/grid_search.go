// Package optim grid-searches wormhole configurations for the least
// ANEC-violating, least exotic geometry.
package optim

import (
	"math"
	"sort"
	"sync"

	"wormsim/internal/anec"
	"wormsim/internal/metric"
	"wormsim/internal/numeric"
	"wormsim/internal/stress"
)

// Result is one evaluated configuration. Failed carries configurations that
// could not be scored (construction error, non-traversable geometry, NaN
// integral); their Score is -Inf so ranking stays total without sentinel
// magic leaking into callers.
type Result struct {
	Shape          string             `json:"shape"`
	ShapeParams    map[string]float64 `json:"shape_params"`
	Redshift       string             `json:"redshift"`
	RedshiftParams map[string]float64 `json:"redshift_params"`
	ANECCrossing   float64            `json:"anec_crossing"`
	ANECViolated   bool               `json:"anec_violated"`
	RhoThroat      float64            `json:"rho_throat"`
	Traversable    bool               `json:"traversable"`
	Score          float64            `json:"score"`
	Failed         bool               `json:"failed,omitempty"`
	Reason         string             `json:"reason,omitempty"`
}

// Optimizer evaluates and ranks shape/redshift configurations at a fixed
// throat radius. Evaluations are independent pure computations and run on
// parallel workers.
type Optimizer struct {
	L0         float64
	RMaxFactor float64
	NPoints    int
	Workers    int

	// Progress, when set, is called once per completed evaluation.
	Progress func(done, total int)
}

// NewOptimizer returns an optimizer with the standard integration settings
// (rMaxFactor 3, 2001 crossing points).
func NewOptimizer(l0 float64) *Optimizer {
	return &Optimizer{L0: l0, RMaxFactor: 3.0, NPoints: 2001, Workers: 4}
}

func failed(shape string, shapeParams map[string]float64, redshift string,
	redshiftParams map[string]float64, reason string) Result {
	return Result{
		Shape: shape, ShapeParams: shapeParams,
		Redshift: redshift, RedshiftParams: redshiftParams,
		ANECCrossing: math.Inf(-1), ANECViolated: true,
		Score: math.Inf(-1), Failed: true, Reason: reason,
	}
}

// Evaluate scores a single configuration. Non-traversable or uncomputable
// configurations come back as failed results rather than errors, so batch
// sweeps never abort on a pathological parameter.
//
// The score prefers ANEC ≥ 0 outright (large fixed bonus plus the integral,
// minus a small penalty for exotic-matter magnitude at the throat) and ranks
// violating configurations by how negative their integral is.
func (o *Optimizer) Evaluate(shape string, shapeParams map[string]float64,
	redshift string, redshiftParams map[string]float64) Result {

	if redshiftParams == nil {
		redshiftParams = map[string]float64{}
	}

	wh, err := metric.New(o.L0, shape, shapeParams, redshift, redshiftParams)
	if err != nil {
		return failed(shape, shapeParams, redshift, redshiftParams, err.Error())
	}

	traversable, msg := wh.IsTraversable(nil)
	if !traversable {
		return failed(shape, shapeParams, redshift, redshiftParams, msg)
	}

	crossing := anec.NewIntegrator(wh).ComputeCrossing(o.RMaxFactor, o.NPoints)
	rhoThroat := stress.NewSolver(wh).ThroatStressEnergy().Rho

	if math.IsNaN(crossing.Value) {
		return failed(shape, shapeParams, redshift, redshiftParams, "ANEC crossing integral is NaN")
	}

	score := crossing.Value
	if crossing.Value >= 0 {
		score = 1e30 + crossing.Value - 1e-20*math.Abs(rhoThroat)
	}

	return Result{
		Shape: shape, ShapeParams: shapeParams,
		Redshift: redshift, RedshiftParams: redshiftParams,
		ANECCrossing: crossing.Value,
		ANECViolated: crossing.Value < 0,
		RhoThroat:    rhoThroat,
		Traversable:  true,
		Score:        score,
	}
}

type gridPoint struct {
	shape  string
	params map[string]float64
}

func (o *Optimizer) evaluateGrid(points []gridPoint) []Result {
	results := make([]Result, len(points))

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				p := points[idx]
				results[idx] = o.Evaluate(p.shape, p.params, "zero", nil)
				if o.Progress != nil {
					mu.Lock()
					done++
					o.Progress(done, len(points))
					mu.Unlock()
				}
			}
		}()
	}

	for i := range points {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func gridOver(shape, key string, values []float64) []gridPoint {
	points := make([]gridPoint, len(values))
	for i, v := range values {
		points[i] = gridPoint{shape: shape, params: map[string]float64{key: v}}
	}
	return points
}

// GridSearchPowerLaw sweeps the power-law exponent; defaults to 20 values of
// n on [0.1, 0.99].
func (o *Optimizer) GridSearchPowerLaw(nValues []float64) []Result {
	if nValues == nil {
		nValues = numeric.Linspace(0.1, 0.99, 20)
	}
	return o.evaluateGrid(gridOver("power_law", "n", nValues))
}

// GridSearchExponential sweeps the decay scale; defaults to 20 values of λ on
// [0.5, 5].
func (o *Optimizer) GridSearchExponential(lambdaValues []float64) []Result {
	if lambdaValues == nil {
		lambdaValues = numeric.Linspace(0.5, 5.0, 20)
	}
	return o.evaluateGrid(gridOver("exponential", "lambda_scale", lambdaValues))
}

// GridSearchTanh sweeps the transition width; defaults to 20 values of σ on
// [0.1, 1].
func (o *Optimizer) GridSearchTanh(sigmaValues []float64) []Result {
	if sigmaValues == nil {
		sigmaValues = numeric.Linspace(0.1, 1.0, 20)
	}
	return o.evaluateGrid(gridOver("tanh", "sigma", sigmaValues))
}

// ComprehensiveSearch sweeps every shape family with its default grid.
func (o *Optimizer) ComprehensiveSearch() map[string][]Result {
	return map[string][]Result{
		"power_law":   o.GridSearchPowerLaw(nil),
		"exponential": o.GridSearchExponential(nil),
		"tanh":        o.GridSearchTanh(nil),
	}
}

// FindBest flattens a comprehensive search and returns the top max results by
// descending score.
func (o *Optimizer) FindBest(max int) []Result {
	all := o.ComprehensiveSearch()

	families := make([]string, 0, len(all))
	for name := range all {
		families = append(families, name)
	}
	sort.Strings(families)

	flat := make([]Result, 0)
	for _, name := range families {
		flat = append(flat, all[name]...)
	}

	sort.SliceStable(flat, func(i, j int) bool { return flat[i].Score > flat[j].Score })

	if max > 0 && len(flat) > max {
		flat = flat[:max]
	}
	return flat
}
