package optim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastOptimizer keeps grids cheap enough for the unit tests.
func fastOptimizer() *Optimizer {
	o := NewOptimizer(1.0)
	o.NPoints = 301
	o.Workers = 2
	return o
}

func TestEvaluateTraversable(t *testing.T) {
	o := fastOptimizer()
	res := o.Evaluate("power_law", map[string]float64{"n": 0.5}, "zero", nil)

	require.False(t, res.Failed, "reason: %s", res.Reason)
	assert.True(t, res.Traversable)
	assert.True(t, res.ANECViolated)
	assert.Less(t, res.ANECCrossing, 0.0)
	assert.Less(t, res.RhoThroat, 0.0)
	assert.Equal(t, res.ANECCrossing, res.Score)
}

func TestEvaluateUnknownShape(t *testing.T) {
	o := fastOptimizer()
	res := o.Evaluate("spherical_cow", nil, "zero", nil)

	assert.True(t, res.Failed)
	assert.NotEmpty(t, res.Reason)
	assert.True(t, math.IsInf(res.Score, -1))
}

func TestEvaluateNonTraversable(t *testing.T) {
	o := fastOptimizer()
	// Negative exponent grows the shape function past b(l) = l.
	res := o.Evaluate("power_law", map[string]float64{"n": -2.0}, "zero", nil)

	assert.True(t, res.Failed)
	assert.False(t, res.Traversable)
	assert.NotEmpty(t, res.Reason)
}

func TestGridSearchPowerLawDefaults(t *testing.T) {
	o := fastOptimizer()
	results := o.GridSearchPowerLaw(nil)

	require.Len(t, results, 20)
	for _, r := range results {
		assert.Equal(t, "power_law", r.Shape)
		assert.False(t, r.Failed, "n=%v: %s", r.ShapeParams, r.Reason)
	}
}

func TestGridSearchCustomValues(t *testing.T) {
	o := fastOptimizer()
	results := o.GridSearchExponential([]float64{1.0, 2.0, 3.0})

	require.Len(t, results, 3)
	assert.Equal(t, 1.0, results[0].ShapeParams["lambda_scale"])
	assert.Equal(t, 3.0, results[2].ShapeParams["lambda_scale"])
}

func TestProgressCallback(t *testing.T) {
	o := fastOptimizer()

	// Progress calls are serialized by the optimizer, so plain counters are
	// safe here.
	calls := 0
	lastTotal := 0
	o.Progress = func(done, total int) {
		calls++
		lastTotal = total
	}

	o.GridSearchTanh([]float64{0.2, 0.4, 0.6})
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, lastTotal)
}

func TestFindBestOrdering(t *testing.T) {
	o := fastOptimizer()
	best := o.FindBest(10)

	require.Len(t, best, 10)
	for i := 1; i < len(best); i++ {
		assert.GreaterOrEqual(t, best[i-1].Score, best[i].Score,
			"results not sorted at %d", i)
	}
	// Every default configuration is traversable and violating, so the best
	// score is just the largest (least negative) crossing integral.
	assert.True(t, best[0].Traversable)
	assert.False(t, best[0].Failed)
	assert.Equal(t, best[0].ANECCrossing, best[0].Score)
}

func TestComprehensiveSearchFamilies(t *testing.T) {
	o := fastOptimizer()
	all := o.ComprehensiveSearch()

	require.Contains(t, all, "power_law")
	require.Contains(t, all, "exponential")
	require.Contains(t, all, "tanh")
	assert.Len(t, all["power_law"], 20)
	assert.Len(t, all["exponential"], 20)
	assert.Len(t, all["tanh"], 20)
}
