package metric

import (
	"fmt"
	"math"

	"wormsim/internal/numeric"
)

// MorrisThorne is a traversable wormhole in Schwarzschild-like coordinates
// (t, l, θ, φ):
//
//	ds² = -e^{2Φ(l)} c²dt² + dl²/(1 - b(l)/l) + l²(dθ² + sin²θ dφ²)
//
// The shape function b(l) fixes the throat geometry, the redshift function
// Φ(l) the gravitational time dilation. Immutable after construction; every
// derived quantity is a pure function of the sample coordinate.
type MorrisThorne struct {
	Params   Params
	shape    ShapeFunc
	redshift RedshiftFunc
}

// NewMorrisThorne wraps validated parameters with bound shape and redshift
// closures.
func NewMorrisThorne(params Params, shape ShapeFunc, redshift RedshiftFunc) *MorrisThorne {
	return &MorrisThorne{Params: params, shape: shape, redshift: redshift}
}

// New builds a Morris-Thorne wormhole from named function families.
// Missing parameter keys take the documented defaults.
func New(l0 float64, shape string, shapeParams map[string]float64,
	redshift string, redshiftParams map[string]float64) (*MorrisThorne, error) {

	params, err := NewParams(l0)
	if err != nil {
		return nil, err
	}
	b, err := NewShapeFunc(shape, l0, shapeParams)
	if err != nil {
		return nil, err
	}
	phi, err := NewRedshiftFunc(redshift, l0, redshiftParams)
	if err != nil {
		return nil, err
	}
	return NewMorrisThorne(params, b, phi), nil
}

// B evaluates the shape function.
func (w *MorrisThorne) B(l float64) float64 { return w.shape(l) }

// Phi evaluates the redshift function.
func (w *MorrisThorne) Phi(l float64) float64 { return w.redshift(l) }

// Shape returns the bound shape function for callers that integrate over it.
func (w *MorrisThorne) Shape() ShapeFunc { return w.shape }

// Tensor4 is a diagonal spacetime tensor at one sample point. Off-diagonal
// components vanish by spherical symmetry.
type Tensor4 [4][4]float64

// Metric returns g_μν at radial coordinate l and polar angle theta.
func (w *MorrisThorne) Metric(l, theta float64) Tensor4 {
	var g Tensor4
	g[0][0] = -math.Exp(2 * w.Phi(l))
	g[1][1] = 1.0 / (1.0 - w.B(l)/l)
	g[2][2] = l * l
	g[3][3] = l * math.Sin(theta) * l * math.Sin(theta)
	return g
}

// InverseMetric returns g^μν, the exact reciprocal diagonal.
func (w *MorrisThorne) InverseMetric(l, theta float64) Tensor4 {
	var g Tensor4
	g[0][0] = -math.Exp(-2 * w.Phi(l))
	g[1][1] = 1.0 - w.B(l)/l
	g[2][2] = 1.0 / (l * l)
	g[3][3] = 1.0 / (l * math.Sin(theta) * l * math.Sin(theta))
	return g
}

// ThroatFlareOut computes b'(l0) by central difference with the shared step.
// Values below 1 satisfy the flare-out condition and force exotic matter at
// the throat.
func (w *MorrisThorne) ThroatFlareOut() float64 {
	l0 := w.Params.L0
	return numeric.CentralDiff(w.shape, l0, numeric.Step(l0))
}

// IsTraversable checks the Morris-Thorne traversability conditions over
// testPoints (default: 100 samples on [l0, 3l0]) and returns the verdict with
// a human-readable reason. Checks run in a fixed order and short-circuit on
// the first failure:
//
//  1. Φ finite at every test point (no horizon)
//  2. b(l0) = l0 within 1e-6 relative tolerance (throat condition)
//  3. b'(l0) < 1 (flare-out)
//  4. b(l) < l for test points above 1.001·l0 (no coordinate singularity)
func (w *MorrisThorne) IsTraversable(testPoints []float64) (bool, string) {
	l0 := w.Params.L0
	if testPoints == nil {
		testPoints = numeric.Linspace(l0, 3*l0, 100)
	}

	for _, l := range testPoints {
		if phi := w.Phi(l); math.IsNaN(phi) || math.IsInf(phi, 0) {
			return false, "Redshift function Φ(l) has infinities (horizon present)"
		}
	}

	bThroat := w.B(l0)
	if math.Abs(bThroat-l0) > 1e-6*math.Abs(l0) {
		return false, fmt.Sprintf("Throat condition violated: b(l0)=%.6f != l0=%g", bThroat, l0)
	}

	if bPrime := w.ThroatFlareOut(); bPrime >= 1.0 {
		return false, fmt.Sprintf("Flare-out condition violated: b'(l0)=%.6f >= 1", bPrime)
	}

	for _, l := range testPoints {
		if l <= l0*1.001 {
			continue
		}
		if w.B(l) >= l {
			return false, "Shape function b(l) >= l (coordinate singularity)"
		}
	}

	return true, "All traversability conditions satisfied"
}
