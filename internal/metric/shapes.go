package metric

import (
	"fmt"
	"math"
)

// ShapeFunc is a shape function b(l). RedshiftFunc is a redshift function Φ(l).
// Both are pure closures over fixed parameters; they never fail, and feeding
// nonpositive l is the caller's responsibility.
type (
	ShapeFunc    func(l float64) float64
	RedshiftFunc func(l float64) float64
)

// PowerLaw returns b(l) = l0·(l0/l)^n.
//
// b(l0) = l0 and b'(l0) = -n, so the flare-out condition holds for n > -1
// and the shape decays monotonically for n > 0.
func PowerLaw(l0, n float64) ShapeFunc {
	return func(l float64) float64 {
		return l0 * math.Pow(l0/l, n)
	}
}

// Exponential returns b(l) = l0·exp(-(l-l0)/λ); b'(l0) = -l0/λ.
func Exponential(l0, lambda float64) ShapeFunc {
	return func(l float64) float64 {
		return l0 * math.Exp(-(l-l0)/lambda)
	}
}

// TanhShape returns the "tanh" shape family. A literal tanh profile,
// b(l) = l0·[1 - tanh((l-l0)/σl0)]/2, gives b(l0) = l0/2 and breaks the throat
// condition, so this family is deliberately realized as an exponential decay
// with λ = 2σl0, which keeps b(l0) = l0 and b < l away from the throat. The
// family name is kept for configuration compatibility.
func TanhShape(l0, sigma float64) ShapeFunc {
	return Exponential(l0, 2*sigma*l0)
}

// ZeroRedshift returns Φ(l) = 0: no tidal forces from the redshift function.
func ZeroRedshift() RedshiftFunc {
	return func(float64) float64 { return 0 }
}

// ConstantRedshift returns Φ(l) = Φ0.
func ConstantRedshift(phi0 float64) RedshiftFunc {
	return func(float64) float64 { return phi0 }
}

// GaussianHump returns Φ(l) = A·exp(-(l-l0)²/2w²), a tidal-force bump
// localized near the throat. Amplitude must stay small to avoid horizons.
func GaussianHump(l0, amplitude, width float64) RedshiftFunc {
	return func(l float64) float64 {
		d := l - l0
		return amplitude * math.Exp(-d*d/(2*width*width))
	}
}

// Default parameter values used by the factories when a key is absent.
const (
	DefaultPowerLawN   = 2.0
	DefaultLambdaScale = 1.0
	DefaultTanhSigma   = 0.5
	DefaultPhi0        = 0.0
	DefaultHumpAmp     = 0.1
	DefaultHumpWidth   = 1.0
)

func paramOr(params map[string]float64, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return def
}

// NewShapeFunc builds a shape function from a family name and parameter map.
// Supported families: "power_law" (n), "exponential" (lambda_scale),
// "tanh" (sigma).
func NewShapeFunc(family string, l0 float64, params map[string]float64) (ShapeFunc, error) {
	switch family {
	case "power_law":
		return PowerLaw(l0, paramOr(params, "n", DefaultPowerLawN)), nil
	case "exponential":
		return Exponential(l0, paramOr(params, "lambda_scale", DefaultLambdaScale)), nil
	case "tanh":
		return TanhShape(l0, paramOr(params, "sigma", DefaultTanhSigma)), nil
	default:
		return nil, fmt.Errorf("%w: shape %q", ErrUnknownFamily, family)
	}
}

// NewRedshiftFunc builds a redshift function from a family name and parameter
// map. Supported families: "zero", "constant" (Phi0), "gaussian_hump"
// (amplitude, width).
func NewRedshiftFunc(family string, l0 float64, params map[string]float64) (RedshiftFunc, error) {
	switch family {
	case "zero":
		return ZeroRedshift(), nil
	case "constant":
		return ConstantRedshift(paramOr(params, "Phi0", DefaultPhi0)), nil
	case "gaussian_hump":
		return GaussianHump(l0,
			paramOr(params, "amplitude", DefaultHumpAmp),
			paramOr(params, "width", DefaultHumpWidth)), nil
	default:
		return nil, fmt.Errorf("%w: redshift %q", ErrUnknownFamily, family)
	}
}

// ShapeFamilies and RedshiftFamilies list the registered family names.
func ShapeFamilies() []string    { return []string{"power_law", "exponential", "tanh"} }
func RedshiftFamilies() []string { return []string{"zero", "constant", "gaussian_hump"} }
