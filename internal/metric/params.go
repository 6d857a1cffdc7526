package metric

import "fmt"

// Physical constants in SI units.
const (
	SpeedOfLight          = 2.998e8   // m/s
	GravitationalConstant = 6.674e-11 // m³/kg/s²
)

// Params holds the physical parameters of a Morris-Thorne wormhole.
type Params struct {
	L0 float64 // throat radius (m)
	M  float64 // mass parameter (kg), zero for traversable
	C  float64 // speed of light (m/s)
	G  float64 // gravitational constant (m³/kg/s²)
}

// NewParams validates and returns wormhole parameters with standard constants.
func NewParams(l0 float64) (Params, error) {
	if l0 <= 0 {
		return Params{}, fmt.Errorf("%w: throat radius l0=%g must be positive", ErrInvalidParameter, l0)
	}
	return Params{L0: l0, C: SpeedOfLight, G: GravitationalConstant}, nil
}

// ShellParams holds the parameters of a thin-shell wormhole.
type ShellParams struct {
	A float64 // shell radius (m), must exceed the Schwarzschild radius
	M float64 // mass parameter (kg)
	G float64
	C float64
}

// NewShellParams validates that the shell sits outside its own horizon.
func NewShellParams(a, m float64) (ShellParams, error) {
	rs := 2 * GravitationalConstant * m / (SpeedOfLight * SpeedOfLight)
	if a <= rs {
		return ShellParams{}, fmt.Errorf("%w: shell radius a=%g must be > 2GM/c²=%g", ErrInvalidParameter, a, rs)
	}
	return ShellParams{A: a, M: m, G: GravitationalConstant, C: SpeedOfLight}, nil
}
