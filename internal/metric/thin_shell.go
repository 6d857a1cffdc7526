package metric

import "math"

// ThinShell is a Visser cut-and-paste wormhole: two Schwarzschild exteriors
// glued at radius a > 2GM/c². The junction carries a surface stress-energy
// fixed by the Israel conditions; all derived quantities are cheap pure
// functions of the parameters, so nothing is cached.
type ThinShell struct {
	Params ShellParams
}

// NewThinShell validates the parameters and returns the wormhole.
func NewThinShell(a, m float64) (*ThinShell, error) {
	params, err := NewShellParams(a, m)
	if err != nil {
		return nil, err
	}
	return &ThinShell{Params: params}, nil
}

// SchwarzschildRadius returns r_s = 2GM/c².
func (s *ThinShell) SchwarzschildRadius() float64 {
	return 2 * s.Params.G * s.Params.M / (s.Params.C * s.Params.C)
}

// Gtt returns g_tt = -(1 - 2M/r), valid for r > a.
func (s *ThinShell) Gtt(r float64) float64 {
	return -(1.0 - 2*s.Params.M/r)
}

// Grr returns g_rr = 1/(1 - 2M/r), valid for r > a.
func (s *ThinShell) Grr(r float64) float64 {
	return 1.0 / (1.0 - 2*s.Params.M/r)
}

// ExtrinsicCurvatureJump returns the discontinuity in K_θθ across the shell.
// Gluing two copies doubles the one-sided curvature: [K] = 2/(a·√(1-2M/a)).
// The φφ component is identical by spherical symmetry.
func (s *ThinShell) ExtrinsicCurvatureJump() (kTheta, kPhi float64) {
	factor := s.Params.A * math.Sqrt(1.0-2*s.Params.M/s.Params.A)
	jump := 2.0 / factor
	return jump, jump
}

// SurfaceEnergyDensity returns σ from the Israel junction conditions,
// σ = -(1/a)·√((a-r_s)/a)/(8πG), scaled by c² to energy-density units (J/m²).
// Negative for any a > r_s: the shell is made of exotic matter.
func (s *ThinShell) SurfaceEnergyDensity() float64 {
	a := s.Params.A
	sigma := -(1.0 / a) * math.Sqrt((a-s.SchwarzschildRadius())/a) / (8 * math.Pi * s.Params.G)
	return sigma * s.Params.C * s.Params.C
}

// SurfaceTension returns τ ≈ σ/2, the static-equilibrium approximation. This
// is a documented simplification, not the full junction-condition derivation.
func (s *ThinShell) SurfaceTension() float64 {
	return s.SurfaceEnergyDensity() / 2.0
}

// IsExotic reports whether the surface stress-energy violates the null or
// weak energy conditions.
func (s *ThinShell) IsExotic() bool {
	sigma := s.SurfaceEnergyDensity()
	tau := s.SurfaceTension()

	nec := sigma+tau >= 0
	wec := sigma >= 0 && sigma+tau >= 0 && sigma-tau >= 0
	return !(nec && wec)
}

// ShellANEC is the result of integrating the projected surface stress along a
// null generator on the shell.
type ShellANEC struct {
	Integral      float64 // J
	Violated      bool
	Sigma         float64 // J/m²
	Tau           float64 // Pa
	NECViolated   bool
	ExoticMatter  bool
	ShellRadius   float64 // m
	Circumference float64 // m
}

// ANECOnShell treats the null generator as carrying the constant integrand
// σ+τ over the shell circumference 2πa, a 1-D proxy for the true
// null-geodesic integral, adequate for sign and scale comparisons.
func (s *ThinShell) ANECOnShell() ShellANEC {
	sigma := s.SurfaceEnergyDensity()
	tau := s.SurfaceTension()
	circumference := 2 * math.Pi * s.Params.A
	integral := (sigma + tau) * circumference

	return ShellANEC{
		Integral:      integral,
		Violated:      integral < 0,
		Sigma:         sigma,
		Tau:           tau,
		NECViolated:   sigma+tau < 0,
		ExoticMatter:  s.IsExotic(),
		ShellRadius:   s.Params.A,
		Circumference: circumference,
	}
}

// ShellSummary aggregates every derived thin-shell quantity.
type ShellSummary struct {
	ShellRadius          float64 `json:"shell_radius_m"`
	MassParameter        float64 `json:"mass_parameter_kg"`
	SchwarzschildRadius  float64 `json:"schwarzschild_radius_m"`
	SurfaceEnergyDensity float64 `json:"surface_energy_density_J_m2"`
	SurfaceTension       float64 `json:"surface_tension_Pa"`
	ExoticMatter         bool    `json:"exotic_matter_required"`
	NECViolated          bool    `json:"NEC_violated"`
	ANECShell            float64 `json:"anec_shell_J"`
	ANECViolated         bool    `json:"anec_violated"`
	Traversable          bool    `json:"traversable"`
}

// Summary returns the complete report for this configuration.
func (s *ThinShell) Summary() ShellSummary {
	anec := s.ANECOnShell()
	return ShellSummary{
		ShellRadius:          s.Params.A,
		MassParameter:        s.Params.M,
		SchwarzschildRadius:  s.SchwarzschildRadius(),
		SurfaceEnergyDensity: anec.Sigma,
		SurfaceTension:       anec.Tau,
		ExoticMatter:         anec.ExoticMatter,
		NECViolated:          anec.NECViolated,
		ANECShell:            anec.Integral,
		ANECViolated:         anec.Violated,
		Traversable:          s.Params.A > s.SchwarzschildRadius(),
	}
}
