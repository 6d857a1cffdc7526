// Package stress derives the stress-energy tensor of a Morris-Thorne
// wormhole from the Einstein field equations G_μν = 8πG T_μν, evaluated
// through pre-derived analytic expressions for the spherically symmetric
// ansatz with numeric derivatives of b and Φ.
//
// The flare-out condition b'(l0) < 1 implies ρ(l0) < 0: exotic matter at the
// throat. That implication is the central claim the rest of the system tests.
package stress

import (
	"math"

	"wormsim/internal/metric"
	"wormsim/internal/numeric"
)

// Solver computes stress-energy components for one wormhole. Derivatives are
// recomputed on every call with the shared finite-difference step; nothing is
// cached, so results for a given l are bit-identical across call sites.
type Solver struct {
	wh *metric.MorrisThorne
	g  float64
	c  float64
}

func NewSolver(wh *metric.MorrisThorne) *Solver {
	return &Solver{wh: wh, g: wh.Params.G, c: wh.Params.C}
}

func (s *Solver) step() float64 { return numeric.Step(s.wh.Params.L0) }

// EnergyDensity returns ρ(l) in J/m³:
//
//	ρ = [b' - (1 - b/l)·2Φ'l] / (8πG l²) · c²
//
// For Φ = 0 this reduces to b'/(8πG l²)·c², so flare-out at the throat gives
// ρ(l0) < 0.
func (s *Solver) EnergyDensity(l float64) float64 {
	h := s.step()
	b := s.wh.B(l)
	bPrime := numeric.CentralDiff(s.wh.B, l, h)
	phiPrime := numeric.CentralDiff(s.wh.Phi, l, h)

	rho := (bPrime - (1.0-b/l)*(2*phiPrime*l)) / (8 * math.Pi * s.g * l * l)
	return rho * s.c * s.c
}

// RadialPressure returns p_r(l) in Pa:
//
//	p_r = -[b/l³ - 2(1 - b/l)Φ'/l] / (8πG) · c²
func (s *Solver) RadialPressure(l float64) float64 {
	h := s.step()
	b := s.wh.B(l)
	phiPrime := numeric.CentralDiff(s.wh.Phi, l, h)

	pr := -(b/(l*l*l) - 2*(1.0-b/l)*phiPrime/l) / (8 * math.Pi * s.g)
	return pr * s.c * s.c
}

// TangentialPressure returns p_t(l) in Pa:
//
//	p_t = [(1-b/l)(Φ'' + Φ'²) + (Φ'/l)(b' - b/l) - b''/2l + b'b/2l²] / (8πG l) · c²
func (s *Solver) TangentialPressure(l float64) float64 {
	h := s.step()
	b := s.wh.B(l)
	bPrime := numeric.CentralDiff(s.wh.B, l, h)
	bPP := numeric.SecondDiff(s.wh.B, l, h)
	phiPrime := numeric.CentralDiff(s.wh.Phi, l, h)
	phiPP := numeric.SecondDiff(s.wh.Phi, l, h)

	factor := 1.0 - b/l
	term1 := factor * (phiPP + phiPrime*phiPrime)
	term2 := (phiPrime / l) * (bPrime - b/l)
	term3 := -bPP / (2 * l)
	term4 := bPrime * b / (2 * l * l)

	pt := (term1 + term2 + term3 + term4) / (8 * math.Pi * s.g * l)
	return pt * s.c * s.c
}

// Tensor is one stress-energy sample. The T components alias the principal
// values under the diagonal spherically symmetric ansatz.
type Tensor struct {
	Rho float64 // energy density, J/m³
	Pr  float64 // radial pressure, Pa
	Pt  float64 // tangential pressure, Pa
}

func (t Tensor) Ttt() float64         { return t.Rho }
func (t Tensor) Trr() float64         { return t.Pr }
func (t Tensor) TThetaTheta() float64 { return t.Pt }
func (t Tensor) TPhiPhi() float64     { return t.Pt }

// StressEnergy evaluates all components at one coordinate.
func (s *Solver) StressEnergy(l float64) Tensor {
	return Tensor{
		Rho: s.EnergyDensity(l),
		Pr:  s.RadialPressure(l),
		Pt:  s.TangentialPressure(l),
	}
}

// StressEnergyAll evaluates the tensor at each sample.
func (s *Solver) StressEnergyAll(ls []float64) []Tensor {
	out := make([]Tensor, len(ls))
	for i, l := range ls {
		out[i] = s.StressEnergy(l)
	}
	return out
}

// ThroatStress is the stress-energy evaluated exactly at l0.
type ThroatStress struct {
	L0           float64 `json:"l0_m"`
	Rho          float64 `json:"rho_throat_J_m3"`
	Pr           float64 `json:"p_r_throat_Pa"`
	Pt           float64 `json:"p_t_throat_Pa"`
	ExoticMatter bool    `json:"exotic_matter"`
}

// ThroatStressEnergy evaluates the tensor at the throat and flags exotic
// matter when ρ(l0) < 0.
func (s *Solver) ThroatStressEnergy() ThroatStress {
	l0 := s.wh.Params.L0
	t := s.StressEnergy(l0)
	return ThroatStress{
		L0:           l0,
		Rho:          t.Rho,
		Pr:           t.Pr,
		Pt:           t.Pt,
		ExoticMatter: t.Rho < 0,
	}
}

// ConditionViolations holds elementwise energy-condition violation masks over
// a sample vector.
type ConditionViolations struct {
	NEC []bool // ρ + p_i ≥ 0 fails for some i
	WEC []bool // NEC ∧ ρ ≥ 0 fails
	SEC []bool // NEC ∧ ρ + p_r + 2p_t ≥ 0 fails
	DEC []bool // ρ ≥ |p_i| fails for some i
}

// EnergyConditions checks the standard pointwise energy conditions at each
// sample and returns violation masks.
func (s *Solver) EnergyConditions(ls []float64) ConditionViolations {
	v := ConditionViolations{
		NEC: make([]bool, len(ls)),
		WEC: make([]bool, len(ls)),
		SEC: make([]bool, len(ls)),
		DEC: make([]bool, len(ls)),
	}
	for i, l := range ls {
		t := s.StressEnergy(l)
		nec := t.Rho+t.Pr >= 0 && t.Rho+t.Pt >= 0
		wec := t.Rho >= 0 && nec
		sec := t.Rho+t.Pr+2*t.Pt >= 0 && nec
		dec := t.Rho >= math.Abs(t.Pr) && t.Rho >= math.Abs(t.Pt)

		v.NEC[i] = !nec
		v.WEC[i] = !wec
		v.SEC[i] = !sec
		v.DEC[i] = !dec
	}
	return v
}

// ViolationFraction returns the fraction of true entries in a mask.
func ViolationFraction(mask []bool) float64 {
	if len(mask) == 0 {
		return 0
	}
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return float64(n) / float64(len(mask))
}
