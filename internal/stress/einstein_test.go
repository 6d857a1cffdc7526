package stress

import (
	"math"
	"testing"

	"wormsim/internal/metric"
	"wormsim/internal/numeric"
)

func newSolver(t *testing.T, shape string, params map[string]float64) *Solver {
	t.Helper()
	wh, err := metric.New(1.0, shape, params, "zero", nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewSolver(wh)
}

func TestEnergyDensityAnalytic(t *testing.T) {
	// With Φ = 0, ρ = b'/(8πG l²)·c². At the throat of the n=0.5 power law,
	// b'(l0) = -0.5.
	s := newSolver(t, "power_law", map[string]float64{"n": 0.5})

	want := -0.5 / (8 * math.Pi * metric.GravitationalConstant) *
		metric.SpeedOfLight * metric.SpeedOfLight
	got := s.EnergyDensity(1.0)

	if math.Abs(got-want)/math.Abs(want) > 0.01 {
		t.Errorf("expected rho(l0)≈%g, got %g", want, got)
	}
}

func TestRadialPressureAnalytic(t *testing.T) {
	// With Φ = 0, p_r = -b/l³/(8πG)·c²; at the throat b(l0) = l0 = 1.
	s := newSolver(t, "power_law", map[string]float64{"n": 0.5})

	want := -1.0 / (8 * math.Pi * metric.GravitationalConstant) *
		metric.SpeedOfLight * metric.SpeedOfLight
	got := s.RadialPressure(1.0)

	if math.Abs(got-want)/math.Abs(want) > 1e-9 {
		t.Errorf("expected p_r(l0)=%g, got %g", want, got)
	}
}

func TestThroatExoticMatterAllFamilies(t *testing.T) {
	// Flare-out b'(l0) < 1 forces rho(l0) < 0 for every default family.
	cases := []struct {
		shape  string
		params map[string]float64
	}{
		{"power_law", map[string]float64{"n": 0.5}},
		{"power_law", map[string]float64{"n": 0.8}},
		{"exponential", map[string]float64{"lambda_scale": 1.0}},
		{"tanh", map[string]float64{"sigma": 0.3}},
	}

	for _, c := range cases {
		s := newSolver(t, c.shape, c.params)
		throat := s.ThroatStressEnergy()
		if !throat.ExoticMatter {
			t.Errorf("%s %v: expected exotic matter at throat, rho=%g", c.shape, c.params, throat.Rho)
		}
		if throat.Rho >= 0 {
			t.Errorf("%s %v: expected rho(l0)<0, got %g", c.shape, c.params, throat.Rho)
		}
	}
}

func TestStressEnergyAll(t *testing.T) {
	s := newSolver(t, "power_law", map[string]float64{"n": 0.5})
	ls := numeric.Linspace(1.0, 3.0, 10)
	tensors := s.StressEnergyAll(ls)

	if len(tensors) != 10 {
		t.Fatalf("expected 10 tensors, got %d", len(tensors))
	}
	for i, tt := range tensors {
		if tt != s.StressEnergy(ls[i]) {
			t.Fatalf("batch and scalar evaluation differ at %d", i)
		}
	}
}

func TestTensorAliases(t *testing.T) {
	tensor := Tensor{Rho: 1, Pr: 2, Pt: 3}
	if tensor.Ttt() != 1 || tensor.Trr() != 2 ||
		tensor.TThetaTheta() != 3 || tensor.TPhiPhi() != 3 {
		t.Error("component aliases disagree with principal values")
	}
}

func TestEnergyConditionsViolatedNearThroat(t *testing.T) {
	s := newSolver(t, "power_law", map[string]float64{"n": 0.5})
	ls := numeric.Linspace(1.0, 2.0, 50)
	v := s.EnergyConditions(ls)

	if ViolationFraction(v.NEC) == 0 {
		t.Error("expected NEC violations near the throat")
	}
	if ViolationFraction(v.WEC) < ViolationFraction(v.NEC) {
		t.Error("WEC violations should be at least as frequent as NEC violations")
	}
	if ViolationFraction(v.DEC) == 0 {
		t.Error("expected DEC violations where rho < 0")
	}
}

func TestViolationFraction(t *testing.T) {
	if got := ViolationFraction([]bool{true, false, true, false}); got != 0.5 {
		t.Errorf("expected 0.5, got %g", got)
	}
	if got := ViolationFraction(nil); got != 0 {
		t.Errorf("expected 0 for empty mask, got %g", got)
	}
}
