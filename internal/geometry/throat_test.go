package geometry

import (
	"math"
	"testing"

	"wormsim/internal/metric"
	"wormsim/internal/numeric"
)

func newWormhole(t *testing.T) *metric.MorrisThorne {
	t.Helper()
	wh, err := metric.New(1.0, "power_law", map[string]float64{"n": 0.5}, "zero", nil)
	if err != nil {
		t.Fatal(err)
	}
	return wh
}

func TestProperCircumference(t *testing.T) {
	g := NewThroatGeometry(newWormhole(t))
	if got := g.ProperCircumference(1.0); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("expected 2π, got %g", got)
	}
}

func TestEmbeddingHeightMonotone(t *testing.T) {
	g := NewThroatGeometry(newWormhole(t))
	ls := numeric.Linspace(1.0, 5.0, 200)
	z := g.EmbeddingHeight(ls)

	if z[0] != 0 {
		t.Errorf("expected z(l0)=0, got %g", z[0])
	}
	for i := 1; i < len(z); i++ {
		if z[i] < z[i-1] {
			t.Fatalf("embedding height decreasing at %d: %g < %g", i, z[i], z[i-1])
		}
	}
}

func TestTidalAccelerationZeroRedshift(t *testing.T) {
	g := NewThroatGeometry(newWormhole(t))
	if got := g.TidalAccelerationRadial(1.5); got != 0 {
		t.Errorf("expected zero tidal acceleration for Φ=0, got %g", got)
	}
}

func TestRicciScalarThroat(t *testing.T) {
	g := NewThroatGeometry(newWormhole(t))
	// At the throat with Φ=0: R ≈ 2[2b/l³ - b'/l²] = 2[2 - (-0.5)] = 5.
	got := g.RicciScalar(1.0)
	if math.Abs(got-5.0) > 0.05 {
		t.Errorf("expected R(l0)≈5, got %g", got)
	}
}

func TestThroatProperties(t *testing.T) {
	g := NewThroatGeometry(newWormhole(t))
	props := g.ThroatProperties()

	if props.L0 != 1.0 {
		t.Errorf("expected l0=1, got %g", props.L0)
	}
	if !props.Traversable {
		t.Errorf("expected traversable: %s", props.Message)
	}
	if !props.ExoticRequired {
		t.Error("flare-out below 1 should require exotic matter")
	}
	if math.Abs(props.BPrime-(-0.5)) > 0.01 {
		t.Errorf("expected b'(l0)≈-0.5, got %g", props.BPrime)
	}
}

func TestCrossSection(t *testing.T) {
	g := NewThroatGeometry(newWormhole(t))
	ls, rs := g.CrossSection(50)

	if len(ls) != 50 || len(rs) != 50 {
		t.Fatalf("expected 50 samples, got %d/%d", len(ls), len(rs))
	}
	if ls[0] != 1.0 || ls[49] != 5.0 {
		t.Errorf("expected range [l0, 5l0], got [%g, %g]", ls[0], ls[49])
	}
	for i := range ls {
		if rs[i] != ls[i] {
			t.Fatalf("embedding radius should equal l at %d", i)
		}
	}
}
