package geometry

import (
	"math"

	"wormsim/internal/metric"
	"wormsim/internal/numeric"
)

// ThroatGeometry derives secondary geometric diagnostics at and near the
// wormhole throat: embedding-diagram profile, tidal acceleration and an
// approximate Ricci scalar. None of these feed the ANEC evaluation; they
// exist for reporting and visualization.
type ThroatGeometry struct {
	wh *metric.MorrisThorne
}

func NewThroatGeometry(wh *metric.MorrisThorne) *ThroatGeometry {
	return &ThroatGeometry{wh: wh}
}

// ProperCircumference returns C(l) = 2πl.
func (g *ThroatGeometry) ProperCircumference(l float64) float64 {
	return 2 * math.Pi * l
}

// EmbeddingRadius returns the surface-of-revolution radius, which for the
// Morris-Thorne metric is the coordinate itself.
func (g *ThroatGeometry) EmbeddingRadius(l float64) float64 {
	return l
}

// EmbeddingHeight accumulates z(l) from the throat over the given samples,
// using dz/dl = √(b/(l-b)). The small epsilon keeps the integrand finite at
// the throat, where l - b vanishes.
func (g *ThroatGeometry) EmbeddingHeight(ls []float64) []float64 {
	z := make([]float64, len(ls))
	for i := 1; i < len(ls); i++ {
		b := g.wh.B(ls[i])
		integrand := math.Sqrt(b / (ls[i] - b + 1e-12))
		z[i] = z[i-1] + integrand*(ls[i]-ls[i-1])
	}
	return z
}

// TidalAccelerationRadial approximates the radial tidal acceleration from the
// second derivative of the redshift function, scaled by c².
func (g *ThroatGeometry) TidalAccelerationRadial(l float64) float64 {
	h := numeric.Step(g.wh.Params.L0)
	phiPP := numeric.SecondDiff(g.wh.Phi, l, h)
	return phiPP * g.wh.Params.C * g.wh.Params.C
}

// RicciScalar evaluates the simplified spherically symmetric Ricci scalar
//
//	R ≈ 2[Φ'' + 2Φ'/l - b'/l² + 2b/l³]
//
// A full curvature calculation would need all Christoffel symbols; this
// approximation is only used as a reporting diagnostic.
func (g *ThroatGeometry) RicciScalar(l float64) float64 {
	h := numeric.Step(g.wh.Params.L0)
	b := g.wh.B(l)
	bPrime := numeric.CentralDiff(g.wh.B, l, h)
	phiPrime := numeric.CentralDiff(g.wh.Phi, l, h)
	phiPP := numeric.SecondDiff(g.wh.Phi, l, h)

	return 2 * (phiPP + 2*phiPrime/l - bPrime/(l*l) + 2*b/(l*l*l))
}

// ThroatProperties bundles the throat-level diagnostics for reporting.
type ThroatProperties struct {
	L0             float64 `json:"l0_m"`
	Circumference  float64 `json:"circumference_m"`
	BPrime         float64 `json:"b_prime"`
	ExoticRequired bool    `json:"exotic_matter_required"`
	Traversable    bool    `json:"traversable"`
	Message        string  `json:"traversability_message"`
	RicciThroat    float64 `json:"ricci_scalar_throat"`
	TidalThroat    float64 `json:"tidal_accel_throat"`
}

// ThroatProperties evaluates the full throat diagnostic bundle.
func (g *ThroatGeometry) ThroatProperties() ThroatProperties {
	l0 := g.wh.Params.L0
	traversable, msg := g.wh.IsTraversable(nil)
	bPrime := g.wh.ThroatFlareOut()

	return ThroatProperties{
		L0:             l0,
		Circumference:  g.ProperCircumference(l0),
		BPrime:         bPrime,
		ExoticRequired: bPrime < 1.0,
		Traversable:    traversable,
		Message:        msg,
		RicciThroat:    g.RicciScalar(l0),
		TidalThroat:    g.TidalAccelerationRadial(l0),
	}
}

// CrossSection samples the embedding profile on [l0, 5l0] for plotting.
func (g *ThroatGeometry) CrossSection(nPoints int) (ls, rs []float64) {
	if nPoints < 2 {
		nPoints = 100
	}
	l0 := g.wh.Params.L0
	ls = numeric.Linspace(l0, 5*l0, nPoints)
	rs = make([]float64, nPoints)
	for i, l := range ls {
		rs[i] = g.EmbeddingRadius(l)
	}
	return ls, rs
}
