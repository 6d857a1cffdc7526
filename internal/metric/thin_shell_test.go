package metric_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"wormsim/internal/metric"
)

var _ = Describe("ThinShell", func() {
	Describe("construction", func() {
		It("accepts a shell outside its Schwarzschild radius", func() {
			sh, err := metric.NewThinShell(2.0, 0.4)
			Expect(err).NotTo(HaveOccurred())
			Expect(sh.Params.A).To(Equal(2.0))
		})

		It("rejects a shell at or inside the horizon", func() {
			// For a 0.4 kg mass parameter r_s ~ 1e-27 m, so force the
			// violation with a nonpositive radius.
			_, err := metric.NewThinShell(0, 0.4)
			Expect(err).To(MatchError(metric.ErrInvalidParameter))

			_, err = metric.NewThinShell(-1, 0.4)
			Expect(err).To(MatchError(metric.ErrInvalidParameter))
		})
	})

	Describe("with a=2 m, M=0.4 kg", func() {
		var sh *metric.ThinShell

		BeforeEach(func() {
			var err error
			sh, err = metric.NewThinShell(2.0, 0.4)
			Expect(err).NotTo(HaveOccurred())
		})

		It("has a tiny Schwarzschild radius", func() {
			rs := sh.SchwarzschildRadius()
			Expect(rs).To(BeNumerically(">", 0))
			Expect(rs).To(BeNumerically("<", 1e-26))
		})

		It("evaluates the exterior Schwarzschild metric in geometric units", func() {
			Expect(sh.Gtt(2.0)).To(BeNumerically("~", -0.6, 1e-12))
			Expect(sh.Grr(2.0)).To(BeNumerically("~", 1.0/0.6, 1e-12))
			// g_tt·g_rr = -1 for any r.
			Expect(sh.Gtt(7.0) * sh.Grr(7.0)).To(BeNumerically("~", -1.0, 1e-12))
		})

		It("reports equal angular extrinsic curvature jumps", func() {
			kTheta, kPhi := sh.ExtrinsicCurvatureJump()
			Expect(kTheta).To(Equal(kPhi))
			Expect(kTheta).To(BeNumerically(">", 0))
		})

		It("requires exotic matter on the shell", func() {
			sigma := sh.SurfaceEnergyDensity()
			Expect(sigma).To(BeNumerically("<", 0))
			Expect(sh.SurfaceTension()).To(Equal(sigma / 2))
			Expect(sh.IsExotic()).To(BeTrue())
		})

		It("violates the shell ANEC", func() {
			res := sh.ANECOnShell()
			Expect(res.Violated).To(BeTrue())
			Expect(res.NECViolated).To(BeTrue())
			Expect(res.Integral).To(BeNumerically("<", 0))
			Expect(res.Circumference).To(BeNumerically("~", 4*math.Pi, 1e-9))

			// ANEC = (σ+τ)·2πa with τ = σ/2.
			want := 1.5 * res.Sigma * res.Circumference
			Expect(res.Integral).To(BeNumerically("~", want, math.Abs(want)*1e-12))
		})

		It("summarizes consistently", func() {
			sum := sh.Summary()
			Expect(sum.ShellRadius).To(Equal(2.0))
			Expect(sum.MassParameter).To(Equal(0.4))
			Expect(sum.Traversable).To(BeTrue())
			Expect(sum.ExoticMatter).To(BeTrue())
			Expect(sum.ANECViolated).To(BeTrue())
			Expect(sum.SurfaceEnergyDensity).To(BeNumerically("<", 0))
		})
	})

	Describe("scaling", func() {
		It("weakens the surface density as the shell widens", func() {
			narrow, err := metric.NewThinShell(2.0, 0.4)
			Expect(err).NotTo(HaveOccurred())
			wide, err := metric.NewThinShell(5.0, 0.4)
			Expect(err).NotTo(HaveOccurred())

			// |σ| ∝ 1/a up to the near-unity horizon factor.
			Expect(math.Abs(wide.SurfaceEnergyDensity())).To(
				BeNumerically("<", math.Abs(narrow.SurfaceEnergyDensity())))
		})
	})
})
