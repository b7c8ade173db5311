package analysis_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/ensemble"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/physics"
	"github.com/san-kum/attractor/internal/sim"
)

var _ = Describe("LyapunovExponent", func() {
	It("is positive and near 0.9 for the canonical Lorenz regime", func() {
		lambda := analysis.LyapunovExponent(
			physics.NewLorenzCanonical(), integrators.NewRK4(),
			dynamo.State{10, 10, 10}, 0.01, 50.0, 1e-8,
		)
		Expect(lambda).To(BeNumerically(">", 0.5))
		Expect(lambda).To(BeNumerically("<", 1.4))
	})

	It("is non-positive for a contracting system", func() {
		// rho below 1: the origin is globally attracting, nearby
		// trajectories converge.
		sys, err := physics.NewLorenz(10, 0.5, 8.0/3.0)
		Expect(err).NotTo(HaveOccurred())

		lambda := analysis.LyapunovExponent(
			sys, integrators.NewRK4(),
			dynamo.State{1, 1, 1}, 0.01, 50.0, 1e-8,
		)
		Expect(lambda).To(BeNumerically("<=", 0))
	})
})

var _ = Describe("Separation", func() {
	var trajs []*sim.Trajectory

	BeforeEach(func() {
		var err error
		trajs, err = ensemble.Run(
			context.Background(), physics.NewLorenzCanonical(),
			func() dynamo.Integrator { return integrators.NewRK45() },
			ensemble.DefaultSpec(), sim.DefaultConfig(),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts at the imposed perturbation", func() {
		sep := analysis.Separation(trajs[0], trajs[1])
		Expect(sep[0]).To(BeNumerically("~", 1e-5, 1e-10))
	})

	It("crosses 1.0 within the 15-unit horizon, but not in the first unit", func() {
		sep := analysis.Separation(trajs[0], trajs[1])
		when, crossed := analysis.TimeToThreshold(sep, trajs[0].Times, 1.0)
		Expect(crossed).To(BeTrue())
		Expect(when).To(BeNumerically(">", 1.0))
		Expect(when).To(BeNumerically("<", 15.0))
	})

	It("bounds the ensemble-wide separation by the widest pair", func() {
		maxSep := analysis.MaxSeparation(trajs)
		pair := analysis.Separation(trajs[0], trajs[len(trajs)-1])
		for i := range maxSep {
			Expect(maxSep[i]).To(BeNumerically(">=", pair[i]))
		}
	})
})
