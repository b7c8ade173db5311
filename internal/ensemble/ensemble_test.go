package ensemble

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/physics"
	"github.com/san-kum/attractor/internal/sim"
)

func newRK45() dynamo.Integrator { return integrators.NewRK45() }

func TestInitialStates(t *testing.T) {
	g := NewWithT(t)

	spec := DefaultSpec()
	states := spec.InitialStates()

	g.Expect(states).To(HaveLen(5))
	g.Expect(states[0]).To(Equal(dynamo.State{10, 10, 10}))
	for k, x := range states {
		g.Expect(x[0]).To(Equal(10.0), "x must be unperturbed")
		g.Expect(x[1]).To(Equal(10.0), "y must be unperturbed")
		g.Expect(x[2]).To(BeNumerically("~", 10+float64(k)*1e-5, 1e-12))
	}

	// Perturbing must not alias the base state.
	g.Expect(spec.Base[2]).To(Equal(10.0))
}

func TestRunSharedCadence(t *testing.T) {
	g := NewWithT(t)

	cfg := sim.DefaultConfig()
	cfg.Duration = 2.0
	trajs, err := Run(context.Background(), physics.NewLorenzCanonical(), newRK45, DefaultSpec(), cfg)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(trajs).To(HaveLen(5))

	for _, tr := range trajs {
		g.Expect(tr.Len()).To(Equal(trajs[0].Len()))
		g.Expect(tr.Times).To(Equal(trajs[0].Times))
	}
}

func TestRunSensitiveDependence(t *testing.T) {
	g := NewWithT(t)

	trajs, err := Run(context.Background(), physics.NewLorenzCanonical(), newRK45, DefaultSpec(), sim.DefaultConfig())
	g.Expect(err).NotTo(HaveOccurred())

	a, b := trajs[0], trajs[1]

	// Neighbors stay within 1e-3 for at least the first time unit...
	for i := range a.Times {
		if a.Times[i] > 1.0 {
			break
		}
		g.Expect(a.States[i].Dist(b.States[i])).To(BeNumerically("<", 1e-3),
			"separation at t=%.2f", a.Times[i])
	}

	// ...yet diverge past 1.0 before the 15-unit horizon ends.
	maxSep := 0.0
	for i := range a.Times {
		if d := a.States[i].Dist(b.States[i]); d > maxSep {
			maxSep = d
		}
	}
	g.Expect(maxSep).To(BeNumerically(">", 1.0), "chaotic divergence")
}

func TestRunDeterministicAcrossRuns(t *testing.T) {
	g := NewWithT(t)

	cfg := sim.DefaultConfig()
	cfg.Duration = 3.0

	first, err := Run(context.Background(), physics.NewLorenzCanonical(), newRK45, DefaultSpec(), cfg)
	g.Expect(err).NotTo(HaveOccurred())
	second, err := Run(context.Background(), physics.NewLorenzCanonical(), newRK45, DefaultSpec(), cfg)
	g.Expect(err).NotTo(HaveOccurred())

	for k := range first {
		for i := range first[k].States {
			g.Expect(first[k].States[i].Dist(second[k].States[i])).To(BeNumerically("<", 1e-6))
		}
	}
}

func TestRunValidation(t *testing.T) {
	g := NewWithT(t)

	bad := DefaultSpec()
	bad.Count = 0
	_, err := Run(context.Background(), physics.NewLorenzCanonical(), newRK45, bad, sim.DefaultConfig())
	g.Expect(err).To(HaveOccurred())

	bad = DefaultSpec()
	bad.PerturbIndex = 7
	_, err = Run(context.Background(), physics.NewLorenzCanonical(), newRK45, bad, sim.DefaultConfig())
	g.Expect(err).To(HaveOccurred())
}
