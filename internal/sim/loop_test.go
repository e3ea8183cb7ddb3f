package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/k-sandesh/edusim/internal/sim"
)

// rampModel derives state linearly from (params, t) and finishes at t >= 2.
type rampModel struct{}

func (rampModel) Name() string  { return "ramp" }
func (rampModel) Title() string { return "Ramp" }

func (rampModel) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "gain", Label: "Gain", Min: 0, Max: 10, Step: 0.5, Default: 2},
	}
}

func (rampModel) Labels() []string { return []string{"value"} }

func (rampModel) Eval(p *sim.Params, t float64) sim.State {
	return sim.State{p.Get("gain") * t}
}

func (rampModel) Done(p *sim.Params, t float64) bool { return t >= 2.0 }

var _ = Describe("Loop", func() {
	var loop *sim.Loop

	BeforeEach(func() {
		loop = sim.NewLoop(rampModel{})
	})

	It("starts Idle with state evaluated at t=0", func() {
		Expect(loop.State()).To(Equal(sim.Idle))
		Expect(loop.Time()).To(BeZero())
		Expect(loop.Last()).To(Equal(sim.State{0}))
	})

	Describe("Tick", func() {
		It("is a no-op while Idle", func() {
			st := loop.Tick(0.5)
			Expect(st).To(Equal(sim.State{0}))
			Expect(loop.Time()).To(BeZero())
		})

		It("advances the step counter and recomputes state while Running", func() {
			loop.Start()
			st := loop.Tick(0.5)
			Expect(loop.Time()).To(BeNumerically("~", 0.5, 1e-12))
			Expect(st[0]).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("scales the advance by the loop speed", func() {
			loop.Start()
			loop.SetSpeed(2.0)
			loop.Tick(0.5)
			Expect(loop.Time()).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("stops when the model reports a terminal condition", func() {
			loop.Start()
			loop.Tick(1.0)
			Expect(loop.Running()).To(BeTrue())
			loop.Tick(1.0)
			Expect(loop.State()).To(Equal(sim.Idle))
			// terminal state stays visible
			Expect(loop.Last()[0]).To(BeNumerically("~", 4.0, 1e-12))
		})
	})

	Describe("Start and Stop", func() {
		It("transitions Idle->Running and back", func() {
			loop.Start()
			Expect(loop.Running()).To(BeTrue())
			loop.Stop()
			Expect(loop.State()).To(Equal(sim.Idle))
		})

		It("treats Start while Running as a self-transition", func() {
			loop.Start()
			loop.Tick(0.5)
			loop.Start()
			Expect(loop.Time()).To(BeNumerically("~", 0.5, 1e-12))
		})
	})

	Describe("Reset", func() {
		It("stops the loop, zeroes time, and restores defaults", func() {
			loop.Start()
			loop.Tick(1.0)
			Expect(loop.Params().Set("gain", 7)).To(Succeed())

			st := loop.Reset()

			Expect(loop.State()).To(Equal(sim.Idle))
			Expect(loop.Time()).To(BeZero())
			Expect(loop.Params().Get("gain")).To(Equal(2.0))
			Expect(st).To(Equal(sim.State{0}))
		})
	})

	Describe("determinism", func() {
		It("yields identical state for identical (params, time)", func() {
			a := sim.NewLoop(rampModel{})
			b := sim.NewLoop(rampModel{})
			a.Start()
			b.Start()
			for i := 0; i < 7; i++ {
				a.Tick(0.1)
				b.Tick(0.1)
			}
			Expect(a.Last()).To(Equal(b.Last()))
		})
	})
})
