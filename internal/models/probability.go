package models

import (
	"math"
	"math/rand"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Experiments for the probability simulator, in selector order.
var Experiments = []string{"Coin Flip", "Dice Roll", "Two Dice", "Spinner"}

const spinnerSections = 8

// Probability runs repeated random trials and accumulates outcome counts.
// Trials are revealed at a fixed rate while animating; the whole outcome
// sequence is derived from the seed parameter, so state at any step is
// reproducible from (params, step) alone.
type Probability struct{}

func NewProbability() *Probability { return &Probability{} }

func (*Probability) Name() string  { return "probability" }
func (*Probability) Title() string { return "Probability Experiments" }

func (*Probability) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "experiment", Label: "Experiment", Min: 0, Max: float64(len(Experiments) - 1), Step: 1, Default: 0},
		{Name: "trials", Label: "Trials", Min: 10, Max: 1000, Step: 10, Default: 100},
		{Name: "rate", Label: "Trials/sec", Min: 1, Max: 100, Step: 1, Default: 20},
		{Name: "seed", Label: "Seed", Min: 1, Max: 99999, Step: 1, Default: 42},
	}
}

func (*Probability) Labels() []string {
	return []string{"completed", "mean", "expected"}
}

func (m *Probability) Eval(p *sim.Params, t float64) sim.State {
	completed := m.Completed(p, t)
	outcomes := m.draw(p, completed)

	sum := 0.0
	for _, o := range outcomes {
		sum += float64(o)
	}
	mean := 0.0
	if completed > 0 {
		mean = sum / float64(completed)
	}

	return sim.State{float64(completed), mean, m.ExpectedMean(p)}
}

func (m *Probability) Done(p *sim.Params, t float64) bool {
	return m.Completed(p, t) >= int(p.Get("trials"))
}

// Completed is the number of trials revealed by time t.
func (*Probability) Completed(p *sim.Params, t float64) int {
	n := int(math.Floor(p.Get("rate") * t))
	total := int(p.Get("trials"))
	if n > total {
		n = total
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Outcomes lists the bucket labels for the selected experiment.
func (m *Probability) Outcomes(p *sim.Params) []string {
	switch int(p.Get("experiment")) {
	case 1:
		return []string{"1", "2", "3", "4", "5", "6"}
	case 2:
		return []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	case 3:
		return []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	default:
		return []string{"Heads", "Tails"}
	}
}

// Counts buckets the first Completed(p, t) trial outcomes.
func (m *Probability) Counts(p *sim.Params, t float64) []int {
	outcomes := m.draw(p, m.Completed(p, t))
	counts := make([]int, len(m.Outcomes(p)))

	offset := 0
	switch int(p.Get("experiment")) {
	case 1:
		offset = 1 // die faces 1..6
	case 2:
		offset = 2 // two-dice sums 2..12
	case 3:
		offset = 1 // spinner sections 1..8
	}

	for _, o := range outcomes {
		i := o - offset
		if i >= 0 && i < len(counts) {
			counts[i]++
		}
	}
	return counts
}

// ExpectedMean is the theoretical mean outcome for the experiment.
func (*Probability) ExpectedMean(p *sim.Params) float64 {
	switch int(p.Get("experiment")) {
	case 1:
		return 3.5
	case 2:
		return 7.0
	case 3:
		return (1 + spinnerSections) / 2.0
	default:
		return 0.5 // heads=1, tails=0
	}
}

// draw regenerates the first n outcomes from the seed. Coin flips map
// heads to 1 and tails to 0.
func (*Probability) draw(p *sim.Params, n int) []int {
	rng := rand.New(rand.NewSource(int64(p.Get("seed"))))
	outcomes := make([]int, n)

	switch int(p.Get("experiment")) {
	case 1:
		for i := range outcomes {
			outcomes[i] = rng.Intn(6) + 1
		}
	case 2:
		for i := range outcomes {
			outcomes[i] = rng.Intn(6) + 1 + rng.Intn(6) + 1
		}
	case 3:
		for i := range outcomes {
			outcomes[i] = rng.Intn(spinnerSections) + 1
		}
	default:
		for i := range outcomes {
			outcomes[i] = rng.Intn(2)
		}
	}
	return outcomes
}
