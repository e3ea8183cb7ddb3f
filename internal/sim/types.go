package sim

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Model is a pure mapping from a parameter set and a simulated time to a
// derived state vector. Eval must be deterministic and side-effect free;
// it is safe to call at any rate.
type Model interface {
	// Name is the registry key ("projectile", "kepler", ...).
	Name() string

	// Title is the classroom display title.
	Title() string

	// Specs declares the adjustable parameters with their valid ranges.
	Specs() []ParamSpec

	// Labels names the components of the state vector returned by Eval.
	Labels() []string

	// Eval computes derived state at simulated time t.
	Eval(p *Params, t float64) State

	// Done reports a terminal condition (reaction complete, cell divided).
	// Models that run forever always return false.
	Done(p *Params, t float64) bool
}
