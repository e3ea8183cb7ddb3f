package models

import (
	"math"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Function families for the grapher, in selector order.
var Families = []string{"Linear", "Quadratic", "Exponential", "Absolute", "Sine"}

const grapherWindow = 10.0 // x in [-10, 10]

// Grapher plots one algebra function family over a fixed window. A tracer
// point sweeps the curve while animating so students can follow x against
// f(x).
type Grapher struct{}

func NewGrapher() *Grapher { return &Grapher{} }

func (*Grapher) Name() string  { return "grapher" }
func (*Grapher) Title() string { return "Function Grapher" }

func (*Grapher) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "family", Label: "Function", Min: 0, Max: float64(len(Families) - 1), Step: 1, Default: 0},
		{Name: "m", Label: "Slope m", Min: -5, Max: 5, Step: 0.1, Default: 1},
		{Name: "a", Label: "Coefficient a", Min: -5, Max: 5, Step: 0.1, Default: 1},
		{Name: "b", Label: "Coefficient b", Min: -10, Max: 10, Step: 0.5, Default: 0},
		{Name: "c", Label: "Constant c", Min: -10, Max: 10, Step: 0.5, Default: 0},
		{Name: "h", Label: "Shift h", Min: -5, Max: 5, Step: 0.5, Default: 0},
		{Name: "k", Label: "Shift k", Min: -5, Max: 5, Step: 0.5, Default: 0},
		{Name: "base", Label: "Base", Min: 0.1, Max: 4, Step: 0.1, Default: 2},
		{Name: "freq", Label: "Frequency", Min: 0.1, Max: 5, Step: 0.1, Default: 1},
		{Name: "d", Label: "Shift d", Min: -5, Max: 5, Step: 0.5, Default: 0},
	}
}

func (*Grapher) Labels() []string { return []string{"x", "y"} }

func (m *Grapher) Eval(p *sim.Params, t float64) sim.State {
	// tracer sweeps the window once every 8 simulated seconds
	x := -grapherWindow + math.Mod(t*2.5, 2*grapherWindow)
	return sim.State{x, m.Value(p, x)}
}

func (*Grapher) Done(p *sim.Params, t float64) bool { return false }

// Value evaluates the selected family at x.
func (m *Grapher) Value(p *sim.Params, x float64) float64 {
	switch int(p.Get("family")) {
	case 1: // quadratic: a x^2 + b x + c
		return p.Get("a")*x*x + p.Get("b")*x + p.Get("c")
	case 2: // exponential: a * base^x + c
		return p.Get("a")*math.Pow(p.Get("base"), x) + p.Get("c")
	case 3: // absolute: a |x - h| + k
		return p.Get("a")*math.Abs(x-p.Get("h")) + p.Get("k")
	case 4: // sine: a sin(freq x + c) + d
		return p.Get("a")*math.Sin(p.Get("freq")*x+p.Get("c")) + p.Get("d")
	default: // linear: m x + b
		return p.Get("m")*x + p.Get("b")
	}
}

// Curve samples the selected family across the window for rendering.
func (m *Grapher) Curve(p *sim.Params, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := -grapherWindow + float64(i)*2*grapherWindow/float64(n-1)
		xs[i] = x
		ys[i] = m.Value(p, x)
	}
	return xs, ys
}

// FamilyName returns the selected family's display name.
func (m *Grapher) FamilyName(p *sim.Params) string {
	i := int(p.Get("family"))
	if i < 0 || i >= len(Families) {
		i = 0
	}
	return Families[i]
}
