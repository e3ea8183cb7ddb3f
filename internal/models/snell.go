package models

import (
	"math"
	"sort"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Materials maps classroom material names to refractive indices.
var Materials = map[string]float64{
	"Air":         1.00,
	"Water":       1.33,
	"Glass":       1.50,
	"Diamond":     2.42,
	"Crown Glass": 1.52,
	"Flint Glass": 1.62,
}

// MaterialNames returns the material list in stable order.
func MaterialNames() []string {
	names := make([]string, 0, len(Materials))
	for name := range Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snell demonstrates refraction and total internal reflection at a flat
// interface: n1 sin(theta1) = n2 sin(theta2). The model is static; time only
// drives the photon marker in the view.
type Snell struct{}

func NewSnell() *Snell { return &Snell{} }

func (*Snell) Name() string  { return "snell" }
func (*Snell) Title() string { return "Snell's Law" }

func (*Snell) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "n1", Label: "Index n1 (top)", Min: 1, Max: 2.5, Step: 0.01, Default: 1.00},
		{Name: "n2", Label: "Index n2 (bottom)", Min: 1, Max: 2.5, Step: 0.01, Default: 1.33},
		{Name: "theta1", Label: "Incidence angle (deg)", Min: 0, Max: 89, Step: 1, Default: 35},
	}
}

func (*Snell) Labels() []string {
	return []string{"theta2", "critical", "tir"}
}

func (m *Snell) Eval(p *sim.Params, t float64) sim.State {
	n1 := p.Get("n1")
	n2 := p.Get("n2")
	theta1 := p.Get("theta1") * math.Pi / 180

	theta2, critical, tir := Refract(n1, n2, theta1)

	tirFlag := 0.0
	if tir {
		tirFlag = 1.0
		theta2 = theta1 // reflected ray angle
	}

	critDeg := math.NaN()
	if !math.IsNaN(critical) {
		critDeg = critical * 180 / math.Pi
	}

	return sim.State{theta2 * 180 / math.Pi, critDeg, tirFlag}
}

func (*Snell) Done(p *sim.Params, t float64) bool { return false }

// Refract applies Snell's law. The returned critical angle is NaN when no
// critical angle exists (n1 <= n2). When tir is true the refracted angle is
// meaningless and the ray reflects at the incidence angle.
func Refract(n1, n2, theta1 float64) (theta2, critical float64, tir bool) {
	s2 := (n1 / n2) * math.Sin(theta1)

	critical = math.NaN()
	if n1 > n2 {
		critical = math.Asin(clamp(n2/n1, 0, 1))
		if math.Abs(theta1) > critical+1e-12 {
			return 0, critical, true
		}
	}

	if math.Abs(s2) <= 1 {
		return math.Asin(clamp(s2, -1, 1)), critical, false
	}
	return 0, critical, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
