package models

import (
	"math"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Kepler animates an elliptical orbit with the Sun at one focus, in units
// where GM = 1. Simulated time is converted to mean anomaly through
// Kepler's third law (n = a^-3/2) and the orbit position follows from
// Kepler's equation.
type Kepler struct{}

func NewKepler() *Kepler { return &Kepler{} }

func (*Kepler) Name() string  { return "kepler" }
func (*Kepler) Title() string { return "Kepler Orbits" }

func (*Kepler) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "a", Label: "Semi-major axis", Min: 0.5, Max: 3, Step: 0.05, Default: 1.0},
		{Name: "e", Label: "Eccentricity", Min: 0, Max: 0.95, Step: 0.01, Default: 0.35},
	}
}

func (*Kepler) Labels() []string {
	return []string{"x", "y", "r", "f", "v", "sweep"}
}

func (m *Kepler) Eval(p *sim.Params, t float64) sim.State {
	a := p.Get("a")
	e := p.Get("e")

	n := math.Pow(a, -1.5) // mean motion, Kepler III
	M := n * t

	x, y, r, f := OrbitPoint(a, e, M)

	// vis-viva, GM = 1
	v := math.Sqrt(math.Max(0, 2/r-1/a))

	// swept-area rate h/2 is constant on the orbit (Kepler II)
	sweep := math.Sqrt(a*(1-e*e)) / 2

	return sim.State{x, y, r, f, v, sweep}
}

func (*Kepler) Done(p *sim.Params, t float64) bool { return false }

// SolveKepler solves M = E - e sin E for the eccentric anomaly with
// Newton-Raphson. The initial guess is M for moderate eccentricities and
// pi when the orbit is strongly stretched.
func SolveKepler(M, e float64) float64 {
	const (
		tol      = 1e-10
		maxIters = 50
	)

	E := M
	if e >= 0.8 {
		E = math.Pi
	}

	for i := 0; i < maxIters; i++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)

		delta := 0.0
		if math.Abs(fp) > 1e-12 {
			delta = f / fp
		}
		E -= delta

		if math.Abs(delta) < tol {
			break
		}
	}

	return E
}

// OrbitPoint maps mean anomaly to position, focal distance, and true
// anomaly for an orbit with semi-major axis a and eccentricity e.
func OrbitPoint(a, e, M float64) (x, y, r, f float64) {
	E := SolveKepler(M, e)

	denom := 1 - e*math.Cos(E)
	cosf := (math.Cos(E) - e) / denom
	sinf := math.Sqrt(1-e*e) * math.Sin(E) / denom
	f = math.Atan2(sinf, cosf)

	r = a * (1 - e*e) / (1 + e*math.Cos(f))
	x = r * math.Cos(f)
	y = r * math.Sin(f)
	return x, y, r, f
}

// OrbitPath samples the full ellipse for rendering.
func OrbitPath(a, e float64, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		f := float64(i) * 2 * math.Pi / float64(n-1)
		r := a * (1 - e*e) / (1 + e*math.Cos(f))
		xs[i] = r * math.Cos(f)
		ys[i] = r * math.Sin(f)
	}
	return xs, ys
}

// OrbitPeriod is 2*pi*a^(3/2) in GM=1 units.
func OrbitPeriod(a float64) float64 {
	return 2 * math.Pi * math.Pow(a, 1.5)
}
