package models

import (
	"math"
	"math/rand"

	"github.com/k-sandesh/edusim/internal/sim"
)

const (
	projectileDt   = 0.01
	projectileTmax = 15.0
	targetRadius   = 1.5
)

// Projectile simulates 2D flight from the origin with optional quadratic
// drag a = -k*v*|v| applied to both components, integrated with explicit
// Euler exactly as the classroom demonstration does. A seeded random target
// turns the model into an aiming game.
type Projectile struct{}

func NewProjectile() *Projectile { return &Projectile{} }

func (*Projectile) Name() string  { return "projectile" }
func (*Projectile) Title() string { return "Projectile Motion" }

func (*Projectile) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "v0", Label: "Launch speed (m/s)", Min: 1, Max: 80, Step: 1, Default: 20},
		{Name: "angle", Label: "Launch angle (deg)", Min: 5, Max: 85, Step: 1, Default: 45},
		{Name: "gravity", Label: "Gravity (m/s^2)", Min: 1, Max: 25, Step: 0.1, Default: 9.81},
		{Name: "drag", Label: "Air resistance", Min: 0, Max: 1, Step: 1, Default: 0},
		{Name: "k", Label: "Drag strength", Min: 0, Max: 0.1, Step: 0.005, Default: 0.02},
		{Name: "seed", Label: "Target seed", Min: 1, Max: 9999, Step: 1, Default: 42},
	}
}

func (*Projectile) Labels() []string {
	return []string{"x", "y", "vx", "vy", "hit"}
}

func (m *Projectile) Eval(p *sim.Params, t float64) sim.State {
	x, y, vx, vy, _ := m.integrate(p, t)
	hit := 0.0
	tx, ty := m.Target(p)
	if math.Hypot(x-tx, y-ty) <= targetRadius {
		hit = 1.0
	}
	return sim.State{x, y, vx, vy, hit}
}

// Done reports landing (or the simulation cap).
func (m *Projectile) Done(p *sim.Params, t float64) bool {
	_, _, _, _, landed := m.integrate(p, t)
	return landed || t >= projectileTmax
}

// integrate replays the Euler trajectory from launch up to time t. Replaying
// from zero keeps Eval a pure function of (params, t).
func (m *Projectile) integrate(p *sim.Params, t float64) (x, y, vx, vy float64, landed bool) {
	v0 := p.Get("v0")
	theta := p.Get("angle") * math.Pi / 180
	g := p.Get("gravity")
	dragOn := p.Get("drag") >= 0.5
	k := p.Get("k")

	vx = v0 * math.Cos(theta)
	vy = v0 * math.Sin(theta)

	if t > projectileTmax {
		t = projectileTmax
	}
	steps := int(t / projectileDt)

	for i := 0; i < steps; i++ {
		v := math.Hypot(vx, vy)

		ax := 0.0
		ay := -g
		if dragOn && v > 1e-9 {
			ax += -k * vx * v
			ay += -k * vy * v
		}

		vx += ax * projectileDt
		vy += ay * projectileDt
		x += vx * projectileDt
		y += vy * projectileDt

		if y < 0 {
			y = 0
			return x, y, vx, vy, true
		}
	}

	return x, y, vx, vy, false
}

// Trajectory returns the full flight path, for rendering.
func (m *Projectile) Trajectory(p *sim.Params) (xs, ys []float64) {
	v0 := p.Get("v0")
	theta := p.Get("angle") * math.Pi / 180
	g := p.Get("gravity")
	dragOn := p.Get("drag") >= 0.5
	k := p.Get("k")

	x, y := 0.0, 0.0
	vx := v0 * math.Cos(theta)
	vy := v0 * math.Sin(theta)

	xs = append(xs, x)
	ys = append(ys, y)

	for i := 0; i < int(projectileTmax/projectileDt); i++ {
		v := math.Hypot(vx, vy)

		ax := 0.0
		ay := -g
		if dragOn && v > 1e-9 {
			ax += -k * vx * v
			ay += -k * vy * v
		}

		vx += ax * projectileDt
		vy += ay * projectileDt
		x += vx * projectileDt
		y += vy * projectileDt

		if y < 0 {
			y = 0
			xs = append(xs, x)
			ys = append(ys, y)
			break
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys
}

// Target places the classroom target in a reasonable range for play,
// deterministically from the seed parameter.
func (m *Projectile) Target(p *sim.Params) (tx, ty float64) {
	rng := rand.New(rand.NewSource(int64(p.Get("seed"))))
	tx = 15 + rng.Float64()*(60-15)
	ty = 2 + rng.Float64()*(18-2)
	return tx, ty
}

// IdealRange is the closed-form drag-free range v0^2 sin(2*theta) / g,
// the oracle the drag-free trajectory must land on.
func IdealRange(v0, thetaRad, g float64) float64 {
	return v0 * v0 * math.Sin(2*thetaRad) / g
}

// IdealFlightTime is the closed-form drag-free time aloft 2*v0*sin(theta)/g.
func IdealFlightTime(v0, thetaRad, g float64) float64 {
	return 2 * v0 * math.Sin(thetaRad) / g
}
