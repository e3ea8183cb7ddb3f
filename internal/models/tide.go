package models

import (
	"math"

	"github.com/k-sandesh/edusim/internal/sim"
)

const (
	tideBaseDist    = 3.0  // moon distance at which the slider amplitude applies
	sunStrength     = 0.46 // solar tide relative to lunar
	moonOrbitRate   = 15.0 // degrees of moon orbit per simulated second
	tideProfileSize = 200
)

// Tide renders the equilibrium tide model: ocean height around Earth is
// proportional to the Legendre polynomial P2(cos psi) toward the tidal
// body, with amplitude falling off as 1/d^3. The optional Sun superposes a
// weaker bulge; alignment produces spring tides, quadrature neap tides.
type Tide struct{}

func NewTide() *Tide { return &Tide{} }

func (*Tide) Name() string  { return "tide" }
func (*Tide) Title() string { return "Sea Tides" }

func (*Tide) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "moon_dist", Label: "Moon distance", Min: 2, Max: 6, Step: 0.1, Default: 3},
		{Name: "moon_angle", Label: "Moon angle (deg)", Min: 0, Max: 360, Step: 5, Default: 0},
		{Name: "sun_on", Label: "Include Sun", Min: 0, Max: 1, Step: 1, Default: 0},
		{Name: "sun_angle", Label: "Sun angle (deg)", Min: 0, Max: 360, Step: 5, Default: 180},
		{Name: "exaggeration", Label: "Exaggeration", Min: 0.05, Max: 0.5, Step: 0.01, Default: 0.18},
	}
}

func (*Tide) Labels() []string {
	return []string{"moon_angle", "amplitude", "high", "low"}
}

func (m *Tide) Eval(p *sim.Params, t float64) sim.State {
	moonAngle := m.MoonAngle(p, t)

	profile := m.Profile(p, t)
	high, low := profile[0], profile[0]
	for _, h := range profile {
		if h > high {
			high = h
		}
		if h < low {
			low = h
		}
	}

	return sim.State{moonAngle * 180 / math.Pi, m.moonAmplitude(p), high, low}
}

func (*Tide) Done(p *sim.Params, t float64) bool { return false }

// MoonAngle returns the animated moon direction in radians: the slider
// angle plus the orbital advance accumulated while animating.
func (*Tide) MoonAngle(p *sim.Params, t float64) float64 {
	deg := p.Get("moon_angle") + moonOrbitRate*t
	return math.Mod(deg, 360) * math.Pi / 180
}

func (*Tide) moonAmplitude(p *sim.Params) float64 {
	d := p.Get("moon_dist")
	ratio := tideBaseDist / d
	return p.Get("exaggeration") * ratio * ratio * ratio
}

// Profile samples tide height at evenly spaced angles around Earth.
func (m *Tide) Profile(p *sim.Params, t float64) []float64 {
	moonAngle := m.MoonAngle(p, t)
	moonAmp := m.moonAmplitude(p)

	sunOn := p.Get("sun_on") >= 0.5
	sunAngle := p.Get("sun_angle") * math.Pi / 180
	sunAmp := p.Get("exaggeration") * sunStrength

	heights := make([]float64, tideProfileSize)
	for i := range heights {
		theta := float64(i) * 2 * math.Pi / float64(tideProfileSize)
		h := moonAmp * P2(math.Cos(theta-moonAngle))
		if sunOn {
			h += sunAmp * P2(math.Cos(theta-sunAngle))
		}
		heights[i] = h
	}
	return heights
}

// P2 is the second Legendre polynomial (3x^2 - 1)/2, the angular shape of
// the equilibrium tidal bulge.
func P2(x float64) float64 {
	return 0.5 * (3*x*x - 1)
}
