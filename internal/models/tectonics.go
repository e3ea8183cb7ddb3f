package models

import (
	"math"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Boundary types for the plate tectonics simulator, in selector order.
var Boundaries = []string{"Convergent", "Divergent", "Transform"}

var boundaryDescriptions = map[string]string{
	"Convergent": "Plates collide; crust buckles upward into mountains or subducts.",
	"Divergent":  "Plates pull apart; magma rises and a rift valley forms.",
	"Transform":  "Plates grind past each other; stress releases as earthquakes.",
}

// BoundaryDescription returns the classroom caption for a boundary index.
func BoundaryDescription(i int) string {
	if i < 0 || i >= len(Boundaries) {
		return ""
	}
	return boundaryDescriptions[Boundaries[i]]
}

const tectonicsMaxOffset = 0.8

// Tectonics animates two crustal plates at a chosen boundary type. Offset
// grows with time and movement speed; convergent and divergent runs stop at
// the maximum displacement while a transform boundary shears indefinitely.
type Tectonics struct{}

func NewTectonics() *Tectonics { return &Tectonics{} }

func (*Tectonics) Name() string  { return "tectonics" }
func (*Tectonics) Title() string { return "Plate Tectonics" }

func (*Tectonics) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "boundary", Label: "Boundary type", Min: 0, Max: float64(len(Boundaries) - 1), Step: 1, Default: 0},
		{Name: "speed", Label: "Movement speed", Min: 0, Max: 100, Step: 5, Default: 50},
	}
}

func (*Tectonics) Labels() []string { return []string{"offset", "feature"} }

func (m *Tectonics) Eval(p *sim.Params, t float64) sim.State {
	offset := m.Offset(p, t)

	// feature intensity: mountain height, rift width, or shear phase
	feature := offset / tectonicsMaxOffset
	if int(p.Get("boundary")) == 2 {
		feature = math.Mod(m.rawOffset(p, t), 1.0)
	}

	return sim.State{offset, feature}
}

func (m *Tectonics) Done(p *sim.Params, t float64) bool {
	if int(p.Get("boundary")) == 2 {
		return false
	}
	return m.rawOffset(p, t) >= tectonicsMaxOffset
}

// Offset is the plate displacement, capped for colliding and spreading
// boundaries.
func (m *Tectonics) Offset(p *sim.Params, t float64) float64 {
	raw := m.rawOffset(p, t)
	if int(p.Get("boundary")) == 2 {
		return raw
	}
	return math.Min(raw, tectonicsMaxOffset)
}

func (*Tectonics) rawOffset(p *sim.Params, t float64) float64 {
	return 0.1 * (p.Get("speed") / 50.0) * t
}

// BoundaryName returns the selected boundary's display name.
func (m *Tectonics) BoundaryName(p *sim.Params) string {
	i := int(p.Get("boundary"))
	if i < 0 || i >= len(Boundaries) {
		i = 0
	}
	return Boundaries[i]
}
