package models

import (
	"math"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Photosynthesis models the classroom rate equation: the limiting input
// caps the rate and temperature applies an efficiency factor peaking at
// 25 C. Time animates the molecule flow in the view only.
type Photosynthesis struct{}

func NewPhotosynthesis() *Photosynthesis { return &Photosynthesis{} }

func (*Photosynthesis) Name() string  { return "photosynthesis" }
func (*Photosynthesis) Title() string { return "Photosynthesis" }

func (*Photosynthesis) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "sunlight", Label: "Sunlight", Min: 0, Max: 100, Step: 5, Default: 50},
		{Name: "co2", Label: "CO2", Min: 0, Max: 100, Step: 5, Default: 50},
		{Name: "water", Label: "Water", Min: 0, Max: 100, Step: 5, Default: 50},
		{Name: "temp", Label: "Temperature (C)", Min: 10, Max: 40, Step: 1, Default: 25},
	}
}

func (*Photosynthesis) Labels() []string {
	return []string{"rate", "glucose", "oxygen"}
}

func (m *Photosynthesis) Eval(p *sim.Params, t float64) sim.State {
	rate := PhotosynthesisRate(p.Get("sunlight"), p.Get("co2"), p.Get("water"), p.Get("temp"))
	return sim.State{rate, rate * 0.1, rate * 0.15}
}

func (*Photosynthesis) Done(p *sim.Params, t float64) bool { return false }

// PhotosynthesisRate combines the limiting factor (minimum input) with a
// temperature efficiency centered on 25 C; the result is clamped to [0, 100].
func PhotosynthesisRate(sunlight, co2, water, temp float64) float64 {
	tempFactor := 1.0 - math.Abs(temp-25)/30.0
	if tempFactor < 0.1 {
		tempFactor = 0.1
	}

	limiting := math.Min(sunlight, math.Min(co2, water)) / 100.0

	return clamp(limiting*tempFactor*100, 0, 100)
}
