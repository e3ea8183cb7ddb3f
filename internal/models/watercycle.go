package models

import "github.com/k-sandesh/edusim/internal/sim"

// WaterCycle couples evaporation, condensation, and precipitation rates to
// four environmental controls. Time drives the droplet animation in the
// view; the rates themselves depend only on the parameters.
type WaterCycle struct{}

func NewWaterCycle() *WaterCycle { return &WaterCycle{} }

func (*WaterCycle) Name() string  { return "watercycle" }
func (*WaterCycle) Title() string { return "The Water Cycle" }

func (*WaterCycle) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "temp", Label: "Temperature (C)", Min: 10, Max: 40, Step: 1, Default: 25},
		{Name: "humidity", Label: "Humidity (%)", Min: 0, Max: 100, Step: 5, Default: 50},
		{Name: "wind", Label: "Wind", Min: 0, Max: 100, Step: 5, Default: 30},
		{Name: "sunlight", Label: "Sunlight", Min: 0, Max: 100, Step: 5, Default: 60},
	}
}

func (*WaterCycle) Labels() []string {
	return []string{"evaporation", "condensation", "precipitation"}
}

func (m *WaterCycle) Eval(p *sim.Params, t float64) sim.State {
	temp := p.Get("temp")
	humidity := p.Get("humidity")
	wind := p.Get("wind")
	sunlight := p.Get("sunlight")

	evap := EvaporationRate(temp, sunlight, humidity, wind)
	cond := CondensationRate(temp, humidity)
	precip := PrecipitationRate(humidity, cond)

	return sim.State{evap, cond, precip}
}

func (*WaterCycle) Done(p *sim.Params, t float64) bool { return false }

// EvaporationRate rises with temperature, sunlight, and wind, and falls as
// the air saturates.
func EvaporationRate(temp, sunlight, humidity, wind float64) float64 {
	tempFactor := (temp - 10) / 30.0
	sunFactor := sunlight / 100.0
	humidityFactor := 1.0 - (humidity/100.0)*0.5
	windFactor := 1.0 + (wind/100.0)*0.3

	return clamp(tempFactor*sunFactor*humidityFactor*windFactor*100, 0, 100)
}

// CondensationRate rises as air cools and humidity climbs.
func CondensationRate(temp, humidity float64) float64 {
	tempFactor := 1.0 - (temp-10)/30.0
	humidityFactor := humidity / 100.0

	return clamp(tempFactor*humidityFactor*100, 0, 100)
}

// PrecipitationRate requires both saturated air and formed clouds.
func PrecipitationRate(humidity, condensation float64) float64 {
	condFactor := condensation / 100.0
	humidityFactor := humidity / 100.0

	return clamp(condFactor*humidityFactor*100, 0, 100)
}
