package models

import "github.com/k-sandesh/edusim/internal/sim"

const marketMaxPrice = 50.0

// Market is the junior-high supply and demand demonstration: linear curves,
// equilibrium where they cross, price clamped to a classroom-friendly band.
type Market struct{}

func NewMarket() *Market { return &Market{} }

func (*Market) Name() string  { return "market" }
func (*Market) Title() string { return "Supply & Demand" }

func (*Market) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "demand", Label: "Demand level", Min: 1, Max: 100, Step: 1, Default: 50},
		{Name: "supply", Label: "Supply level", Min: 1, Max: 100, Step: 1, Default: 50},
		{Name: "base_price", Label: "Base price ($)", Min: 5, Max: 20, Step: 0.5, Default: 10},
	}
}

func (*Market) Labels() []string { return []string{"price", "quantity"} }

func (m *Market) Eval(p *sim.Params, t float64) sim.State {
	demand := p.Get("demand")
	supply := p.Get("supply")

	price := EquilibriumPrice(p.Get("base_price"), demand, supply)
	quantity := (demand + supply) / 2

	return sim.State{price, quantity}
}

func (*Market) Done(p *sim.Params, t float64) bool { return false }

// EquilibriumPrice scales the base price by demand over supply and clamps
// to [$1, $50].
func EquilibriumPrice(base, demand, supply float64) float64 {
	if supply == 0 {
		supply = 0.1
	}
	return clamp(base*(demand/supply), 1, marketMaxPrice)
}

// DemandCurve returns quantity demanded at each price: higher price, lower
// quantity.
func DemandCurve(level float64, prices []float64) []float64 {
	q := make([]float64, len(prices))
	for i, price := range prices {
		q[i] = clamp(level*(marketMaxPrice-price)/marketMaxPrice, 0, level)
	}
	return q
}

// SupplyCurve returns quantity supplied at each price: higher price, higher
// quantity.
func SupplyCurve(level float64, prices []float64) []float64 {
	q := make([]float64, len(prices))
	for i, price := range prices {
		q[i] = clamp(level*price/marketMaxPrice, 0, level)
	}
	return q
}
