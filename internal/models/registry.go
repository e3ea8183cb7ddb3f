package models

import (
	"fmt"
	"sort"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Registry maps simulation names to constructors.
type Registry struct {
	models map[string]func() sim.Model
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[string]func() sim.Model)}

	r.models["projectile"] = func() sim.Model { return NewProjectile() }
	r.models["kepler"] = func() sim.Model { return NewKepler() }
	r.models["snell"] = func() sim.Model { return NewSnell() }
	r.models["reaction"] = func() sim.Model { return NewReaction() }
	r.models["mitosis"] = func() sim.Model { return NewMitosis() }
	r.models["photosynthesis"] = func() sim.Model { return NewPhotosynthesis() }
	r.models["watercycle"] = func() sim.Model { return NewWaterCycle() }
	r.models["tide"] = func() sim.Model { return NewTide() }
	r.models["market"] = func() sim.Model { return NewMarket() }
	r.models["grapher"] = func() sim.Model { return NewGrapher() }
	r.models["probability"] = func() sim.Model { return NewProbability() }
	r.models["tectonics"] = func() sim.Model { return NewTectonics() }

	return r
}

func (r *Registry) Get(name string) (sim.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sim.ErrUnknownModel, name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
