package models

import "github.com/k-sandesh/edusim/internal/sim"

// AtomCount is an element symbol with its multiplicity in a molecule.
type AtomCount struct {
	Symbol string
	N      int
}

// Molecule is one species in a reaction equation.
type Molecule struct {
	Formula string
	Name    string
	Atoms   []AtomCount
	Count   int // stoichiometric coefficient
}

// ReactionDef is a balanced classroom reaction.
type ReactionDef struct {
	Name        string
	Equation    string
	Description string
	Reactants   []Molecule
	Products    []Molecule
}

// Reactions are the junior-high demonstrations, in selector order.
var Reactions = []ReactionDef{
	{
		Name:        "Combustion",
		Equation:    "CH4 + 2O2 -> CO2 + 2H2O",
		Description: "Methane burns with oxygen to produce carbon dioxide and water.",
		Reactants: []Molecule{
			{Formula: "CH4", Name: "Methane", Atoms: []AtomCount{{"C", 1}, {"H", 4}}, Count: 1},
			{Formula: "O2", Name: "Oxygen", Atoms: []AtomCount{{"O", 2}}, Count: 2},
		},
		Products: []Molecule{
			{Formula: "CO2", Name: "Carbon Dioxide", Atoms: []AtomCount{{"C", 1}, {"O", 2}}, Count: 1},
			{Formula: "H2O", Name: "Water", Atoms: []AtomCount{{"H", 2}, {"O", 1}}, Count: 2},
		},
	},
	{
		Name:        "Acid-Base",
		Equation:    "HCl + NaOH -> NaCl + H2O",
		Description: "Neutralization: acid and base react to form salt and water.",
		Reactants: []Molecule{
			{Formula: "HCl", Name: "Hydrochloric Acid", Atoms: []AtomCount{{"H", 1}, {"Cl", 1}}, Count: 1},
			{Formula: "NaOH", Name: "Sodium Hydroxide", Atoms: []AtomCount{{"Na", 1}, {"O", 1}, {"H", 1}}, Count: 1},
		},
		Products: []Molecule{
			{Formula: "NaCl", Name: "Sodium Chloride", Atoms: []AtomCount{{"Na", 1}, {"Cl", 1}}, Count: 1},
			{Formula: "H2O", Name: "Water", Atoms: []AtomCount{{"H", 2}, {"O", 1}}, Count: 1},
		},
	},
	{
		Name:        "Synthesis",
		Equation:    "2H2 + O2 -> 2H2O",
		Description: "Synthesis: hydrogen and oxygen combine to form water.",
		Reactants: []Molecule{
			{Formula: "H2", Name: "Hydrogen", Atoms: []AtomCount{{"H", 2}}, Count: 2},
			{Formula: "O2", Name: "Oxygen", Atoms: []AtomCount{{"O", 2}}, Count: 1},
		},
		Products: []Molecule{
			{Formula: "H2O", Name: "Water", Atoms: []AtomCount{{"H", 2}, {"O", 1}}, Count: 2},
		},
	},
}

// Reaction animates one balanced reaction as a progress fraction in [0, 1]:
// reactants slide toward the arrow and fade while products fade in. The
// loop reaches its terminal condition when progress hits 1.
type Reaction struct{}

func NewReaction() *Reaction { return &Reaction{} }

func (*Reaction) Name() string  { return "reaction" }
func (*Reaction) Title() string { return "Chemical Reactions" }

func (*Reaction) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "reaction", Label: "Reaction", Min: 0, Max: float64(len(Reactions) - 1), Step: 1, Default: 0},
		{Name: "speed", Label: "Speed", Min: 10, Max: 100, Step: 10, Default: 50},
	}
}

func (*Reaction) Labels() []string {
	return []string{"progress", "reactant_alpha", "product_alpha"}
}

func (m *Reaction) Eval(p *sim.Params, t float64) sim.State {
	progress := Progress(p.Get("speed"), t)

	// fade curves from the classroom demonstration
	reactantAlpha := 1.0 - progress*0.7
	if reactantAlpha < 0.3 {
		reactantAlpha = 0.3
	}
	productAlpha := (progress - 0.3) / 0.4
	productAlpha = clamp(productAlpha, 0, 1)

	return sim.State{progress, reactantAlpha, productAlpha}
}

func (m *Reaction) Done(p *sim.Params, t float64) bool {
	return Progress(p.Get("speed"), t) >= 1.0
}

// Progress converts (speed, elapsed time) to a clamped progress fraction.
// The original advances 0.02*(speed/50) every 50ms frame.
func Progress(speed, t float64) float64 {
	return clamp(0.4*(speed/50)*t, 0, 1)
}

// Current returns the selected reaction definition.
func (m *Reaction) Current(p *sim.Params) ReactionDef {
	i := int(p.Get("reaction"))
	if i < 0 || i >= len(Reactions) {
		i = 0
	}
	return Reactions[i]
}
