package models

import (
	"math"

	"github.com/k-sandesh/edusim/internal/sim"
)

// Stages of mitosis in teaching order.
var Stages = []string{
	"Interphase",
	"Prophase",
	"Metaphase",
	"Anaphase",
	"Telophase",
	"Cytokinesis",
}

var stageDescriptions = map[string]string{
	"Interphase":  "Cell grows, DNA replicates. Chromosomes are not visible.",
	"Prophase":    "Chromosomes condense, nuclear envelope breaks down, spindle forms.",
	"Metaphase":   "Chromosomes align at the cell equator (metaphase plate).",
	"Anaphase":    "Sister chromatids separate and move to opposite poles.",
	"Telophase":   "Nuclear envelopes reform around the two chromosome sets.",
	"Cytokinesis": "Cytoplasm divides, producing two identical daughter cells.",
}

// StageDescription returns the classroom caption for a stage index.
func StageDescription(i int) string {
	if i < 0 || i >= len(Stages) {
		return ""
	}
	return stageDescriptions[Stages[i]]
}

// Mitosis steps a cell through the six division stages. While animating,
// each stage plays over one normalized time unit and auto-advances; after
// Cytokinesis the loop stops.
type Mitosis struct{}

func NewMitosis() *Mitosis { return &Mitosis{} }

func (*Mitosis) Name() string  { return "mitosis" }
func (*Mitosis) Title() string { return "Cell Division (Mitosis)" }

func (*Mitosis) Specs() []sim.ParamSpec {
	return []sim.ParamSpec{
		{Name: "stage", Label: "Starting stage", Min: 0, Max: float64(len(Stages) - 1), Step: 1, Default: 0},
		{Name: "speed", Label: "Speed", Min: 0.2, Max: 3, Step: 0.1, Default: 1.0},
		{Name: "chromosomes", Label: "Chromosome pairs", Min: 2, Max: 8, Step: 1, Default: 4},
	}
}

func (*Mitosis) Labels() []string { return []string{"stage", "frac"} }

func (m *Mitosis) Eval(p *sim.Params, t float64) sim.State {
	stage, frac := m.StageAt(p, t)
	return sim.State{float64(stage), frac}
}

func (m *Mitosis) Done(p *sim.Params, t float64) bool {
	start := p.Get("stage")
	return start+m.elapsedStages(p, t) >= float64(len(Stages))
}

// StageAt resolves the effective stage index and the normalized time within
// it. The original advances stage time by 0.02*speed per 50ms frame.
func (m *Mitosis) StageAt(p *sim.Params, t float64) (stage int, frac float64) {
	u := p.Get("stage") + m.elapsedStages(p, t)
	stage = int(math.Floor(u))
	frac = u - math.Floor(u)
	if stage >= len(Stages) {
		stage = len(Stages) - 1
		frac = 1.0
	}
	return stage, frac
}

func (*Mitosis) elapsedStages(p *sim.Params, t float64) float64 {
	return 0.4 * p.Get("speed") * t
}
