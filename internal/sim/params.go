package sim

import "fmt"

// ParamSpec declares one adjustable parameter. Boolean toggles use
// Min 0, Max 1, Step 1.
type ParamSpec struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Clamp corrects v into [Min, Max].
func (s ParamSpec) Clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Params holds the current values for an ordered set of parameter specs.
// Writes always clamp; reads of undeclared names return zero.
type Params struct {
	specs  []ParamSpec
	index  map[string]int
	values []float64
}

func NewParams(specs []ParamSpec) *Params {
	p := &Params{
		specs:  specs,
		index:  make(map[string]int, len(specs)),
		values: make([]float64, len(specs)),
	}
	for i, s := range specs {
		p.index[s.Name] = i
		p.values[i] = s.Clamp(s.Default)
	}
	return p
}

func (p *Params) Specs() []ParamSpec { return p.specs }

func (p *Params) Get(name string) float64 {
	i, ok := p.index[name]
	if !ok {
		return 0
	}
	return p.values[i]
}

// Set stores the clamped value for a declared parameter.
func (p *Params) Set(name string, v float64) error {
	i, ok := p.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	p.values[i] = p.specs[i].Clamp(v)
	return nil
}

// Nudge moves a parameter by dir steps of its declared Step size.
func (p *Params) Nudge(name string, dir int) {
	i, ok := p.index[name]
	if !ok {
		return
	}
	p.values[i] = p.specs[i].Clamp(p.values[i] + float64(dir)*p.specs[i].Step)
}

// Reset restores every parameter to its documented default.
func (p *Params) Reset() {
	for i, s := range p.specs {
		p.values[i] = s.Clamp(s.Default)
	}
}

// Values returns a copy of the current values keyed by name.
func (p *Params) Values() map[string]float64 {
	m := make(map[string]float64, len(p.specs))
	for i, s := range p.specs {
		m[s.Name] = p.values[i]
	}
	return m
}

// Clone returns an independent copy with the same specs and values.
func (p *Params) Clone() *Params {
	c := NewParams(p.specs)
	copy(c.values, p.values)
	return c
}
