package sim

import (
	"context"
	"fmt"
)

// Series is a model sampled over an evenly spaced time grid.
type Series struct {
	Labels []string
	Times  []float64
	States []State
}

// Column extracts one state component across the series.
func (s *Series) Column(i int) []float64 {
	col := make([]float64, len(s.States))
	for j, st := range s.States {
		if i < len(st) {
			col[j] = st[i]
		}
	}
	return col
}

// ColumnByLabel extracts the component with the given label, if present.
func (s *Series) ColumnByLabel(label string) ([]float64, bool) {
	for i, l := range s.Labels {
		if l == label {
			return s.Column(i), true
		}
	}
	return nil, false
}

// Sample evaluates the model on [0, duration] with spacing dt. Sampling
// stops early when the model reports a terminal condition.
func Sample(ctx context.Context, m Model, p *Params, dt, duration float64) (*Series, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %f", dt)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("sim: duration must be positive, got %f", duration)
	}

	steps := int(duration/dt) + 1
	series := &Series{
		Labels: m.Labels(),
		Times:  make([]float64, 0, steps),
		States: make([]State, 0, steps),
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return series, ctx.Err()
		default:
		}

		t := float64(i) * dt
		series.Times = append(series.Times, t)
		series.States = append(series.States, m.Eval(p, t))

		if m.Done(p, t) {
			break
		}
	}

	return series, nil
}
