package sim_test

import (
	"context"
	"errors"
	"testing"

	"github.com/k-sandesh/edusim/internal/sim"
)

func TestParamsClamping(t *testing.T) {
	p := sim.NewParams([]sim.ParamSpec{
		{Name: "angle", Label: "Angle", Min: 5, Max: 85, Step: 1, Default: 45},
	})

	tests := []struct {
		set  float64
		want float64
	}{
		{45, 45},
		{-10, 5},
		{500, 85},
		{85, 85},
	}

	for _, tt := range tests {
		if err := p.Set("angle", tt.set); err != nil {
			t.Fatalf("Set(%f): %v", tt.set, err)
		}
		if got := p.Get("angle"); got != tt.want {
			t.Errorf("Set(%f): got %f, want %f", tt.set, got, tt.want)
		}
	}
}

func TestParamsUnknown(t *testing.T) {
	p := sim.NewParams([]sim.ParamSpec{{Name: "x", Min: 0, Max: 1, Default: 0}})

	if err := p.Set("nope", 1); !errors.Is(err, sim.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
	if got := p.Get("nope"); got != 0 {
		t.Errorf("expected zero for unknown param, got %f", got)
	}
}

func TestParamsNudge(t *testing.T) {
	p := sim.NewParams([]sim.ParamSpec{
		{Name: "speed", Min: 10, Max: 100, Step: 10, Default: 50},
	})

	p.Nudge("speed", 2)
	if got := p.Get("speed"); got != 70 {
		t.Errorf("expected 70 after +2 steps, got %f", got)
	}

	for i := 0; i < 20; i++ {
		p.Nudge("speed", -1)
	}
	if got := p.Get("speed"); got != 10 {
		t.Errorf("expected clamp at 10, got %f", got)
	}
}

func TestParamsReset(t *testing.T) {
	p := sim.NewParams([]sim.ParamSpec{
		{Name: "a", Min: 0, Max: 10, Step: 1, Default: 3},
		{Name: "b", Min: -1, Max: 1, Step: 0.1, Default: 0.5},
	})

	p.Set("a", 9)
	p.Set("b", -1)
	p.Reset()

	if p.Get("a") != 3 || p.Get("b") != 0.5 {
		t.Errorf("reset did not restore defaults: a=%f b=%f", p.Get("a"), p.Get("b"))
	}
}

func TestSampleStopsAtTerminal(t *testing.T) {
	m := rampModel{}
	p := sim.NewParams(m.Specs())

	series, err := sim.Sample(context.Background(), m, p, 0.5, 10)
	if err != nil {
		t.Fatal(err)
	}

	last := series.Times[len(series.Times)-1]
	if last > 2.0 {
		t.Errorf("sampling continued past terminal condition: t=%f", last)
	}

	col, ok := series.ColumnByLabel("value")
	if !ok {
		t.Fatal("missing value column")
	}
	for i, v := range col {
		want := series.Times[i] * 2
		if v != want {
			t.Errorf("t=%f: got %f, want %f", series.Times[i], v, want)
		}
	}
}

func TestSampleRejectsBadGrid(t *testing.T) {
	m := rampModel{}
	p := sim.NewParams(m.Specs())

	if _, err := sim.Sample(context.Background(), m, p, 0, 10); err == nil {
		t.Error("expected error for zero dt")
	}
	if _, err := sim.Sample(context.Background(), m, p, 0.1, -1); err == nil {
		t.Error("expected error for negative duration")
	}
}
