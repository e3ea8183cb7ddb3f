package models

import (
	"math"
	"testing"

	"github.com/k-sandesh/edusim/internal/sim"
)

func TestSolveKeplerResidual(t *testing.T) {
	tests := []struct {
		M, e float64
	}{
		{0.0, 0.0},
		{1.0, 0.1},
		{2.5, 0.35},
		{0.3, 0.9},
		{5.8, 0.95},
	}

	for _, tt := range tests {
		E := SolveKepler(tt.M, tt.e)
		residual := E - tt.e*math.Sin(E) - tt.M
		if math.Abs(residual) > 1e-9 {
			t.Errorf("M=%.2f e=%.2f: residual %.2e", tt.M, tt.e, residual)
		}
	}
}

func TestCircularOrbitConstantRadius(t *testing.T) {
	m := NewKepler()
	p := sim.NewParams(m.Specs())
	p.Set("e", 0)
	p.Set("a", 1.5)

	for step := 0; step < 50; step++ {
		st := m.Eval(p, float64(step)*0.2)
		if math.Abs(st[2]-1.5) > 1e-9 {
			t.Fatalf("step %d: radius %.9f, want 1.5", step, st[2])
		}
	}
}

func TestOrbitPointPerihelionAphelion(t *testing.T) {
	a, e := 1.0, 0.35

	x, _, r, _ := OrbitPoint(a, e, 0)
	if math.Abs(r-a*(1-e)) > 1e-9 {
		t.Errorf("perihelion distance %.6f, want %.6f", r, a*(1-e))
	}
	if x < 0 {
		t.Errorf("perihelion on wrong side: x=%.4f", x)
	}

	_, _, r, _ = OrbitPoint(a, e, math.Pi)
	if math.Abs(r-a*(1+e)) > 1e-9 {
		t.Errorf("aphelion distance %.6f, want %.6f", r, a*(1+e))
	}
}

func TestVisVivaSpeedFasterAtPerihelion(t *testing.T) {
	m := NewKepler()
	p := sim.NewParams(m.Specs())
	p.Set("e", 0.6)

	peri := m.Eval(p, 0)
	apo := m.Eval(p, OrbitPeriod(1.0)/2)

	if peri[4] <= apo[4] {
		t.Errorf("expected perihelion speed %.4f > aphelion speed %.4f", peri[4], apo[4])
	}
}

func TestSweepRateConstant(t *testing.T) {
	m := NewKepler()
	p := sim.NewParams(m.Specs())
	p.Set("e", 0.5)

	first := m.Eval(p, 0.1)[5]
	for _, tt := range []float64{0.5, 1.7, 4.2} {
		if got := m.Eval(p, tt)[5]; math.Abs(got-first) > 1e-12 {
			t.Errorf("sweep rate changed: %.12f vs %.12f", got, first)
		}
	}
}
