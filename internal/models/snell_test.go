package models

import (
	"math"
	"testing"

	"github.com/k-sandesh/edusim/internal/sim"
)

func TestRefractSnellIdentity(t *testing.T) {
	tests := []struct {
		n1, n2, theta1Deg float64
	}{
		{1.00, 1.33, 35},
		{1.00, 1.50, 60},
		{1.33, 1.00, 20},
		{1.52, 1.62, 45},
	}

	for _, tt := range tests {
		theta1 := tt.theta1Deg * math.Pi / 180
		theta2, _, tir := Refract(tt.n1, tt.n2, theta1)
		if tir {
			t.Errorf("n1=%.2f n2=%.2f theta1=%.0f: unexpected TIR", tt.n1, tt.n2, tt.theta1Deg)
			continue
		}
		lhs := tt.n1 * math.Sin(theta1)
		rhs := tt.n2 * math.Sin(theta2)
		if math.Abs(lhs-rhs) > 1e-12 {
			t.Errorf("snell identity violated: %.12f != %.12f", lhs, rhs)
		}
	}
}

func TestRefractTotalInternalReflection(t *testing.T) {
	// glass to air, critical angle asin(1/1.5) ~ 41.8 deg
	critical := math.Asin(1.0 / 1.5)

	_, c, tir := Refract(1.5, 1.0, critical-0.01)
	if tir {
		t.Error("TIR below the critical angle")
	}
	if math.Abs(c-critical) > 1e-12 {
		t.Errorf("critical angle %.6f, want %.6f", c, critical)
	}

	_, _, tir = Refract(1.5, 1.0, critical+0.01)
	if !tir {
		t.Error("expected TIR past the critical angle")
	}
}

func TestRefractNoCriticalAngleIntoDenser(t *testing.T) {
	_, critical, tir := Refract(1.0, 2.42, 80*math.Pi/180)
	if tir {
		t.Error("no TIR possible entering a denser medium")
	}
	if !math.IsNaN(critical) {
		t.Errorf("expected NaN critical angle, got %.4f", critical)
	}
}

func TestSnellEvalReflectsOnTIR(t *testing.T) {
	m := NewSnell()
	p := sim.NewParams(m.Specs())
	p.Set("n1", 1.5)
	p.Set("n2", 1.0)
	p.Set("theta1", 60)

	st := m.Eval(p, 0)
	if st[2] != 1 {
		t.Fatal("expected TIR flag set")
	}
	if math.Abs(st[0]-60) > 1e-9 {
		t.Errorf("reflected angle %.4f, want 60", st[0])
	}
}

func TestMaterialNamesStable(t *testing.T) {
	a := MaterialNames()
	b := MaterialNames()
	if len(a) != len(Materials) {
		t.Fatalf("expected %d materials, got %d", len(Materials), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("material order must be stable")
		}
	}
}
