package models

import (
	"math"
	"testing"

	"github.com/k-sandesh/edusim/internal/sim"
)

func TestProjectileMatchesClosedFormRange(t *testing.T) {
	m := NewProjectile()
	p := sim.NewParams(m.Specs())
	p.Set("v0", 20)
	p.Set("angle", 45)
	p.Set("drag", 0)

	// evaluate well past landing; the state holds the impact point
	st := m.Eval(p, projectileTmax)

	ideal := IdealRange(20, math.Pi/4, 9.81)
	if math.Abs(st[0]-ideal) > 0.01*ideal {
		t.Errorf("range: got %.3f, want %.3f within 1%%", st[0], ideal)
	}
	if st[1] != 0 {
		t.Errorf("expected projectile on the ground, y=%.4f", st[1])
	}
}

func TestProjectileFlightTime(t *testing.T) {
	m := NewProjectile()
	p := sim.NewParams(m.Specs())
	p.Set("v0", 30)
	p.Set("angle", 60)

	ideal := IdealFlightTime(30, 60*math.Pi/180, 9.81)

	if m.Done(p, ideal*0.9) {
		t.Error("flight finished too early")
	}
	if !m.Done(p, ideal*1.1) {
		t.Error("flight still airborne past the closed-form landing time")
	}
}

func TestProjectileDragShortensRange(t *testing.T) {
	m := NewProjectile()

	free := sim.NewParams(m.Specs())
	free.Set("drag", 0)
	dragged := sim.NewParams(m.Specs())
	dragged.Set("drag", 1)

	xs1, _ := m.Trajectory(free)
	xs2, _ := m.Trajectory(dragged)

	if xs2[len(xs2)-1] >= xs1[len(xs1)-1] {
		t.Errorf("drag did not shorten range: %.3f vs %.3f",
			xs2[len(xs2)-1], xs1[len(xs1)-1])
	}
}

func TestProjectileDeterministic(t *testing.T) {
	m := NewProjectile()
	p := sim.NewParams(m.Specs())
	p.Set("drag", 1)

	a := m.Eval(p, 1.3)
	b := m.Eval(p, 1.3)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("component %d differs: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestProjectileTargetFromSeed(t *testing.T) {
	m := NewProjectile()
	p := sim.NewParams(m.Specs())

	x1, y1 := m.Target(p)
	x2, y2 := m.Target(p)
	if x1 != x2 || y1 != y2 {
		t.Error("target must be deterministic for a fixed seed")
	}
	if x1 < 15 || x1 > 60 || y1 < 2 || y1 > 18 {
		t.Errorf("target outside classroom range: (%.2f, %.2f)", x1, y1)
	}

	p.Set("seed", 7)
	x3, _ := m.Target(p)
	if x3 == x1 {
		t.Error("different seeds should move the target")
	}
}
