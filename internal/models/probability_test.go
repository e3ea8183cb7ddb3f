package models

import (
	"testing"

	"github.com/k-sandesh/edusim/internal/sim"
)

func TestProbabilityDeterministicForSeed(t *testing.T) {
	m := NewProbability()
	p := sim.NewParams(m.Specs())

	a := m.Counts(p, 3.0)
	b := m.Counts(p, 3.0)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("counts must be reproducible from (params, step)")
		}
	}
}

func TestProbabilityRevealRate(t *testing.T) {
	m := NewProbability()
	p := sim.NewParams(m.Specs())
	p.Set("rate", 20)
	p.Set("trials", 100)

	tests := []struct {
		t    float64
		want int
	}{
		{0, 0},
		{1.0, 20},
		{2.55, 51},
		{60, 100}, // capped at trials
	}

	for _, tt := range tests {
		if got := m.Completed(p, tt.t); got != tt.want {
			t.Errorf("t=%.2f: completed %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestProbabilityCountsSum(t *testing.T) {
	m := NewProbability()

	for exp := range Experiments {
		p := sim.NewParams(m.Specs())
		p.Set("experiment", float64(exp))
		p.Set("trials", 200)
		p.Set("rate", 100)

		counts := m.Counts(p, 1.0) // 100 trials revealed
		sum := 0
		for _, c := range counts {
			sum += c
		}
		if sum != 100 {
			t.Errorf("%s: counts sum %d, want 100", Experiments[exp], sum)
		}
		if len(counts) != len(m.Outcomes(p)) {
			t.Errorf("%s: %d buckets for %d outcomes", Experiments[exp], len(counts), len(m.Outcomes(p)))
		}
	}
}

func TestProbabilityMeanApproachesExpected(t *testing.T) {
	m := NewProbability()
	p := sim.NewParams(m.Specs())
	p.Set("experiment", 1) // single die
	p.Set("trials", 1000)
	p.Set("rate", 100)

	st := m.Eval(p, 10.0) // all 1000 trials
	mean, expected := st[1], st[2]

	if expected != 3.5 {
		t.Fatalf("expected mean of a die is 3.5, got %.2f", expected)
	}
	if mean < 3.2 || mean > 3.8 {
		t.Errorf("observed mean %.3f too far from 3.5 over 1000 trials", mean)
	}
}

func TestProbabilityTerminal(t *testing.T) {
	m := NewProbability()
	p := sim.NewParams(m.Specs())
	p.Set("trials", 50)
	p.Set("rate", 10)

	if m.Done(p, 4.9) {
		t.Error("experiment finished early")
	}
	if !m.Done(p, 5.0) {
		t.Error("experiment should finish once all trials are revealed")
	}
}
