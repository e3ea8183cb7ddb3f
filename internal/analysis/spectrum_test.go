package analysis

import (
	"math"
	"testing"
)

func sine(freq, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}
	return out
}

func TestPowerSpectrumFindsSine(t *testing.T) {
	const (
		freq = 2.0 // Hz
		dt   = 0.01
		n    = 1024
	)
	spec, err := PowerSpectrum(sine(freq, dt, n), dt)
	if err != nil {
		t.Fatal(err)
	}

	got := spec.DominantFrequency()
	// Bin resolution is 1/(n*dt) ~ 0.098 Hz.
	if math.Abs(got-freq) > 0.15 {
		t.Errorf("dominant frequency = %v Hz, want ~%v", got, freq)
	}

	period := spec.DominantPeriod()
	if math.Abs(period-0.5) > 0.05 {
		t.Errorf("dominant period = %v s, want ~0.5", period)
	}
}

func TestPowerSpectrumIgnoresOffset(t *testing.T) {
	vals := sine(1.0, 0.02, 512)
	for i := range vals {
		vals[i] += 40 // large DC offset
	}
	spec, err := PowerSpectrum(vals, 0.02)
	if err != nil {
		t.Fatal(err)
	}
	if got := spec.DominantFrequency(); math.Abs(got-1.0) > 0.2 {
		t.Errorf("dominant frequency = %v Hz with offset, want ~1", got)
	}
}

func TestPowerSpectrumRejectsBadInput(t *testing.T) {
	if _, err := PowerSpectrum([]float64{1, 2, 3}, 0.01); err != ErrTooShort {
		t.Errorf("short input: err = %v, want ErrTooShort", err)
	}
	if _, err := PowerSpectrum(make([]float64, 64), 0); err == nil {
		t.Error("zero dt should be rejected")
	}
}

func TestFlatSignalHasInfinitePeriod(t *testing.T) {
	spec, err := PowerSpectrum(make([]float64, 64), 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(spec.DominantPeriod(), 1) {
		t.Error("flat signal should report an infinite period")
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 100: 128, 1024: 1024}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
