// Package analysis extracts periodicity from sampled simulation output.
// The orbit and tide models are periodic by construction; the spectrum
// gives students a way to read the period off real data.
package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("analysis: need at least 8 samples")

// Spectrum is a one-sided power spectrum of a uniformly sampled signal.
type Spectrum struct {
	Freqs []float64 // Hz, ascending from DC
	Power []float64
}

// PowerSpectrum computes the one-sided power spectrum of values sampled at
// interval dt. The mean is removed first so the DC bin does not swamp the
// oscillation of interest, and the input is zero-padded to a power of two.
func PowerSpectrum(values []float64, dt float64) (*Spectrum, error) {
	if len(values) < 8 {
		return nil, ErrTooShort
	}
	if dt <= 0 {
		return nil, errors.New("analysis: dt must be positive")
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	n := nextPow2(len(values))
	buf := make([]float64, n)
	for i, v := range values {
		buf[i] = v - mean
	}

	spec := fft.FFTReal(buf)
	half := n / 2
	out := &Spectrum{
		Freqs: make([]float64, half),
		Power: make([]float64, half),
	}
	for i := 0; i < half; i++ {
		out.Freqs[i] = float64(i) / (float64(n) * dt)
		mag := cmplx.Abs(spec[i])
		out.Power[i] = mag * mag / float64(n)
	}
	return out, nil
}

// DominantFrequency returns the frequency of the strongest non-DC bin.
func (s *Spectrum) DominantFrequency() float64 {
	best, bestPower := 0.0, 0.0
	for i := 1; i < len(s.Freqs); i++ {
		if s.Power[i] > bestPower {
			best, bestPower = s.Freqs[i], s.Power[i]
		}
	}
	return best
}

// DominantPeriod returns 1/DominantFrequency, or +Inf for a flat signal.
func (s *Spectrum) DominantPeriod() float64 {
	f := s.DominantFrequency()
	if f == 0 {
		return math.Inf(1)
	}
	return 1 / f
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
