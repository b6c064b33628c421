package system

import (
	"math"

	"github.com/cwbudde/algo-speaker/internal/polyroot"
	"github.com/cwbudde/algo-speaker/speaker/biquad"
	"github.com/cwbudde/algo-speaker/speaker/core"
)

// Filter is a sample-based emulation of a [Speaker]: the bilinear
// transform of H(s), pre-warped at f0, run as two cascaded biquads.
type Filter struct {
	sampleRate float64
	chain      *biquad.Chain
}

// Digital returns the discrete-time emulation of the speaker at the given
// sample rate. f0 must lie below the Nyquist frequency.
func (s *Speaker) Digital(sampleRate float64) (*Filter, error) {
	const (
		op      = "system.Digital"
		formula = "H(z) = G·(1 - z⁻¹)⁴/Π(1 - p·z⁻¹)"
	)

	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, core.NewValidationError(op, "sampleRate", sampleRate, "must be positive")
	}

	if s.f0 >= sampleRate/2 {
		return nil, core.NewValidationError(op, "sampleRate", sampleRate, "must exceed twice f0")
	}

	poles, err := s.Poles()
	if err != nil {
		return nil, err
	}

	w0 := core.AngularFrequency(s.f0)
	k := complex(w0/math.Tan(w0/(2*sampleRate)), 0)

	var zp [Order]complex128

	nyquist := complex(1, 0)

	for i, p := range poles {
		zp[i] = (k + p) / (k - p)
		nyquist *= 1 + zp[i]
	}

	// All four zeros of s⁴ map to z = 1. The gain makes H(z = -1) match
	// the analog gain at infinite frequency.
	gain := real(nyquist) / 16 * s.num[0] / s.den[0]
	zeros := [Order]complex128{1, 1, 1, 1}

	sections, err := polyroot.SplitFourthOrder(zeros, zp)
	if err != nil {
		de := core.NewDomainError(op, formula, core.In("fs", sampleRate))
		de.Err = err

		return nil, de
	}

	chain := biquad.NewChain(sections, biquad.WithGain(gain))
	if !chain.Stable() {
		return nil, core.NewDomainError(op, formula, core.In("fs", sampleRate), core.In("f0", s.f0))
	}

	return &Filter{sampleRate: sampleRate, chain: chain}, nil
}

// SampleRate returns the rate the filter was designed for.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Sections returns the section coefficients in processing order.
func (f *Filter) Sections() []biquad.Coefficients { return f.chain.Coefficients() }

// Gain returns the input gain of the cascade.
func (f *Filter) Gain() float64 { return f.chain.Gain() }

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float64) float64 { return f.chain.ProcessSample(x) }

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) { f.chain.ProcessBlock(buf) }

// Reset clears the delay lines.
func (f *Filter) Reset() { f.chain.Reset() }

// StepResponse returns n samples of the response to a unit step without
// disturbing the filter state.
func (f *Filter) StepResponse(n int) []float64 { return f.chain.StepResponse(n) }

// Response returns the complex response of the cascade at freqHz.
func (f *Filter) Response(freqHz float64) complex128 {
	return f.chain.Response(freqHz, f.sampleRate)
}

// MagnitudeDB returns 20·log10|H| of the cascade at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return f.chain.MagnitudeDB(freqHz, f.sampleRate)
}
