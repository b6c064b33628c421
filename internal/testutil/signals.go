// Package testutil holds signal generators and tolerance checks shared by
// the package tests.
package testutil

import "math"

// DeterministicSine generates a sine wave starting at phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Step generates a unit step of the given length.
func Step(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = 1
	}

	return out
}

// ExponentialDecay generates exp(-t/tau) sampled at sampleRate.
func ExponentialDecay(sampleRate, tau float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = math.Exp(-float64(i) / sampleRate / tau)
	}

	return out
}
