package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns H(e^jω) of the section at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// Poles returns the roots of 1 + A1 z^-1 + A2 z^-2.
func (c *Coefficients) Poles() [2]complex128 {
	disc := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0))
	a1 := complex(c.A1, 0)

	return [2]complex128{(-a1 + disc) / 2, (-a1 - disc) / 2}
}

// Response returns the cascade response including the input gain.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns 20·log10|H| of the cascade.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		for _, p := range c.sections[i].Poles() {
			if cmplx.Abs(p) >= 1 {
				return false
			}
		}
	}

	return true
}
