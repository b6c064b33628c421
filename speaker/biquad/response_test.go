package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponseAtDCAndNyquist(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	sr := 48000.0

	// H(1) = 1 / (1 - 0.2 + 0.04)
	if h := c.Response(0, sr); !almostEqual(real(h), 1/0.84, eps) || !almostEqual(imag(h), 0, eps) {
		t.Errorf("DC response = %v, want %v", h, 1/0.84)
	}

	// double zero at z = -1
	if h := c.Response(sr/2, sr); cmplx.Abs(h) > 1e-12 {
		t.Errorf("Nyquist response = %v, want 0", h)
	}
}

func TestChainResponseIsProduct(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs, WithGain(0.5))
	sr := 48000.0

	for _, freq := range []float64{10, 100, 1000, 10000} {
		want := 0.5 * coeffs[0].Response(freq, sr) * coeffs[1].Response(freq, sr)
		got := chain.Response(freq, sr)

		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("freq=%v: got %v, want %v", freq, got, want)
		}

		if db := chain.MagnitudeDB(freq, sr); !almostEqual(db, 20*math.Log10(cmplx.Abs(want)), 1e-9) {
			t.Errorf("freq=%v: MagnitudeDB = %v", freq, db)
		}
	}
}

func TestPolesAndStable(t *testing.T) {
	// (1 - 0.5 z^-1)(1 - 0.4 z^-1)
	c := Coefficients{B0: 1, A1: -0.9, A2: 0.2}

	p := c.Poles()
	if !almostEqual(real(p[0]), 0.5, eps) || !almostEqual(real(p[1]), 0.4, eps) {
		t.Errorf("Poles = %v, want [0.5 0.4]", p)
	}

	if !NewChain(twoSectionCoeffs()).Stable() {
		t.Error("stable cascade reported unstable")
	}

	// pole at z = 1.1
	unstable := []Coefficients{{B0: 1, A1: -1.1}}
	if NewChain(unstable).Stable() {
		t.Error("pole outside the unit circle reported stable")
	}
}
