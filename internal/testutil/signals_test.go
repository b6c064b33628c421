package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}

	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}

	// quarter period at 12 samples
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want 1", s[12])
	}
}

func TestStep(t *testing.T) {
	s := Step(5)
	for i, v := range s {
		if v != 1 {
			t.Fatalf("s[%d] = %v, want 1", i, v)
		}
	}
}

func TestExponentialDecay(t *testing.T) {
	s := ExponentialDecay(1000, 0.01, 21)
	if s[0] != 1 {
		t.Fatalf("s[0] = %v, want 1", s[0])
	}

	// one time constant after 10 samples
	if math.Abs(s[10]-math.Exp(-1)) > 1e-12 {
		t.Fatalf("s[10] = %v, want %v", s[10], math.Exp(-1))
	}
}
