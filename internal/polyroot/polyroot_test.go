package polyroot

import (
	"math"
	"math/cmplx"
	"testing"
)

func almostEqual(valA, valB, tol float64) bool {
	if valA == valB {
		return true
	}

	diff := math.Abs(valA - valB)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(valA), math.Abs(valB))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

func requireRoots(t *testing.T, coeff []float64, roots []complex128, tol float64) {
	t.Helper()

	if len(roots) != len(coeff)-1 {
		t.Fatalf("expected %d roots, got %d", len(coeff)-1, len(roots))
	}

	for i, r := range roots {
		if v := PolyEvalReal(coeff, r); cmplx.Abs(v) > tol {
			t.Errorf("root %d: p(%v) = %v, expected ~0", i, r, v)
		}
	}
}

func TestRoots_Linear(t *testing.T) {
	roots, err := Roots([]float64{2, -3})
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 1 || roots[0] != complex(1.5, 0) {
		t.Fatalf("roots = %v, want [1.5]", roots)
	}
}

func TestRoots_Quadratic(t *testing.T) {
	// x^2 - 3x + 2 = (x-1)(x-2)
	coeff := []float64{1, -3, 2}

	roots, err := Roots(coeff)
	if err != nil {
		t.Fatal(err)
	}

	requireRoots(t, coeff, roots, 1e-12)

	pos := PositiveReal(roots)
	if len(pos) != 2 || !almostEqual(pos[0], 1, 1e-12) || !almostEqual(pos[1], 2, 1e-12) {
		t.Fatalf("PositiveReal = %v, want [1 2]", pos)
	}
}

func TestRoots_Quartic(t *testing.T) {
	// (x^2 - 1)(x^2 - 4) = x^4 - 5x^2 + 4
	coeff := []float64{1, 0, -5, 0, 4}

	roots, err := Roots(coeff)
	if err != nil {
		t.Fatal(err)
	}

	requireRoots(t, coeff, roots, 1e-9)

	got := SortCanonical(roots)
	want := []float64{2, 1, -1, -2}

	for i := range want {
		if imag(got[i]) != 0 || !almostEqual(real(got[i]), want[i], 1e-10) {
			t.Fatalf("canonical order = %v, want %v", got, want)
		}
	}
}

func TestRoots_RejectsDegenerate(t *testing.T) {
	for _, coeff := range [][]float64{
		nil,
		{1},
		{0, 1, 2},
		{1, math.NaN(), 2},
		{1, math.Inf(1)},
	} {
		if _, err := Roots(coeff); err != ErrDegeneratePolynomial {
			t.Errorf("Roots(%v) err = %v, want ErrDegeneratePolynomial", coeff, err)
		}
	}
}

func TestRootsAscending(t *testing.T) {
	// 2 - 3x + x^2 in ascending order
	roots, err := RootsAscending([]float64{2, -3, 1})
	if err != nil {
		t.Fatal(err)
	}

	pos := PositiveReal(roots)
	if len(pos) != 2 || !almostEqual(pos[0], 1, 1e-12) {
		t.Fatalf("PositiveReal = %v, want [1 2]", pos)
	}
}

func TestSortCanonical_PairThenReals(t *testing.T) {
	in := []complex128{
		complex(-0.06, 0),
		complex(3.5, -1.9),
		complex(1.02, 1e-14),
		complex(3.5, 1.9),
	}

	got := SortCanonical(in)
	want := []complex128{
		complex(3.5, 1.9),
		complex(3.5, -1.9),
		complex(1.02, 0),
		complex(-0.06, 0),
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortCanonical = %v, want %v", got, want)
		}
	}

	if in[2] != complex(1.02, 1e-14) {
		t.Fatal("SortCanonical modified its input")
	}
}

func TestSortCanonical_Deterministic(t *testing.T) {
	a := []complex128{complex(1, 0), complex(0, 1), complex(-1, 0), complex(0, -1)}
	b := []complex128{complex(0, -1), complex(-1, 0), complex(0, 1), complex(1, 0)}

	sa, sb := SortCanonical(a), SortCanonical(b)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("order depends on input permutation: %v vs %v", sa, sb)
		}
	}
}

func TestDurandKerner_Quartic(t *testing.T) {
	coeff := []complex128{1, 0, -5, 0, 4}

	roots, err := DurandKerner(coeff)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range roots {
		if val := PolyEval(coeff, r); cmplx.Abs(val) > 1e-8 {
			t.Errorf("root %d: p(%v) = %v, expected ~0", i, r, val)
		}
	}
}

func TestDurandKerner_ConjugatePairRoots(t *testing.T) {
	// z^4 + 1 has roots at e^{i*pi/4 * (2k+1)}, k=0..3
	roots, err := DurandKerner([]complex128{1, 0, 0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range roots {
		if !almostEqual(cmplx.Abs(r), 1.0, 1e-9) {
			t.Errorf("root %d: |r|=%v, expected 1.0", i, cmplx.Abs(r))
		}
	}
}

func TestDurandKerner_AgreesWithEigen(t *testing.T) {
	// characteristic quartic of a vented-box alignment
	coeff := []float64{1, -8.059494462901444, 23.04376880182898, -15.256686046511632, -1}

	eig, err := Roots(coeff)
	if err != nil {
		t.Fatal(err)
	}

	cc := make([]complex128, len(coeff))
	for i, c := range coeff {
		cc[i] = complex(c, 0)
	}

	dk, err := DurandKerner(cc)
	if err != nil {
		t.Fatal(err)
	}

	se, sd := SortCanonical(eig), SortCanonical(dk)
	for i := range se {
		if cmplx.Abs(se[i]-sd[i]) > 1e-9 {
			t.Fatalf("solvers disagree at %d: %v vs %v", i, se, sd)
		}
	}
}

func TestPolyEval(t *testing.T) {
	// p(z) = 2z^3 - 3z + 5, p(2) = 16 - 6 + 5 = 15
	val := PolyEval([]complex128{2, 0, -3, 5}, 2)
	if !almostEqual(real(val), 15, 1e-12) || !almostEqual(imag(val), 0, 1e-12) {
		t.Errorf("PolyEval: expected 15, got %v", val)
	}

	// p(j) for p = x^2 + 1 is zero
	if v := PolyEvalReal([]float64{1, 0, 1}, complex(0, 1)); v != 0 {
		t.Errorf("PolyEvalReal: expected 0, got %v", v)
	}
}

func TestIsConjugate(t *testing.T) {
	tests := []struct {
		name string
		a, b complex128
		want bool
	}{
		{"exact conjugates", complex(1, 2), complex(1, -2), true},
		{"near conjugates", complex(1, 2), complex(1.0+1e-9, -2.0+1e-9), true},
		{"not conjugates", complex(1, 2), complex(2, -2), false},
		{"real values", complex(5, 0), complex(5, 0), true},
		{"same sign imaginary", complex(1, 2), complex(1, 2), false},
		{"large magnitude relative", complex(-786.546, 270.975), complex(-786.546*(1+1e-9), -270.975), true},
		{"large magnitude off", complex(-786.546, 270.975), complex(-786.5, -270.975), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConjugate(tt.a, tt.b, ConjugateTol); got != tt.want {
				t.Errorf("IsConjugate(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
