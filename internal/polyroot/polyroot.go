// Package polyroot provides polynomial root finding, a canonical root
// ordering and fourth-order section factorisation shared by the speaker
// model packages.
package polyroot

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-speaker/speaker/core"
	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ErrUnpaired is returned when roots cannot be grouped into real
// second-order factors.
var ErrUnpaired = errors.New("polyroot: roots do not form real quadratic pairs")

// RealTol is the relative tolerance below which an imaginary part is
// treated as rounding noise.
const RealTol = 1e-9

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// Roots returns all roots of a real polynomial given in descending power
// order: coeff[0]*x^n + coeff[1]*x^(n-1) + ... + coeff[n].
//
// The roots are the eigenvalues of the companion matrix. If the
// eigenvalue decomposition fails, Durand-Kerner iteration is used
// instead. The order of the result is that of the solver; use
// [SortCanonical] for a reproducible order.
func Roots(coeff []float64) ([]complex128, error) {
	if len(coeff) < 2 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	for _, c := range coeff {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, ErrDegeneratePolynomial
		}
	}

	n := len(coeff) - 1
	if n == 1 {
		return []complex128{complex(-coeff[1]/coeff[0], 0)}, nil
	}

	var eig mat.Eigen
	if eig.Factorize(companion(coeff), mat.EigenNone) {
		return eig.Values(nil), nil
	}

	cc := make([]complex128, len(coeff))
	for i, c := range coeff {
		cc[i] = complex(c, 0)
	}

	return DurandKerner(cc)
}

// companion builds the n×n companion matrix of a polynomial in descending
// order: the first row holds -coeff[1:]/coeff[0], the sub-diagonal ones.
func companion(coeff []float64) *mat.Dense {
	n := len(coeff) - 1
	m := mat.NewDense(n, n, nil)

	for j := range n {
		m.Set(0, j, -coeff[j+1]/coeff[0])
	}

	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}

	return m
}

// RootsAscending is [Roots] for coefficients in ascending power order
// (c[0] + c[1]*x + c[2]*x^2 + ...).
func RootsAscending(c []float64) ([]complex128, error) {
	desc := slices.Clone(c)
	slices.Reverse(desc)

	return Roots(desc)
}

// IsReal reports whether r is real within [RealTol].
func IsReal(r complex128) bool {
	return math.Abs(imag(r)) <= RealTol*math.Max(1, cmplx.Abs(r))
}

// SortCanonical returns a copy of roots in canonical order: non-real
// roots first, by descending imaginary part and then descending real
// part, followed by real roots by descending value. Imaginary parts of
// real roots are set to exactly zero.
//
// For a real quartic with one conjugate pair and two real roots this
// yields [p, conj(p), larger real, smaller real].
func SortCanonical(roots []complex128) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		if IsReal(r) {
			r = complex(real(r), 0)
		}

		out[i] = r
	}

	slices.SortStableFunc(out, canonicalCompare)

	return out
}

func canonicalCompare(a, b complex128) int {
	realA := imag(a) == 0
	realB := imag(b) == 0

	switch {
	case !realA && realB:
		return -1
	case realA && !realB:
		return 1
	case !realA:
		if c := cmp.Compare(imag(b), imag(a)); c != 0 {
			return c
		}

		return cmp.Compare(real(b), real(a))
	default:
		return cmp.Compare(real(b), real(a))
	}
}

// PositiveReal returns the real, strictly positive roots in ascending
// order.
func PositiveReal(roots []complex128) []float64 {
	var out []float64

	for _, r := range roots {
		if IsReal(r) && real(r) > 0 {
			out = append(out, real(r))
		}
	}

	slices.Sort(out)

	return out
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	// Cauchy bound for the starting circle.
	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	radius = math.Max(1, radius)

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 1000
		tol     = 1e-13
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den
			roots[i] -= delta

			if d := cmplx.Abs(delta) / math.Max(1, cmplx.Abs(roots[i])); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	for _, r := range roots {
		if cmplx.Abs(PolyEval(norm, r)) > 1e-6*math.Max(1, math.Pow(cmplx.Abs(r), float64(n))) {
			return nil, ErrDegeneratePolynomial
		}
	}

	return roots, nil
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// PolyEvalReal evaluates a real polynomial in descending order at a
// complex point.
func PolyEvalReal(coeff []float64, x complex128) complex128 {
	v := complex(coeff[0], 0)
	for i := 1; i < len(coeff); i++ {
		v = v*x + complex(coeff[i], 0)
	}

	return v
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	return core.NearlyEqual(real(a), real(b), tol) &&
		core.NearlyEqual(imag(a), -imag(b), tol)
}
