package polyroot

import (
	"cmp"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-speaker/speaker/biquad"
)

// PairRoots groups roots into real quadratic factors. Complex roots are
// matched with their closest conjugate; the remaining real roots are
// sorted in descending order and paired neighbour by neighbour.
func PairRoots(roots []complex128) ([][2]complex128, error) {
	used := make([]bool, len(roots))
	pairs := make([][2]complex128, 0, len(roots)/2)

	var reals []complex128

	for i := range roots {
		if used[i] {
			continue
		}

		root := roots[i]
		if IsReal(root) {
			used[i] = true
			reals = append(reals, complex(real(root), 0))

			continue
		}

		conj := cmplx.Conj(root)
		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if i == j || used[j] {
				continue
			}

			if d := cmplx.Abs(roots[j] - conj); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, roots[best], ConjugateTol) {
			return nil, ErrUnpaired
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, roots[best]})
	}

	if len(reals)%2 != 0 {
		return nil, ErrUnpaired
	}

	slices.SortFunc(reals, func(a, b complex128) int { return cmp.Compare(real(b), real(a)) })

	for i := 0; i < len(reals); i += 2 {
		pairs = append(pairs, [2]complex128{reals[i], reals[i+1]})
	}

	return pairs, nil
}

// QuadFromRoots expands a root pair into the monic polynomial
// 1 - (r1+r2) z^-1 + r1 r2 z^-2. The pair must be a conjugate pair or two
// real roots.
func QuadFromRoots(pair [2]complex128) (float64, float64, float64, error) {
	r1, r2 := pair[0], pair[1]

	switch {
	case IsReal(r1) && IsReal(r2):
		return 1, -(real(r1) + real(r2)), real(r1) * real(r2), nil
	case IsConjugate(r1, r2, ConjugateTol):
		a := real(r1)
		b := math.Abs(imag(r1))

		return 1, -2 * a, a*a + b*b, nil
	default:
		return 0, 0, 0, ErrUnpaired
	}
}

// SplitFourthOrder factors a fourth-order z-domain transfer function given
// by its zeros and poles into two monic biquad sections. The overall gain
// is left to the caller (see [biquad.WithGain]).
func SplitFourthOrder(zeros, poles [4]complex128) ([]biquad.Coefficients, error) {
	zeroPairs, err := PairRoots(zeros[:])
	if err != nil {
		return nil, err
	}

	polePairs, err := PairRoots(poles[:])
	if err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, len(polePairs))

	for i := range polePairs {
		b0, b1, b2, err := QuadFromRoots(zeroPairs[i])
		if err != nil {
			return nil, err
		}

		_, a1, a2, err := QuadFromRoots(polePairs[i])
		if err != nil {
			return nil, err
		}

		sections[i] = biquad.Coefficients{B0: b0, B1: b1, B2: b2, A1: a1, A2: a2}
	}

	return sections, nil
}
