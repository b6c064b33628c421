package system

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-speaker/internal/polyroot"
	"github.com/cwbudde/algo-speaker/speaker/core"
)

// ErrNoCutoffRoot is wrapped in the [core.DomainError] returned when the
// cutoff polynomial has no positive real root.
var ErrNoCutoffRoot = errors.New("system: cutoff polynomial has no positive real root")

// cutoffRootIndex selects the cutoff root in canonical order.
const cutoffRootIndex = 2

// Output is the displacement-limited acoustic output of a speaker.
type Output struct {
	VolumeDisplacement float64 // Vd = Sd·xmax in m³
	AcousticPower      float64 // P_ar in W
	SPL                float64 // dB SPL at 1 m
}

// CutoffRoots returns the roots of the cutoff polynomial
// x⁴ - A1·x³ - A2·x² - A3·x - 1 in canonical order. A root x of this
// polynomial is a squared normalized frequency (f/f0)² at which |H| = 1/√2.
func (s *Speaker) CutoffRoots() ([]complex128, error) {
	norm := s.normalized()
	a1, a2, a3 := norm[1], norm[2], norm[3]

	A1 := a1*a1 - 2*a2
	A2 := a2*a2 + 2 - 2*a1*a3
	A3 := a3*a3 - 2*a2

	roots, err := polyroot.Roots([]float64{1, -A1, -A2, -A3, -1})
	if err != nil {
		de := core.NewDomainError("system.CutoffRoots", "x⁴ - A1·x³ - A2·x² - A3·x - 1 = 0",
			core.In("A1", A1), core.In("A2", A2), core.In("A3", A3))
		de.Err = err

		return nil, de
	}

	return polyroot.SortCanonical(roots), nil
}

// F3 returns the -3 dB cutoff frequency in Hz.
//
// The third root in canonical order is used. When that root is not a
// positive real number the smallest positive real root is used instead.
func (s *Speaker) F3() (float64, error) {
	roots, err := s.CutoffRoots()
	if err != nil {
		return 0, err
	}

	root := roots[cutoffRootIndex]
	if imag(root) != 0 || real(root) <= 0 {
		pos := polyroot.PositiveReal(roots)
		if len(pos) == 0 {
			de := core.NewDomainError("system.F3", "f3 = √d·f0", core.In("f0", s.f0))
			de.Err = ErrNoCutoffRoot

			return 0, de
		}

		root = complex(pos[0], 0)
	}

	return math.Sqrt(cmplx.Abs(root)) * s.f0, nil
}

// ReferenceEfficiency returns the reference (pass-band) efficiency
// η = k·f3³·Vab with k = (4π²/c³)·(Vas/Vab)·(fs/f3)³/Qes.
func (s *Speaker) ReferenceEfficiency() (float64, error) {
	const (
		op      = "system.ReferenceEfficiency"
		formula = "k = (4π²/c³)·(Vas/Vab)·(fs/f3)³/Qes"
	)

	qes, vab := s.driver.Qes, s.box.Vab()
	if !(qes > 0) || vab == 0 {
		return 0, core.NewDomainError(op, formula, core.In("Qes", qes), core.In("Vab", vab))
	}

	f3, err := s.F3()
	if err != nil {
		return 0, err
	}

	tuning := s.driver.Fs() / f3
	k := 4 * math.Pi * math.Pi / (core.C * core.C * core.C) *
		(s.driver.Vas() / vab) * tuning * tuning * tuning / qes

	return k * f3 * f3 * f3 * vab, nil
}

// MaxOutput returns the displacement-limited acoustic power
// P_ar = 3·f3⁴·Vd² and the matching sound pressure level
// 112 + 10·log10(P_ar).
func (s *Speaker) MaxOutput() (Output, error) {
	vd := s.driver.Vd()
	if !(vd > 0) {
		return Output{}, core.NewDomainError("system.MaxOutput", "P_ar = 3·f3⁴·Vd²",
			core.In("Sd", s.driver.Sd), core.In("xmax", s.driver.Xmax))
	}

	f3, err := s.F3()
	if err != nil {
		return Output{}, err
	}

	f3sq := f3 * f3
	par := 3 * f3sq * f3sq * vd * vd

	return Output{
		VolumeDisplacement: vd,
		AcousticPower:      par,
		SPL:                112 + core.LinearPowerToDB(par),
	}, nil
}
