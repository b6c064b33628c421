package system

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-speaker/internal/polyroot"
	"github.com/cwbudde/algo-speaker/speaker/core"
	"github.com/cwbudde/algo-speaker/speaker/driver"
	"github.com/cwbudde/algo-speaker/speaker/enclosure"
)

// Order is the order of the vented-box transfer function.
const Order = 4

// Speaker is a driver mounted in an enclosure, reduced to its transfer
// function H(s) = B(s)/A(s).
//
// The driver and box are copied when the speaker is built; mutating
// them afterwards does not change the speaker.
type Speaker struct {
	topology enclosure.Topology
	driver   driver.Driver
	box      enclosure.Vented

	t0    float64
	f0    float64
	h     float64
	alpha float64

	num [Order + 1]float64
	den [Order + 1]float64
}

// NewVented builds the transfer function of driver d in vented box b.
func NewVented(d *driver.Driver, b *enclosure.Vented) (*Speaker, error) {
	const op = "system.NewVented"

	if d == nil {
		return nil, core.NewValidationError(op, "driver", 0, "must not be nil")
	}

	if b == nil {
		return nil, core.NewValidationError(op, "box", 0, "must not be nil")
	}

	if err := d.Valid(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ts, tb := d.Ts(), b.Tb()
	if !(tb > 0) {
		return nil, core.NewDomainError(op, "h = Ts/Tb", core.In("Ts", ts), core.In("Tb", tb))
	}

	if b.Cab() == 0 {
		return nil, core.NewDomainError(op, "α = Cas/Cab", core.In("Cas", d.Cas()), core.In("Cab", b.Cab()))
	}

	qts, ql := d.Qts, b.Ql()
	if !(qts > 0) || !(ql > 0) {
		return nil, core.NewDomainError(op, "a1 = T0³(Ql + h·Qts)/(√h·Ql·Qts)", core.In("Qts", qts), core.In("Ql", ql))
	}

	s := &Speaker{
		topology: enclosure.TopologyVented,
		driver:   *d,
		box:      *b,
		t0:       math.Sqrt(ts * tb),
		h:        ts / tb,
		alpha:    d.Cas() / b.Cab(),
	}
	s.f0 = 1 / (2 * math.Pi * s.t0)

	t0, h, alpha := s.t0, s.h, s.alpha
	sqrtH := math.Sqrt(h)
	t02 := t0 * t0
	t04 := t02 * t02

	s.den = [Order + 1]float64{
		t04,
		t02 * t0 * (ql + h*qts) / (sqrtH * ql * qts),
		t02 * (h + (alpha+1+h*h)*qts*ql) / (h * qts * ql),
		t0 * (h*ql + qts) / (sqrtH * qts * ql),
		1,
	}
	s.num = [Order + 1]float64{t04, 0, 0, 0, 0}

	if !core.AllFinite(s.den[:]...) || !core.AllFinite(s.num[:]...) || s.den[0] == 0 {
		return nil, core.NewDomainError(op, "H(s) = B(s)/A(s)",
			core.In("T0", t0), core.In("h", h), core.In("α", alpha), core.In("Qts", qts), core.In("Ql", ql))
	}

	return s, nil
}

// Topology returns the enclosure type the transfer function models.
func (s *Speaker) Topology() enclosure.Topology { return s.topology }

// Driver returns a copy of the driver the speaker was built from.
func (s *Speaker) Driver() driver.Driver { return s.driver }

// Box returns a copy of the enclosure the speaker was built from.
func (s *Speaker) Box() enclosure.Vented { return s.box }

// T0 returns the system time constant √(Ts·Tb) in seconds.
func (s *Speaker) T0() float64 { return s.t0 }

// F0 returns the system reference frequency 1/(2π·T0) in Hz.
func (s *Speaker) F0() float64 { return s.f0 }

// TuningRatio returns h = Ts/Tb = fb/fs.
func (s *Speaker) TuningRatio() float64 { return s.h }

// ComplianceRatio returns α = Cas/Cab = Vas/Vab.
func (s *Speaker) ComplianceRatio() float64 { return s.alpha }

// Numerator returns the coefficients of B(s).
func (s *Speaker) Numerator() []float64 { return append([]float64(nil), s.num[:]...) }

// Denominator returns the coefficients of A(s).
func (s *Speaker) Denominator() []float64 { return append([]float64(nil), s.den[:]...) }

// Transfer evaluates H(jω) at angular frequency w in rad/s.
func (s *Speaker) Transfer(w float64) complex128 {
	return s.transferWith(s.num[:], w)
}

func (s *Speaker) transferWith(num []float64, w float64) complex128 {
	jw := complex(0, w)
	return polyroot.PolyEvalReal(num, jw) / polyroot.PolyEvalReal(s.den[:], jw)
}

// normalized returns the denominator scaled to s·T0, which is monic with
// a unit constant term: [1, a1', a2', a3', 1].
func (s *Speaker) normalized() [Order + 1]float64 {
	t0 := s.t0

	return [Order + 1]float64{
		1,
		s.den[1] / (t0 * t0 * t0),
		s.den[2] / (t0 * t0),
		s.den[3] / t0,
		1,
	}
}

// Poles returns the roots of A(s) in rad/s in canonical order (see
// [polyroot.SortCanonical]).
func (s *Speaker) Poles() ([]complex128, error) {
	norm := s.normalized()

	roots, err := polyroot.Roots(norm[:])
	if err != nil {
		de := core.NewDomainError("system.Poles", "A(s) = 0", core.In("T0", s.t0))
		de.Err = err

		return nil, de
	}

	roots = polyroot.SortCanonical(roots)
	for i := range roots {
		roots[i] /= complex(s.t0, 0)
	}

	return roots, nil
}
