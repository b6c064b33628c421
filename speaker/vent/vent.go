// Package vent sizes the circular port of a vented enclosure.
//
// The port and the box compliance form a Helmholtz resonator tuned to fb.
// The acoustic mass the port has to provide is Mav = 1/(ωb²·Cab); a tube
// of radius r and length L has Mav = ρ(L + 1.7·r)/(π·r²), where 1.7·r is
// the end correction of a port flanged on one side and free on the other.
package vent

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-speaker/internal/polyroot"
	"github.com/cwbudde/algo-speaker/speaker/core"
	"github.com/cwbudde/algo-speaker/speaker/driver"
	"github.com/cwbudde/algo-speaker/speaker/enclosure"
)

// EndCorrection is the end correction factor applied to the radius.
const EndCorrection = 1.7

// ErrNoPositiveRoot is wrapped when no positive radius produces the
// requested length.
var ErrNoPositiveRoot = errors.New("vent: no positive real radius")

// Dimensions describes a circular port. Lengths are in m, area in m².
type Dimensions struct {
	Radius float64
	Length float64
	Area   float64
}

// AcousticMass returns the acoustic mass Mav = 1/((2π·fb)²·Cab) in kg/m⁴
// the port needs to tune box b.
func AcousticMass(b *enclosure.Vented) (float64, error) {
	if b == nil {
		return 0, core.NewValidationError("vent.AcousticMass", "box", 0, "must not be nil")
	}

	wb, cab := b.Wb(), b.Cab()
	if wb == 0 || cab == 0 {
		return 0, core.NewDomainError("vent.AcousticMass", "Mav = 1/(ωb²·Cab)",
			core.In("fb", b.Fb()), core.In("Cab", cab))
	}

	return 1 / (wb * wb * cab), nil
}

// LengthFromRadius returns the port length for radius r:
// L = (π·r²·Mav - 1.7·r·ρ)/ρ. Short ports on large radii yield negative
// lengths; the result is returned as is so callers can detect them.
func LengthFromRadius(b *enclosure.Vented, r float64) (float64, error) {
	if !core.IsFinite(r) || r <= 0 {
		return 0, core.NewDomainError("vent.LengthFromRadius", "L = (π·r²·Mav - 1.7·r·ρ)/ρ", core.In("r", r))
	}

	mav, err := AcousticMass(b)
	if err != nil {
		return 0, err
	}

	return (math.Pi*r*r*mav - EndCorrection*r*core.Rho) / core.Rho, nil
}

// RadiusFromLength returns the port radius for length L, the smallest
// positive real root of Mav·π·r² - 1.7·ρ·r - L·ρ = 0.
func RadiusFromLength(b *enclosure.Vented, length float64) (float64, error) {
	const (
		op      = "vent.RadiusFromLength"
		formula = "Mav·π·r² - 1.7·ρ·r - L·ρ = 0"
	)

	if !core.IsFinite(length) {
		return 0, core.NewDomainError(op, formula, core.In("L", length))
	}

	mav, err := AcousticMass(b)
	if err != nil {
		return 0, err
	}

	roots, err := polyroot.RootsAscending([]float64{-length * core.Rho, -EndCorrection * core.Rho, mav * math.Pi})
	if err != nil {
		de := core.NewDomainError(op, formula, core.In("L", length), core.In("Mav", mav))
		de.Err = err

		return 0, de
	}

	pos := polyroot.PositiveReal(roots)
	if len(pos) == 0 {
		de := core.NewDomainError(op, formula, core.In("L", length), core.In("Mav", mav))
		de.Err = ErrNoPositiveRoot

		return 0, de
	}

	return pos[0], nil
}

// Area returns the cross-section π·r² of a port of radius r.
func Area(r float64) float64 { return math.Pi * r * r }

// FromRadius sizes a port of radius r.
func FromRadius(b *enclosure.Vented, r float64) (Dimensions, error) {
	length, err := LengthFromRadius(b, r)
	if err != nil {
		return Dimensions{}, err
	}

	return Dimensions{Radius: r, Length: length, Area: Area(r)}, nil
}

// FromLength sizes a port of the given length.
func FromLength(b *enclosure.Vented, length float64) (Dimensions, error) {
	r, err := RadiusFromLength(b, length)
	if err != nil {
		return Dimensions{}, err
	}

	return Dimensions{Radius: r, Length: length, Area: Area(r)}, nil
}

// MinimumArea returns the smallest port cross-section in m² that keeps the
// air velocity acceptable at full excursion: 0.8·fb·Sd·xmax.
func MinimumArea(d *driver.Driver, b *enclosure.Vented) float64 {
	return 0.8 * b.Fb() * d.Sd * d.Xmax
}

// MinimumAreaMM2 is [MinimumArea] in mm².
func MinimumAreaMM2(d *driver.Driver, b *enclosure.Vented) float64 {
	return MinimumArea(d, b) * 1e6
}
