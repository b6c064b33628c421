// Package driver models a loudspeaker drive unit by its Thiele/Small
// parameters.
//
// The resonance frequency and the equivalent compliance volume have
// derived quantities attached (ωs, Ts and Cas). They are only changed
// through [Driver.SetFs] and [Driver.SetVas], which recompute every
// dependent value before returning so a driver is never partially derived.
package driver

import (
	"math"

	"github.com/cwbudde/algo-speaker/speaker/core"
)

// Driver holds the parameters of one drive unit.
type Driver struct {
	manufacturer string
	model        string

	Diameter float64 // nominal diameter in inches
	Weight   float64 // net weight in kg
	Power    float64 // AES power handling in W
	Qts      float64 // total Q
	Qes      float64 // electrical Q
	Sd       float64 // projected diaphragm area in m²
	Mms      float64 // moving mass including air load in kg
	Xmax     float64 // linear peak excursion in m

	fs  float64
	ws  float64
	ts  float64
	vas float64
	cas float64
}

// New returns a driver with the given identity and all physical
// parameters zero.
func New(manufacturer, model string) *Driver {
	return &Driver{manufacturer: manufacturer, model: model}
}

// Manufacturer returns the manufacturer name.
func (d *Driver) Manufacturer() string { return d.manufacturer }

// Model returns the model name.
func (d *Driver) Model() string { return d.model }

// String returns "manufacturer model".
func (d *Driver) String() string { return d.manufacturer + " " + d.model }

// Fs returns the resonance frequency in Hz.
func (d *Driver) Fs() float64 { return d.fs }

// Ws returns the angular resonance frequency ωs = 2π·fs.
func (d *Driver) Ws() float64 { return d.ws }

// Ts returns the time constant Ts = 1/ωs. It is not a period.
func (d *Driver) Ts() float64 { return d.ts }

// Vas returns the equivalent compliance volume in m³.
func (d *Driver) Vas() float64 { return d.vas }

// Cas returns the acoustic compliance of the suspension, Vas/(ρ·c²).
func (d *Driver) Cas() float64 { return d.cas }

// Vd returns the peak displaced volume Sd·xmax in m³.
func (d *Driver) Vd() float64 { return d.Sd * d.Xmax }

// SetFs sets the resonance frequency and re-derives ωs and Ts.
// fs must be positive and finite; otherwise the driver is left unchanged.
func (d *Driver) SetFs(fs float64) error {
	if !core.IsFinite(fs) || fs <= 0 {
		return core.NewDomainError("driver.SetFs", "Ts = 1/(2π·fs)", core.In("fs", fs))
	}

	ws := 2 * math.Pi * fs
	d.fs = fs
	d.ws = ws
	d.ts = 1 / ws

	return nil
}

// SetVas sets the equivalent compliance volume and re-derives Cas.
// vas must be finite and not negative.
func (d *Driver) SetVas(vas float64) error {
	if !core.IsFinite(vas) || vas < 0 {
		return core.NewDomainError("driver.SetVas", "Cas = Vas/(ρ·c²)", core.In("Vas", vas))
	}

	d.vas = vas
	d.cas = core.Compliance(vas)

	return nil
}

// Valid reports whether the driver can take part in a response
// calculation, i.e. its resonance frequency has been set.
func (d *Driver) Valid() error {
	if d.ts <= 0 {
		return core.NewDomainError("driver.Valid", "Ts = 1/(2π·fs)", core.In("fs", d.fs))
	}

	return nil
}
