// Package enclosure models loudspeaker boxes.
//
// Only the vented (bass-reflex) box is implemented. [Topology] tags the
// box type so that other alignments can be added as further variants.
package enclosure

import (
	"math"

	"github.com/cwbudde/algo-speaker/speaker/core"
)

// Topology identifies an enclosure type.
type Topology int

const (
	// TopologyVented is a single-vented box forming a Helmholtz resonator
	// with the enclosed air.
	TopologyVented Topology = iota
)

// String returns a human-readable name for the topology.
func (t Topology) String() string {
	switch t {
	case TopologyVented:
		return "vented"
	default:
		return "unknown"
	}
}

// Vented is a vented box with net volume Vab, tuning frequency fb and
// leakage losses Ql.
type Vented struct {
	vab float64
	cab float64
	fb  float64
	wb  float64
	tb  float64
	ql  float64
}

// NewVented returns a box with volume vab in m³, tuning fb in Hz and
// leakage quality factor ql (typically 5–30).
func NewVented(vab, fb, ql float64) (*Vented, error) {
	b := &Vented{}

	if err := b.SetVab(vab); err != nil {
		return nil, err
	}

	if err := b.SetFb(fb); err != nil {
		return nil, err
	}

	if err := b.SetQl(ql); err != nil {
		return nil, err
	}

	return b, nil
}

// Topology returns [TopologyVented].
func (b *Vented) Topology() Topology { return TopologyVented }

// Vab returns the net internal volume in m³.
func (b *Vented) Vab() float64 { return b.vab }

// Cab returns the acoustic compliance of the box, Vab/(ρ·c²).
func (b *Vented) Cab() float64 { return b.cab }

// Fb returns the tuning frequency in Hz.
func (b *Vented) Fb() float64 { return b.fb }

// Wb returns the angular tuning frequency ωb = 2π·fb.
func (b *Vented) Wb() float64 { return b.wb }

// Tb returns the time constant Tb = 1/ωb.
func (b *Vented) Tb() float64 { return b.tb }

// Ql returns the leakage loss quality factor.
func (b *Vented) Ql() float64 { return b.ql }

// SetVab sets the box volume and re-derives Cab.
func (b *Vented) SetVab(vab float64) error {
	if !core.IsFinite(vab) || vab < 0 {
		return core.NewDomainError("enclosure.SetVab", "Cab = Vab/(ρ·c²)", core.In("Vab", vab))
	}

	b.vab = vab
	b.cab = core.Compliance(vab)

	return nil
}

// SetFb sets the tuning frequency and re-derives ωb and Tb.
func (b *Vented) SetFb(fb float64) error {
	if !core.IsFinite(fb) || fb <= 0 {
		return core.NewDomainError("enclosure.SetFb", "Tb = 1/(2π·fb)", core.In("fb", fb))
	}

	wb := 2 * math.Pi * fb
	b.fb = fb
	b.wb = wb
	b.tb = 1 / wb

	return nil
}

// SetQl sets the leakage losses. Non-positive values are accepted here
// and rejected by the response calculation, where they break the model.
func (b *Vented) SetQl(ql float64) error {
	if !core.IsFinite(ql) {
		return core.NewDomainError("enclosure.SetQl", "Ql", core.In("Ql", ql))
	}

	b.ql = ql

	return nil
}
