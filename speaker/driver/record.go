package driver

import "fmt"

// Record is the persisted form of a driver. Fields are declared in the
// byte order of their JSON keys so that encoding/json writes them sorted,
// the same layout as catalogs written by earlier versions.
type Record struct {
	Mms          float64 `json:"Mms"`
	Qes          float64 `json:"Qes"`
	Qts          float64 `json:"Qts"`
	Sd           float64 `json:"Sd"`
	Vas          float64 `json:"Vas"`
	Diameter     float64 `json:"diameter"`
	Fs           float64 `json:"fs"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Power        float64 `json:"power"`
	Weight       float64 `json:"weight"`
	Xmax         float64 `json:"xmax"`
}

// Record returns the persisted form of d.
func (d *Driver) Record() Record {
	return Record{
		Mms:          d.Mms,
		Qes:          d.Qes,
		Qts:          d.Qts,
		Sd:           d.Sd,
		Vas:          d.vas,
		Diameter:     d.Diameter,
		Fs:           d.fs,
		Manufacturer: d.manufacturer,
		Model:        d.model,
		Power:        d.Power,
		Weight:       d.Weight,
		Xmax:         d.Xmax,
	}
}

// FromRecord builds a driver from its persisted form.
func FromRecord(r Record) (*Driver, error) {
	d := New(r.Manufacturer, r.Model)
	d.Diameter = r.Diameter
	d.Weight = r.Weight
	d.Power = r.Power
	d.Qts = r.Qts
	d.Qes = r.Qes
	d.Sd = r.Sd
	d.Mms = r.Mms
	d.Xmax = r.Xmax

	if err := d.SetFs(r.Fs); err != nil {
		return nil, fmt.Errorf("driver %q: %w", d.String(), err)
	}

	if err := d.SetVas(r.Vas); err != nil {
		return nil, fmt.Errorf("driver %q: %w", d.String(), err)
	}

	return d, nil
}
