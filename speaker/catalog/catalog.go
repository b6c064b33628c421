// Package catalog stores drivers and reads and writes driver databases.
//
// A database file is a JSON array of driver records (see
// [driver.Record]) written with sorted keys, four-space indentation and a
// trailing newline. Names are written literally, without HTML escaping.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cwbudde/algo-speaker/speaker/core"
	"github.com/cwbudde/algo-speaker/speaker/driver"
)

const indent = "    "

// Catalog is an ordered collection of drivers. The set of manufacturers
// is maintained as drivers are added.
type Catalog struct {
	drivers       []*driver.Driver
	manufacturers map[string]struct{}
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{manufacturers: make(map[string]struct{})}
}

// Add appends d to the catalog.
func (c *Catalog) Add(d *driver.Driver) error {
	if d == nil {
		return core.NewValidationError("catalog.Add", "driver", 0, "must not be nil")
	}

	c.drivers = append(c.drivers, d)
	c.manufacturers[d.Manufacturer()] = struct{}{}

	return nil
}

// Len returns the number of drivers.
func (c *Catalog) Len() int { return len(c.drivers) }

// At returns the i-th driver in insertion order.
func (c *Catalog) At(i int) *driver.Driver { return c.drivers[i] }

// Drivers returns the drivers in insertion order. The slice is a copy.
func (c *Catalog) Drivers() []*driver.Driver { return slices.Clone(c.drivers) }

// Manufacturers returns the distinct manufacturers, sorted.
func (c *Catalog) Manufacturers() []string {
	out := make([]string, 0, len(c.manufacturers))
	for m := range c.manufacturers {
		out = append(out, m)
	}

	slices.Sort(out)

	return out
}

// Models returns the model names of one manufacturer in insertion order.
func (c *Catalog) Models(manufacturer string) []string {
	var out []string

	for _, d := range c.drivers {
		if d.Manufacturer() == manufacturer {
			out = append(out, d.Model())
		}
	}

	return out
}

// Find returns the first driver matching manufacturer and model.
func (c *Catalog) Find(manufacturer, model string) (*driver.Driver, bool) {
	for _, d := range c.drivers {
		if d.Manufacturer() == manufacturer && d.Model() == model {
			return d, true
		}
	}

	return nil, false
}

// Read decodes a driver database from r.
func Read(r io.Reader) (*Catalog, error) {
	var records []driver.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := New()

	for i, rec := range records {
		d, err := driver.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("catalog: record %d: %w", i, err)
		}

		if err := c.Add(d); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Write encodes the catalog to w.
func (c *Catalog) Write(w io.Writer) error {
	records := make([]driver.Record, len(c.drivers))
	for i, d := range c.drivers {
		records[i] = d.Record()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("catalog: write: %w", err)
	}

	return nil
}

// Load reads a driver database file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Save writes the catalog to path, replacing an existing file.
func (c *Catalog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := c.Write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
