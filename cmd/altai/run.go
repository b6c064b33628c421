package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/cwbudde/algo-speaker/speaker/catalog"
	"github.com/cwbudde/algo-speaker/speaker/driver"
	"github.com/cwbudde/algo-speaker/speaker/enclosure"
	"github.com/cwbudde/algo-speaker/speaker/system"
)

var errNoDatabase = errors.New("-list and -add require -db")

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, opts.verbose)

	var cat *catalog.Catalog

	if opts.db != "" {
		cat, err = catalog.Load(opts.db)

		switch {
		case err == nil:
			logger.Debug("catalog loaded", "path", opts.db, "drivers", cat.Len())
		case opts.add && errors.Is(err, fs.ErrNotExist):
			cat = catalog.New()
		default:
			return err
		}
	}

	if opts.list || opts.add {
		if cat == nil {
			return errNoDatabase
		}

		if opts.list {
			return printCatalog(stdout, cat)
		}

		return addDriver(cat, opts, logger)
	}

	d, err := resolveDriver(cat, opts)
	if err != nil {
		return err
	}

	box, err := enclosure.NewVented(opts.vab/1000, opts.fb, opts.ql)
	if err != nil {
		return err
	}

	spk, err := system.NewVented(d, box)
	if err != nil {
		return err
	}

	logger.Debug("speaker", "driver", d.String(), "f0", spk.F0(), "h", spk.TuningRatio(), "alpha", spk.ComplianceRatio())

	if err := printDesign(stdout, spk, opts, logger); err != nil {
		return err
	}

	if opts.response {
		if err := printResponse(stdout, spk, opts); err != nil {
			return err
		}
	}

	if opts.step {
		if err := printStep(stdout, spk, opts, logger); err != nil {
			return err
		}
	}

	return nil
}

// resolveDriver looks the driver up in the catalog when a model is named,
// otherwise builds it from the parameter flags.
func resolveDriver(cat *catalog.Catalog, opts options) (*driver.Driver, error) {
	if cat != nil && opts.model != "" {
		d, ok := cat.Find(opts.manufacturer, opts.model)
		if !ok {
			return nil, fmt.Errorf("driver %q %q not in %s", opts.manufacturer, opts.model, opts.db)
		}

		return d, nil
	}

	return driverFromFlags(opts)
}

func driverFromFlags(opts options) (*driver.Driver, error) {
	d := driver.New(opts.manufacturer, opts.model)
	if err := d.SetFs(opts.fs); err != nil {
		return nil, err
	}

	if err := d.SetVas(opts.vas / 1000); err != nil {
		return nil, err
	}

	d.Qts = opts.qts
	d.Qes = opts.qes
	d.Sd = opts.sd / 1e4
	d.Xmax = opts.xmax / 1000
	d.Diameter = opts.diameter
	d.Weight = opts.weight
	d.Power = opts.power

	return d, nil
}

func addDriver(cat *catalog.Catalog, opts options, logger *slog.Logger) error {
	if opts.manufacturer == "" || opts.model == "" {
		return errors.New("-add requires -manufacturer and -model")
	}

	if _, ok := cat.Find(opts.manufacturer, opts.model); ok {
		return fmt.Errorf("driver %q %q already in %s", opts.manufacturer, opts.model, opts.db)
	}

	d, err := driverFromFlags(opts)
	if err != nil {
		return err
	}

	if err := cat.Add(d); err != nil {
		return err
	}

	if err := cat.Save(opts.db); err != nil {
		return err
	}

	logger.Info("driver added", "driver", d.String(), "path", opts.db, "drivers", cat.Len())

	return nil
}
