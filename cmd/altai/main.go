// Command altai designs vented loudspeaker boxes.
//
// Usage:
//
//	altai [flags]
//
// The driver comes from a driver database (-db, -manufacturer, -model) or
// from the Thiele/Small flags. It prints the design figures of the
// alignment and, on request, the frequency and step responses.
//
// Examples:
//
//	altai -fs 35 -vas 110 -qts 0.24 -vab 90 -fb 43
//	altai -db drivers.json -list
//	altai -db drivers.json -manufacturer Acme -model W12 -vab 60 -fb 38 -response
//	altai -db drivers.json -add -manufacturer Acme -model W12 -fs 28 -vas 140 -diameter 12 -weight 6.5 -power 400
//	altai -step -samples 400
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	db           string
	manufacturer string
	model        string
	list         bool
	add          bool

	fs   float64
	vas  float64 // l
	qts  float64
	qes  float64
	sd   float64 // cm²
	xmax float64 // mm

	diameter float64 // in
	weight   float64 // kg
	power    float64 // W

	vab float64 // l
	fb  float64
	ql  float64

	radius float64 // mm
	length float64 // mm

	fmin       float64
	fmax       float64
	points     int
	samples    int
	sampleRate float64
	response   bool
	step       bool

	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fset := flag.NewFlagSet("altai", flag.ContinueOnError)
	fset.SetOutput(stderr)

	fset.StringVar(&o.db, "db", "", "driver database file (JSON)")
	fset.StringVar(&o.manufacturer, "manufacturer", "", "driver manufacturer")
	fset.StringVar(&o.model, "model", "", "driver model")
	fset.BoolVar(&o.list, "list", false, "list the drivers in the database")
	fset.BoolVar(&o.add, "add", false, "add the driver given by the flags to the database")

	fset.Float64Var(&o.fs, "fs", 35, "driver resonance frequency in Hz")
	fset.Float64Var(&o.vas, "vas", 110, "driver equivalent compliance volume in l")
	fset.Float64Var(&o.qts, "qts", 0.24, "driver total Q")
	fset.Float64Var(&o.qes, "qes", 0.25, "driver electrical Q")
	fset.Float64Var(&o.sd, "sd", 855, "diaphragm area in cm²")
	fset.Float64Var(&o.xmax, "xmax", 13.5, "linear excursion in mm")
	fset.Float64Var(&o.diameter, "diameter", 0, "nominal driver diameter in inches (-add)")
	fset.Float64Var(&o.weight, "weight", 0, "driver weight in kg (-add)")
	fset.Float64Var(&o.power, "power", 0, "driver power handling in W (-add)")

	fset.Float64Var(&o.vab, "vab", 90, "box volume in l")
	fset.Float64Var(&o.fb, "fb", 43, "box tuning frequency in Hz")
	fset.Float64Var(&o.ql, "ql", 20, "box leakage Q")

	fset.Float64Var(&o.radius, "radius", 50, "vent radius in mm")
	fset.Float64Var(&o.length, "length", 0, "vent length in mm (overrides -radius)")

	fset.Float64Var(&o.fmin, "fmin", 20, "lowest response frequency in Hz")
	fset.Float64Var(&o.fmax, "fmax", 300, "highest response frequency in Hz")
	fset.IntVar(&o.points, "points", 100, "number of response points")
	fset.IntVar(&o.samples, "samples", 200, "number of step response samples")
	fset.Float64Var(&o.sampleRate, "samplerate", 0, "add the digital emulation at this rate to the response table")
	fset.BoolVar(&o.response, "response", false, "print the frequency response")
	fset.BoolVar(&o.step, "step", false, "print the step response")

	fset.BoolVar(&o.verbose, "v", false, "log computed figures")

	fset.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: altai [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Designs a vented loudspeaker box and prints its figures.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fset.PrintDefaults()
	}

	if err := fset.Parse(args); err != nil {
		return o, err
	}

	if fset.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}

	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
