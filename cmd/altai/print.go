package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-speaker/measure/transient"
	"github.com/cwbudde/algo-speaker/speaker/catalog"
	"github.com/cwbudde/algo-speaker/speaker/core"
	"github.com/cwbudde/algo-speaker/speaker/system"
	"github.com/cwbudde/algo-speaker/speaker/vent"
)

type table struct {
	tw  *tabwriter.Writer
	err error
}

func newTable(w io.Writer) *table {
	return &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t *table) row(format string, args ...any) {
	if t.err != nil {
		return
	}

	_, t.err = fmt.Fprintf(t.tw, format+"\n", args...)
}

func (t *table) flush() error {
	if t.err != nil {
		return fmt.Errorf("write output: %w", t.err)
	}

	if err := t.tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func printCatalog(w io.Writer, cat *catalog.Catalog) error {
	t := newTable(w)
	t.row("Manufacturer\tModel\tfs [Hz]\tVas [l]\tQts\tQes")
	t.row("------------\t-----\t-------\t-------\t---\t---")

	for _, m := range cat.Manufacturers() {
		for _, model := range cat.Models(m) {
			d, _ := cat.Find(m, model)
			t.row("%s\t%s\t%.1f\t%.1f\t%.3f\t%.3f", m, model, d.Fs(), d.Vas()*1000, d.Qts, d.Qes)
		}
	}

	return t.flush()
}

func printDesign(w io.Writer, spk *system.Speaker, opts options, logger *slog.Logger) error {
	f3, err := spk.F3()
	if err != nil {
		return err
	}

	eta, err := spk.ReferenceEfficiency()
	if err != nil {
		return err
	}

	out, err := spk.MaxOutput()
	if err != nil {
		return err
	}

	drv := spk.Driver()
	box := spk.Box()

	var dims vent.Dimensions
	if opts.length > 0 {
		dims, err = vent.FromLength(&box, opts.length/1000)
	} else {
		dims, err = vent.FromRadius(&box, opts.radius/1000)
	}

	if err != nil {
		return err
	}

	minArea := vent.MinimumAreaMM2(&drv, &box)

	logger.Debug("design", "f3", f3, "efficiency", eta, "vd", out.VolumeDisplacement,
		"par", out.AcousticPower, "spl", out.SPL)
	logger.Debug("vent", "radius", dims.Radius, "length", dims.Length, "area", dims.Area, "minArea", minArea)

	if dims.Length < 0 {
		logger.Warn("vent radius too small for this tuning", "radius_mm", dims.Radius*1000)
	}

	if dims.Area*1e6 < minArea {
		logger.Warn("vent area below recommended minimum", "area_mm2", dims.Area*1e6, "min_mm2", minArea)
	}

	t := newTable(w)
	t.row("Figure\tValue\tUnit")
	t.row("------\t-----\t----")
	t.row("f0\t%.2f\tHz", spk.F0())
	t.row("f3\t%.2f\tHz", f3)
	t.row("Reference efficiency\t%.3f\t%%", eta*100)
	t.row("Volume displacement\t%.1f\tcm³", out.VolumeDisplacement*1e6)
	t.row("Acoustic power\t%.2f\tW", out.AcousticPower)
	t.row("Max SPL\t%.1f\tdB", out.SPL)
	t.row("Vent radius\t%.1f\tmm", dims.Radius*1000)
	t.row("Vent length\t%.1f\tmm", dims.Length*1000)
	t.row("Vent area\t%.0f\tmm²", dims.Area*1e6)
	t.row("Min vent area\t%.0f\tmm²", minArea)

	return t.flush()
}

func printResponse(w io.Writer, spk *system.Speaker, opts options) error {
	evalOpts := []core.EvalOption{
		core.WithRange(opts.fmin, opts.fmax),
		core.WithPoints(opts.points),
	}

	resp, err := spk.FrequencyResponse(evalOpts...)
	if err != nil {
		return err
	}

	disp, err := spk.Displacement(evalOpts...)
	if err != nil {
		return err
	}

	var filter *system.Filter
	if opts.sampleRate > 0 {
		if filter, err = spk.Digital(opts.sampleRate); err != nil {
			return err
		}
	}

	t := newTable(w)

	if filter != nil {
		t.row("\nf [Hz]\tLevel [dB]\tPhase [°]\tDisplacement\tDigital [dB]")
		t.row("------\t----------\t---------\t------------\t------------")
	} else {
		t.row("\nf [Hz]\tLevel [dB]\tPhase [°]\tDisplacement")
		t.row("------\t----------\t---------\t------------")
	}

	for i, f := range resp.Freqs {
		phase := resp.Phase[i] * 180 / math.Pi
		if filter != nil {
			t.row("%.2f\t%.3f\t%.1f\t%.4f\t%.3f", f, resp.MagnitudeDB[i], phase, disp.Y[i], filter.MagnitudeDB(f))
		} else {
			t.row("%.2f\t%.3f\t%.1f\t%.4f", f, resp.MagnitudeDB[i], phase, disp.Y[i])
		}
	}

	return t.flush()
}

func printStep(w io.Writer, spk *system.Speaker, opts options, logger *slog.Logger) error {
	step, err := spk.StepResponse(core.WithSamples(opts.samples))
	if err != nil {
		return err
	}

	duration := step.X[len(step.X)-1]
	sampleRate := float64(len(step.X)-1) / duration

	m, err := transient.NewAnalyzer(sampleRate).Analyze(step.Y)
	if err != nil {
		return err
	}

	logger.Debug("step", "duration", duration, "undershoot", m.Undershoot,
		"settling", m.SettlingTime, "decay", m.DecayTime)

	t := newTable(w)
	t.row("\nt [ms]\tAmplitude")
	t.row("------\t---------")

	for i, x := range step.X {
		t.row("%.3f\t%.5f", x*1000, step.Y[i])
	}

	t.row("\nUndershoot\t%.4f", m.Undershoot)
	t.row("Settling time [ms]\t%.2f", m.SettlingTime*1000)
	t.row("Decay time [ms]\t%.2f", m.DecayTime*1000)

	return t.flush()
}
