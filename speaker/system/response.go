package system

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-speaker/speaker/core"
)

// DisplacementPoints is the default grid size of [Speaker.Displacement].
const DisplacementPoints = 50

// Response is a frequency response sampled on a logarithmic grid.
type Response struct {
	Freqs       []float64 // Hz, ascending
	MagnitudeDB []float64 // 20·log10|H|
	Phase       []float64 // radians
}

// Curve is a sampled real-valued function, such as the cone displacement
// over frequency or the step response over time.
type Curve struct {
	X []float64
	Y []float64
}

// angularGrid returns n angular frequencies log-spaced from 2π·fmin to
// 2π·fmax.
func angularGrid(cfg core.EvalConfig) []float64 {
	return floats.LogSpan(make([]float64, cfg.Points),
		core.AngularFrequency(cfg.FMin), core.AngularFrequency(cfg.FMax))
}

// FrequencyResponse evaluates H(jω) over the configured range, by default
// 100 points from 20 Hz to 300 Hz.
func (s *Speaker) FrequencyResponse(opts ...core.EvalOption) (Response, error) {
	const op = "system.FrequencyResponse"

	cfg := core.ApplyEvalOptions(core.DefaultEvalConfig(), opts...)
	if err := cfg.ValidateRange(op); err != nil {
		return Response{}, err
	}

	w := angularGrid(cfg)
	n := len(w)

	re := make([]float64, n)
	im := make([]float64, n)
	resp := Response{
		Freqs:       make([]float64, n),
		MagnitudeDB: make([]float64, n),
		Phase:       make([]float64, n),
	}

	for i, wi := range w {
		h := s.Transfer(wi)
		re[i], im[i] = real(h), imag(h)
		resp.Freqs[i] = wi / (2 * math.Pi)
		resp.Phase[i] = cmplx.Phase(h)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	for i, m := range mag {
		db := core.LinearToDB(m)
		if !core.IsFinite(db) || !core.IsFinite(resp.Phase[i]) {
			return Response{}, core.NewDomainError(op, "20·log10|H(jω)|",
				core.In("f", resp.Freqs[i]), core.In("|H|", m))
		}

		resp.MagnitudeDB[i] = db
	}

	return resp, nil
}

// Displacement evaluates the cone displacement function
// (Tb²s² + (Tb/Ql)s + 1)/A(s) and returns the magnitude of its real part
// over frequency. The default grid is 50 points from 20 Hz to 300 Hz.
func (s *Speaker) Displacement(opts ...core.EvalOption) (Curve, error) {
	const op = "system.Displacement"

	base := core.DefaultEvalConfig()
	base.Points = DisplacementPoints

	cfg := core.ApplyEvalOptions(base, opts...)
	if err := cfg.ValidateRange(op); err != nil {
		return Curve{}, err
	}

	tb, ql := s.box.Tb(), s.box.Ql()
	num := []float64{0, 0, tb * tb, tb / ql, 1}

	w := angularGrid(cfg)
	c := Curve{X: make([]float64, len(w)), Y: make([]float64, len(w))}

	for i, wi := range w {
		c.X[i] = wi / (2 * math.Pi)
		c.Y[i] = math.Abs(real(s.transferWith(num, wi)))

		if !core.IsFinite(c.Y[i]) {
			return Curve{}, core.NewDomainError(op, "Re(X(jω))", core.In("f", c.X[i]))
		}
	}

	return c, nil
}

// settleConstants is the number of slowest-pole time constants a step
// response spans.
const settleConstants = 7

// StepResponse simulates the response to a unit step applied at t = 0.
// The high-pass passes the step edge unattenuated, so the curve starts at
// the pass-band gain of one and decays towards zero. The default is 200
// samples spanning seven time constants of the slowest pole.
func (s *Speaker) StepResponse(opts ...core.EvalOption) (Curve, error) {
	const op = "system.StepResponse"

	cfg := core.ApplyEvalOptions(core.DefaultEvalConfig(), opts...)
	if err := cfg.ValidateSamples(op); err != nil {
		return Curve{}, err
	}

	// Work in normalized time τ = t/T0 so the state matrix is well scaled.
	den := s.normalized()

	var bn [Order + 1]float64
	for k := range bn {
		bn[k] = s.num[k] / math.Pow(s.t0, float64(Order-k))
	}

	d := bn[0]

	var c [Order]float64
	for k := range c {
		c[k] = bn[k+1] - d*den[k+1]
	}

	poles, err := s.Poles()
	if err != nil {
		return Curve{}, err
	}

	slowest := math.Inf(1)
	for _, p := range poles {
		if r := math.Abs(real(p)); r > 0 && r < slowest {
			slowest = r
		}
	}

	duration := 1.0
	if !math.IsInf(slowest, 1) {
		duration = settleConstants / slowest
	}

	n := cfg.Samples
	dtau := duration / s.t0 / float64(n-1)

	phi, gamma := discretize(den, dtau)

	curve := Curve{
		X: floats.Span(make([]float64, n), 0, duration),
		Y: make([]float64, n),
	}

	var x, next [Order]float64
	for k := range n {
		y := d
		for i := range Order {
			y += c[i] * x[i]
		}

		curve.Y[k] = y

		for i := range Order {
			v := gamma[i]
			for j := range Order {
				v += phi[i][j] * x[j]
			}

			next[i] = v
		}

		x = next
	}

	if !core.AllFinite(curve.Y...) {
		return Curve{}, core.NewDomainError(op, "x[k+1] = Φ·x[k] + Γ", core.In("dt", dtau*s.t0))
	}

	return curve, nil
}

// discretize returns the zero-order-hold state transition Φ = e^(A·dt) and
// input matrix Γ = ∫e^(A·τ)dτ·B for the controllable canonical form of the
// monic denominator den. Both come out of one matrix exponential of the
// augmented matrix [[A·dt, B·dt], [0, 0]].
func discretize(den [Order + 1]float64, dt float64) ([Order][Order]float64, [Order]float64) {
	m := mat.NewDense(Order+1, Order+1, nil)

	for j := range Order {
		m.Set(0, j, -den[j+1]*dt)
	}

	for i := 1; i < Order; i++ {
		m.Set(i, i-1, dt)
	}

	m.Set(0, Order, dt)

	var e mat.Dense
	e.Exp(m)

	var (
		phi   [Order][Order]float64
		gamma [Order]float64
	)

	for i := range Order {
		for j := range Order {
			phi[i][j] = e.At(i, j)
		}

		gamma[i] = e.At(i, Order)
	}

	return phi, gamma
}
