package transient

import (
	"errors"
	"math"
)

// Errors returned by the analyzer.
var (
	ErrEmptyStep         = errors.New("transient: step response is empty")
	ErrInvalidSampleRate = errors.New("transient: sample rate must be positive")
	ErrInvalidTolerance  = errors.New("transient: tolerance must be positive")
)

// DefaultTolerance is the settling band as a fraction of the initial
// level.
const DefaultTolerance = 0.02

// Metrics holds step response figures. Times are in seconds.
type Metrics struct {
	Initial         float64
	Final           float64
	Peak            float64 // signed value of the largest absolute excursion
	PeakIndex       int
	Undershoot      float64 // most negative value, zero if none
	UndershootIndex int
	SettlingTime    float64
	DecayTime       float64 // zero if the response does not decay 35 dB
	CenterTime      float64
}

// Analyzer computes step response metrics.
type Analyzer struct {
	SampleRate float64
	// Tolerance is the settling band relative to |Initial|. Zero selects
	// DefaultTolerance.
	Tolerance float64
}

// NewAnalyzer creates an analyzer for responses sampled at sampleRate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze computes all metrics of step.
func (a *Analyzer) Analyze(step []float64) (Metrics, error) {
	if len(step) == 0 {
		return Metrics{}, ErrEmptyStep
	}

	if !(a.SampleRate > 0) || math.IsInf(a.SampleRate, 0) {
		return Metrics{}, ErrInvalidSampleRate
	}

	tol := a.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	if !(tol > 0) {
		return Metrics{}, ErrInvalidTolerance
	}

	m := Metrics{
		Initial: step[0],
		Final:   step[len(step)-1],
	}

	m.PeakIndex = findPeak(step)
	m.Peak = step[m.PeakIndex]

	for i, v := range step {
		if v < m.Undershoot {
			m.Undershoot = v
			m.UndershootIndex = i
		}
	}

	m.SettlingTime = a.settlingTime(step, m.Final, tol*math.Abs(m.Initial))
	m.DecayTime = a.decayTime(energyDecay(step), -5, -35)
	m.CenterTime = a.centerTime(step)

	return m, nil
}

// settlingTime returns the time of the first sample after the last
// excursion outside final±band.
func (a *Analyzer) settlingTime(step []float64, final, band float64) float64 {
	for i := len(step) - 1; i >= 0; i-- {
		if math.Abs(step[i]-final) > band {
			return float64(i+1) / a.SampleRate
		}
	}

	return 0
}

// energyDecay is the backward integral of the squared response,
// normalized to its total and expressed in dB.
func energyDecay(step []float64) []float64 {
	n := len(step)
	result := make([]float64, n)

	var cumSum float64
	for i := n - 1; i >= 0; i-- {
		cumSum += step[i] * step[i]
		result[i] = cumSum
	}

	total := result[0]
	if total <= 0 {
		return result
	}

	for i := range result {
		ratio := result[i] / total
		if ratio <= 0 {
			result[i] = -200
		} else {
			result[i] = 10 * math.Log10(ratio)
		}
	}

	return result
}

// decayTime fits a line to the energy decay between startDB and endDB and
// extrapolates it to -60 dB.
func (a *Analyzer) decayTime(decay []float64, startDB, endDB float64) float64 {
	startIdx, endIdx := -1, -1

	for i, v := range decay {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}

		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx-startIdx < 1 {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64

	for i := startIdx; i <= endIdx; i++ {
		x := float64(i - startIdx)
		y := decay[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	nf := float64(endIdx - startIdx + 1)

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	// dB per sample
	slope := (nf*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func (a *Analyzer) centerTime(step []float64) float64 {
	var num, den float64

	for i, v := range step {
		e := v * v
		num += float64(i) / a.SampleRate * e
		den += e
	}

	if den <= 0 {
		return 0
	}

	return num / den
}

// findPeak returns the index of the absolute maximum.
func findPeak(step []float64) int {
	peakIdx := 0
	peakVal := -1.0

	for i, v := range step {
		if av := math.Abs(v); av > peakVal {
			peakVal = av
			peakIdx = i
		}
	}

	return peakIdx
}
