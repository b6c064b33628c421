// Package transient derives time-domain figures from a sampled step
// response.
//
//   - Initial and Final: first and last sample
//   - Peak: largest absolute excursion and its index
//   - Undershoot: most negative value
//   - SettlingTime: time after which the response stays within the
//     tolerance band around its final value
//   - DecayTime: ring-down time to -60 dB, extrapolated from the -5 to
//     -35 dB slope of the backward-integrated energy
//   - CenterTime: temporal energy centroid
//
// # Usage
//
//	step, _ := speaker.StepResponse()
//	fs := float64(len(step.X)-1) / step.X[len(step.X)-1]
//	m, err := transient.NewAnalyzer(fs).Analyze(step.Y)
package transient
