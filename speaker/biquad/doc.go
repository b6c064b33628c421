// Package biquad runs second-order IIR sections.
//
// A [Section] processes one second-order section given by [Coefficients]
// in Direct Form II Transposed. A [Chain] cascades sections behind an input
// gain; the digital emulation of a fourth-order speaker model is a two
// section chain.
package biquad
