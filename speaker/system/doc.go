// Package system combines a driver and an enclosure into a loudspeaker
// system and evaluates it.
//
// A [Speaker] is the fourth-order high-pass transfer function of a vented
// box (Thiele/Small model). From it the package derives the frequency
// response, the cone displacement curve, the step response and the
// design figures of the alignment: the -3 dB cutoff, the reference
// efficiency and the displacement-limited output. [Speaker.Digital]
// turns the analog model into a biquad cascade for sample-based
// processing.
//
// Coefficient slices are ordered highest power of s first.
package system
