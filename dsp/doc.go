// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the IIR filtering used to condition audio before zero
// crossing detection: a digital Butterworth high-pass design, a direct form
// II transposed filter with initial state, and forward-backward (zero
// phase) filtering.
//
// Coefficients follow the usual transfer function convention, b for the
// numerator and a for the denominator, with frequencies normalized so that
// 1 is the Nyquist frequency.
package dsp
