// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrInvalidOrder  = errors.New("filter order must be positive")
	ErrInvalidCutoff = errors.New("normalized cutoff must be in (0, 1)")
	ErrInvalidCoeffs = errors.New("invalid filter coefficients")
)
