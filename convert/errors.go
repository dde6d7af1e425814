// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrUnsupportedDivRatio = errors.New("unsupported divratio")
	ErrNegativeCutoff      = errors.New("high-pass cutoff must not be negative")
	ErrNegativeThreshold   = errors.New("noise gate threshold must not be negative")
	ErrGateNeedsAmplitudes = errors.New("noise gate requires amplitude extraction")
	ErrMultiChannel        = errors.New("only mono audio can be converted")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
)
