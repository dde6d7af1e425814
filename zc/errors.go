// SPDX-License-Identifier: EPL-2.0

package zc

import "errors"

var (
	// ErrFormat marks structurally invalid input. Fatal.
	ErrFormat = errors.New("format error")

	// ErrConfig marks an unsupported request or input shape. Fatal.
	ErrConfig = errors.New("config error")

	// ErrMetadata marks a metadata field that was dropped. Recovered.
	ErrMetadata = errors.New("metadata error")

	// ErrRange marks a value beyond a nominal limit. Recovered.
	ErrRange = errors.New("range warning")

	ErrLengthMismatch = errors.New("times, freqs and amplitudes differ in length")
	ErrNotMonotonic   = errors.New("times are not non-decreasing")
)
