// SPDX-License-Identifier: EPL-2.0

package zc

import (
	"fmt"
	"time"
)

// MaxDots is the nominal dot capacity of an Anabat sequence file.
const MaxDots = 16384

// DivRatios lists the supported frequency division ratios.
var DivRatios = []int{4, 8, 10, 16, 32}

// ValidDivRatio reports whether d is one of DivRatios.
func ValidDivRatio(d int) bool {
	for _, v := range DivRatios {
		if d == v {
			return true
		}
	}
	return false
}

// Metadata describes where a ZeroCross came from.
type Metadata struct {
	Tape     string
	Date     string
	Location string
	Species  []string
	Spec     string
	Note1    string
	Note2    string
	DivRatio int
	ID       string
	GPS      string

	// Timestamp is the zero time when the source carries no usable one.
	Timestamp time.Time

	Path     string
	Filename string
}

// HasTimestamp reports whether a precise timestamp was recovered.
func (m Metadata) HasTimestamp() bool { return !m.Timestamp.IsZero() }

// ZeroCross is a zero-crossing signal. Times, Freqs and Amplitudes are
// index aligned; Amplitudes is nil when the source has no amplitude data.
type ZeroCross struct {
	Times      []float64
	Freqs      []float64
	Amplitudes []float64
	Metadata   Metadata

	// Diagnostics holds recovered ErrMetadata and ErrRange conditions.
	Diagnostics []error
}

func (z *ZeroCross) Len() int { return len(z.Times) }

func (z *ZeroCross) SupportsAmplitude() bool { return z.Amplitudes != nil }

// Duration is the time of the last dot, or 0 for an empty signal.
func (z *ZeroCross) Duration() float64 {
	if len(z.Times) == 0 {
		return 0
	}
	return z.Times[len(z.Times)-1]
}

// Slice returns a read-only view over dots [i, j). The view shares storage
// and metadata with z.
func (z *ZeroCross) Slice(i, j int) *ZeroCross {
	v := &ZeroCross{
		Times:    z.Times[i:j:j],
		Freqs:    z.Freqs[i:j:j],
		Metadata: z.Metadata,
	}
	if z.SupportsAmplitude() {
		v.Amplitudes = z.Amplitudes[i:j:j]
	}
	return v
}

// Validate checks the record invariants.
func (z *ZeroCross) Validate() error {
	if len(z.Times) != len(z.Freqs) {
		return fmt.Errorf("%w: %d times, %d freqs", ErrLengthMismatch, len(z.Times), len(z.Freqs))
	}
	if z.Amplitudes != nil && len(z.Amplitudes) != len(z.Freqs) {
		return fmt.Errorf("%w: %d freqs, %d amplitudes", ErrLengthMismatch, len(z.Freqs), len(z.Amplitudes))
	}
	for i := 1; i < len(z.Times); i++ {
		if z.Times[i] < z.Times[i-1] {
			return fmt.Errorf("%w: index %d", ErrNotMonotonic, i)
		}
	}
	if z.Metadata.DivRatio != 0 && !ValidDivRatio(z.Metadata.DivRatio) {
		return fmt.Errorf("%w: divratio %d", ErrConfig, z.Metadata.DivRatio)
	}
	return nil
}

// Warn appends a recovered condition to Diagnostics.
func (z *ZeroCross) Warn(err error) {
	z.Diagnostics = append(z.Diagnostics, err)
}
