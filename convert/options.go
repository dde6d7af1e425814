// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ik5/batzc/zc"
)

// disabledEpsilon is how close to zero a cutoff or threshold must be to
// count as switched off.
const disabledEpsilon = 1e-8

// Options parametrizes the conversion pipeline.
type Options struct {
	// DivRatio is the frequency division ratio, one of zc.DivRatios.
	DivRatio int

	// HighPassKHz is the filter cutoff in kHz. Zero disables the
	// Butterworth stage and subtracts the DC offset instead.
	HighPassKHz float64

	// ThresholdFactor scales the RMS amplitude below which dots are
	// dropped. Zero disables the noise gate.
	ThresholdFactor float64

	Interpolation bool

	// BrickwallHPF drops every dot at or below the cutoff after
	// extraction, whether or not the filter stage ran.
	BrickwallHPF bool

	// NoAmplitudes skips amplitude extraction entirely.
	NoAmplitudes bool

	Logger *slog.Logger
}

// DefaultOptions are the batch converter defaults.
func DefaultOptions() Options {
	return Options{
		DivRatio:        8,
		HighPassKHz:     20,
		ThresholdFactor: 1.0,
		Interpolation:   false,
		BrickwallHPF:    true,
	}
}

func disabled(x float64) bool { return math.Abs(x) <= disabledEpsilon }

// CutoffHz is the high-pass cutoff in Hz, or 0 when disabled.
func (o Options) CutoffHz() float64 {
	if disabled(o.HighPassKHz) {
		return 0
	}
	return o.HighPassKHz * 1000
}

// GateEnabled reports whether the noise gate stage runs.
func (o Options) GateEnabled() bool { return !disabled(o.ThresholdFactor) }

// Validate rejects option sets the pipeline cannot honor. Every error
// matches zc.ErrConfig.
func (o Options) Validate() error {
	if !zc.ValidDivRatio(o.DivRatio) {
		return fmt.Errorf("%w: %w: %d (want one of %v)", zc.ErrConfig, ErrUnsupportedDivRatio, o.DivRatio, zc.DivRatios)
	}
	if o.HighPassKHz < 0 && !disabled(o.HighPassKHz) {
		return fmt.Errorf("%w: %w: %g kHz", zc.ErrConfig, ErrNegativeCutoff, o.HighPassKHz)
	}
	if o.ThresholdFactor < 0 && !disabled(o.ThresholdFactor) {
		return fmt.Errorf("%w: %w: %g", zc.ErrConfig, ErrNegativeThreshold, o.ThresholdFactor)
	}
	if o.GateEnabled() && o.NoAmplitudes {
		return fmt.Errorf("%w: %w", zc.ErrConfig, ErrGateNeedsAmplitudes)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
