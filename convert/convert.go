// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/ik5/batzc/audio"
	"github.com/ik5/batzc/zc"
)

var timestampPattern = regexp.MustCompile(`(\d{8}_\d{6})`)

const timestampLayout = "20060102_150405"

// TimestampFromName recovers a recording time from a file name carrying
// YYYYMMDD_HHMMSS, e.g. "SITE1_20170712_203645.wav". ok is false when the
// name has no such stamp or it is not a valid date.
func TimestampFromName(name string) (time.Time, bool) {
	m := timestampPattern.FindString(filepath.Base(name))
	if m == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(timestampLayout, m)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Convert drains src and runs the pipeline over its samples. name is the
// source file name, used for the timestamp and metadata.
func Convert(src audio.Source, name string, opts Options) (*zc.ZeroCross, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ch := src.Channels(); ch != 1 {
		return nil, fmt.Errorf("%w: %w: %d channels", zc.ErrConfig, ErrMultiChannel, ch)
	}

	samples, err := audio.ReadAll(src, src.BufSize())
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	return ConvertSamples(samples, src.SampleRate(), name, opts)
}

// ConvertSamples runs the pipeline over mono 16-bit samples declared at
// rate Hz. samples is not modified.
func ConvertSamples(samples []int16, rate int, name string, opts Options) (*zc.ZeroCross, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %w: %d", zc.ErrConfig, ErrInvalidSampleRate, rate)
	}

	log := opts.logger().With("name", filepath.Base(name))
	defer timed(log, "convert")()

	rate = normalizeRate(rate)

	samples, vendor := stripVendorMetadata(samples)
	if vendor != "" {
		log.Debug("stripped vendor metadata", "signature", vendor, "samples", len(samples))
	}

	var signal []float64
	cutoff := opts.CutoffHz()
	if cutoff > 0 {
		done := timed(log, "high-pass")
		filtered, err := highPass(samples, rate, cutoff)
		done()
		if err != nil {
			return nil, err
		}
		signal = filtered
	} else {
		signal = removeDCOffset(samples)
	}

	done := timed(log, "zero-cross")
	times, freqs, amps := ZeroCross(signal, rate, opts)
	done()

	if opts.BrickwallHPF {
		before := len(freqs)
		times, freqs, amps = zc.Compact(times, freqs, amps, func(i int) bool { return freqs[i] > cutoff })
		log.Debug("brick-wall high-pass", "cutoff_hz", cutoff, "dropped", before-len(freqs))
	}

	if opts.GateEnabled() {
		before := len(freqs)
		times, freqs, amps = NoiseGate(times, freqs, amps, opts.ThresholdFactor)
		log.Debug("noise gate", "factor", opts.ThresholdFactor, "dropped", before-len(freqs))
	}

	z := &zc.ZeroCross{
		Times:      times,
		Freqs:      freqs,
		Amplitudes: amps,
		Metadata: zc.Metadata{
			DivRatio: opts.DivRatio,
		},
	}
	if name != "" {
		z.Metadata.Filename = filepath.Base(name)
	}
	if ts, ok := TimestampFromName(name); ok {
		z.Metadata.Timestamp = ts
	}

	if z.Len() > zc.MaxDots {
		err := fmt.Errorf("%w: %d dots exceed the Anabat capacity of %d", zc.ErrRange, z.Len(), zc.MaxDots)
		log.Warn("dot count", "error", err)
		z.Warn(err)
	}

	lo, hi := zc.MinMax(freqs)
	log.Debug("converted", "rate", rate, "dots", z.Len(), "min_khz", lo/1000, "max_khz", hi/1000)

	return z, nil
}
