// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/batzc/dsp"
	"github.com/ik5/batzc/utils"
	"github.com/ik5/batzc/zc"
)

const (
	// realTimeRateLimit is the highest rate still treated as 10x time
	// expanded audio.
	realTimeRateLimit = 48000
	timeExpansion     = 10

	filterOrder = 6

	vendorOffset = 0xC4
)

// vendorBlocks are recorder firmwares that write a metadata block into
// the PCM data, keyed by the signature found at vendorOffset.
var vendorBlocks = []struct {
	signature []byte
	skipBytes int
}{
	{[]byte("D500X"), 0x3D4},
	{[]byte("D1000X"), 0xF4},
}

func timed(log *slog.Logger, stage string) func() {
	start := time.Now()
	return func() {
		log.Debug("conversion stage", "stage", stage, "elapsed", time.Since(start))
	}
}

func normalizeRate(rate int) int {
	if rate <= realTimeRateLimit {
		return rate * timeExpansion
	}
	return rate
}

// stripVendorMetadata drops the leading samples holding an embedded
// firmware block. The matched signature is "" when samples are untouched.
func stripVendorMetadata(samples []int16) ([]int16, string) {
	const probe = 6
	first := vendorOffset / 2
	if len(samples) < first+probe/2 {
		return samples, ""
	}

	head := make([]byte, 0, probe)
	for _, s := range samples[first : first+probe/2] {
		head = binary.LittleEndian.AppendUint16(head, uint16(s))
	}

	for _, v := range vendorBlocks {
		if !bytes.HasPrefix(head, v.signature) {
			continue
		}
		skip := v.skipBytes / 2
		if skip > len(samples) {
			skip = len(samples)
		}
		return samples[skip:], string(v.signature)
	}
	return samples, ""
}

// removeDCOffset subtracts the integer part of the signal mean.
func removeDCOffset(samples []int16) []float64 {
	out := utils.Int16sToFloat64s(samples)
	if len(out) == 0 {
		return out
	}
	var sum int64
	for _, s := range samples {
		sum += int64(s)
	}
	offset := float64(sum / int64(len(samples)))
	for i := range out {
		out[i] -= offset
	}
	return out
}

// highPass applies a zero-phase 6th order Butterworth high-pass at
// cutoffHz.
func highPass(samples []int16, rate int, cutoffHz float64) ([]float64, error) {
	b, a, err := dsp.ButterHighPass(filterOrder, cutoffHz/(float64(rate)/2))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", zc.ErrConfig, err)
	}
	out, err := dsp.FiltFilt(b, a, utils.Int16sToFloat64s(samples))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return out, nil
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// crossings returns every divratio-th index i where the sign of
// signal[i+1] differs from that of signal[i].
func crossings(signal []float64, divratio int) []int {
	divratio = max(divratio, 1)
	var idx []int
	n := 0
	for i := 0; i+1 < len(signal); i++ {
		if sign(signal[i]) == sign(signal[i+1]) {
			continue
		}
		if n%divratio == 0 {
			idx = append(idx, i)
		}
		n++
	}
	return idx
}

// amplitudes is the mean absolute sample value of the span ending at each
// crossing. The first span starts at sample 0. An all-zero or empty span
// has amplitude 0.
func amplitudes(signal []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	prev := 0
	for k, c := range idx {
		chunk := signal[prev:c]
		prev = c

		sum := 0.0
		for _, s := range chunk {
			if s < 0 {
				sum -= s
			} else {
				sum += s
			}
		}
		if sum != 0 {
			out[k] = sum / float64(len(chunk))
		}
	}
	return out
}

// interpolate refines each crossing index by linear interpolation between
// the straddling samples, truncated to integers first.
func interpolate(signal []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		a := int64(signal[i])
		b := int64(signal[i+1])
		if a == b {
			out[k] = float64(i)
			continue
		}
		out[k] = float64(i) + float64(a)/float64(a-b)
	}
	return out
}

// ZeroCross extracts dots from a filtered signal sampled at rate. Each
// dot's frequency comes from the interval to the next dot; the last dot
// gets 0. amps is nil when opts.NoAmplitudes is set.
func ZeroCross(signal []float64, rate int, opts Options) (times, freqs, amps []float64) {
	idx := crossings(signal, opts.DivRatio)

	if !opts.NoAmplitudes {
		amps = amplitudes(signal, idx)
	}

	var pos []float64
	if opts.Interpolation {
		pos = interpolate(signal, idx)
	} else {
		pos = make([]float64, len(idx))
		for k, i := range idx {
			pos[k] = float64(i)
		}
	}

	times = make([]float64, len(pos))
	for k, p := range pos {
		times[k] = p / float64(rate)
	}

	freqs = make([]float64, len(times))
	for k := 0; k+1 < len(times); k++ {
		freqs[k] = zc.Frequency(times[k+1]-times[k], opts.DivRatio)
	}

	return times, freqs, amps
}

// NoiseGate drops every dot whose amplitude is below factor times the RMS
// of amps. Without amplitudes the series is returned unchanged.
func NoiseGate(times, freqs, amps []float64, factor float64) ([]float64, []float64, []float64) {
	if len(amps) == 0 {
		return times, freqs, amps
	}
	threshold := factor * zc.RMS(amps)
	return zc.Compact(times, freqs, amps, func(i int) bool { return amps[i] >= threshold })
}
