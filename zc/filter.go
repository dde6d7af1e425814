// SPDX-License-Identifier: EPL-2.0

package zc

import "math"

// Compact returns the aligned series with every index for which keep
// returns false removed. amps may be nil. The inputs are not modified.
func Compact(times, freqs, amps []float64, keep func(i int) bool) ([]float64, []float64, []float64) {
	outT := make([]float64, 0, len(times))
	outF := make([]float64, 0, len(freqs))
	var outA []float64
	if amps != nil {
		outA = make([]float64, 0, len(amps))
	}

	for i := range freqs {
		if !keep(i) {
			continue
		}
		outT = append(outT, times[i])
		outF = append(outF, freqs[i])
		if amps != nil {
			outA = append(outA, amps[i])
		}
	}

	return outT, outF, outA
}

// HighPass is the brick-wall filter: it keeps only dots whose frequency is
// strictly above cutoffHz. A non-positive cutoff or an empty series is
// returned unchanged.
func HighPass(times, freqs, amps []float64, cutoffHz float64) ([]float64, []float64, []float64) {
	if cutoffHz <= 0 || len(freqs) == 0 {
		return times, freqs, amps
	}
	return Compact(times, freqs, amps, func(i int) bool { return freqs[i] > cutoffHz })
}

// Frequency converts an interval in seconds to the instantaneous frequency
// for divratio. A zero interval yields 0 instead of an infinity.
func Frequency(intervalS float64, divratio int) float64 {
	f := 1 / intervalS * (float64(divratio) / 2)
	if math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Intervals converts absolute dot times to microsecond intervals, the first
// interval being measured from t=0.
func Intervals(times []float64) []int {
	out := make([]int, len(times))
	prev := 0.0
	for i, t := range times {
		out[i] = int(math.Round((t - prev) * 1e6))
		prev = t
	}
	return out
}
