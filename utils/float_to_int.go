// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 quantizes a normalized sample to 16-bit PCM. Input is
// clamped to [-1, 1] and scaled by 32767 so both polarities stay symmetric.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Float32sToInt16s quantizes src into dst and returns the number of samples
// converted, min(len(dst), len(src)).
func Float32sToInt16s(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}

// Int16sToFloat64s widens PCM samples without rescaling, for filters that
// work on the integer sample scale.
func Int16sToFloat64s(src []int16) []float64 {
	out := make([]float64, len(src))
	for i, s := range src {
		out[i] = float64(s)
	}
	return out
}
