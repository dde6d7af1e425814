// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ButterHighPass designs an order-N digital Butterworth high-pass filter.
// wn is the -3 dB point normalized to Nyquist.
//
// The analog prototype is transformed to high-pass and discretized with the
// bilinear transform after pre-warping, so the digital cutoff lands exactly
// on wn.
func ButterHighPass(order int, wn float64) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if !(wn > 0 && wn < 1) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidCutoff, wn)
	}

	// bilinear transform with fs=2
	const fs2 = 4.0
	warped := fs2 * math.Tan(math.Pi*wn/2)

	// analog low-pass prototype poles on the left half of the unit circle
	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		poles = append(poles, -cmplx.Exp(complex(0, math.Pi*float64(m)/float64(2*order))))
	}

	// low-pass to high-pass: p -> wo/p, all zeros move to the origin
	prodNeg := complex(1, 0)
	for i, p := range poles {
		prodNeg *= -p
		poles[i] = complex(warped, 0) / p
	}
	gain := real(1 / prodNeg)
	zeros := make([]complex128, order)

	// bilinear transform
	num, den := complex(1, 0), complex(1, 0)
	for i := range zeros {
		num *= complex(fs2, 0) - zeros[i]
		zeros[i] = (complex(fs2, 0) + zeros[i]) / (complex(fs2, 0) - zeros[i])
	}
	for i := range poles {
		den *= complex(fs2, 0) - poles[i]
		poles[i] = (complex(fs2, 0) + poles[i]) / (complex(fs2, 0) - poles[i])
	}
	gain *= real(num / den)

	b = realPoly(zeros)
	for i := range b {
		b[i] *= gain
	}
	a = realPoly(poles)
	return b, a, nil
}

// realPoly expands the monic polynomial with the given roots. Roots come
// in conjugate pairs so the imaginary parts cancel and are discarded.
func realPoly(roots []complex128) []float64 {
	c := make([]complex128, 1, len(roots)+1)
	c[0] = 1
	for _, r := range roots {
		c = append(c, 0)
		for j := len(c) - 1; j > 0; j-- {
			c[j] -= r * c[j-1]
		}
	}

	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return out
}
