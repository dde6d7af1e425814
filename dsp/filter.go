// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// normalize pads b and a to the same length and scales both by a[0].
func normalize(b, a []float64) (nb, na []float64, err error) {
	if len(a) == 0 || len(b) == 0 || a[0] == 0 {
		return nil, nil, fmt.Errorf("%w: len(b)=%d len(a)=%d", ErrInvalidCoeffs, len(b), len(a))
	}

	n := max(len(a), len(b))
	nb = make([]float64, n)
	na = make([]float64, n)
	for i, v := range b {
		nb[i] = v / a[0]
	}
	for i, v := range a {
		na[i] = v / a[0]
	}
	return nb, na, nil
}

// LFilter runs x through the filter b/a in direct form II transposed.
// zi is the initial delay line state, max(len(a), len(b))-1 values, or nil
// for a filter at rest. The final state is returned alongside the output.
func LFilter(b, a, x, zi []float64) (y, zf []float64, err error) {
	b, a, err = normalize(b, a)
	if err != nil {
		return nil, nil, err
	}

	n := len(a)
	z := make([]float64, n-1)
	if zi != nil {
		if len(zi) != n-1 {
			return nil, nil, fmt.Errorf("%w: state has %d values, want %d", ErrInvalidCoeffs, len(zi), n-1)
		}
		copy(z, zi)
	}

	y = make([]float64, len(x))
	for i, xi := range x {
		if n == 1 {
			y[i] = b[0] * xi
			continue
		}
		yi := b[0]*xi + z[0]
		for j := 0; j < n-2; j++ {
			z[j] = b[j+1]*xi + z[j+1] - a[j+1]*yi
		}
		z[n-2] = b[n-1]*xi - a[n-1]*yi
		y[i] = yi
	}
	return y, z, nil
}

// LFilterZI returns the delay line state for which a unit step input
// produces a steady output from the first sample. Scale it by the first
// input value to start a filter without a transient.
func LFilterZI(b, a []float64) ([]float64, error) {
	b, a, err := normalize(b, a)
	if err != nil {
		return nil, err
	}

	n := len(a) - 1
	if n == 0 {
		return []float64{}, nil
	}

	// (I - A) zi = B, where A is the transposed companion matrix of a
	lhs := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := range n {
		lhs.Set(i, 0, a[i+1])
		if i > 0 {
			lhs.Set(i-1, i, -1)
		}
		lhs.Set(i, i, lhs.At(i, i)+1)
		rhs.SetVec(i, b[i+1]-a[i+1]*b[0])
	}

	var zi mat.VecDense
	if err := zi.SolveVec(lhs, rhs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCoeffs, err)
	}
	return zi.RawVector().Data, nil
}

// FiltFilt applies b/a forward and then backward over x, giving zero phase
// distortion and the squared magnitude response of the filter. Edges are
// extended by odd reflection of 3*max(len(a), len(b)) samples, fewer when
// x is too short, and both passes start from the steady state.
func FiltFilt(b, a, x []float64) ([]float64, error) {
	if len(x) == 0 {
		return []float64{}, nil
	}

	zi, err := LFilterZI(b, a)
	if err != nil {
		return nil, err
	}

	padlen := min(3*max(len(a), len(b)), len(x)-1)
	ext := oddExtend(x, padlen)

	state := scaled(zi, ext[0])
	fwd, _, err := LFilter(b, a, ext, state)
	if err != nil {
		return nil, err
	}

	slices.Reverse(fwd)
	state = scaled(zi, fwd[0])
	bwd, _, err := LFilter(b, a, fwd, state)
	if err != nil {
		return nil, err
	}
	slices.Reverse(bwd)

	return bwd[padlen : len(bwd)-padlen], nil
}

// oddExtend mirrors n samples around each endpoint of x, point symmetric
// about the endpoint value.
func oddExtend(x []float64, n int) []float64 {
	last := len(x) - 1
	ext := make([]float64, 0, len(x)+2*n)
	for i := n; i >= 1; i-- {
		ext = append(ext, 2*x[0]-x[i])
	}
	ext = append(ext, x...)
	for i := 1; i <= n; i++ {
		ext = append(ext, 2*x[last]-x[last-i])
	}
	return ext
}

func scaled(v []float64, k float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * k
	}
	return out
}
