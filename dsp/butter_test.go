// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func approxSlice(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len(%s) = %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s[%d] = %.10f, want %.10f", name, i, got[i], want[i])
		}
	}
}

func TestButterHighPass_KnownCoefficients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		order int
		wn    float64
		b, a  []float64
	}{
		{1, 0.5, []float64{0.5, -0.5}, []float64{1, 0}},
		{2, 0.5, []float64{0.2928932188, -0.5857864376, 0.2928932188}, []float64{1, 0, 0.1715728753}},
	}

	for _, tt := range tests {
		b, a, err := ButterHighPass(tt.order, tt.wn)
		if err != nil {
			t.Fatalf("ButterHighPass(%d, %g) error = %v", tt.order, tt.wn, err)
		}
		approxSlice(t, "b", b, tt.b, 1e-9)
		approxSlice(t, "a", a, tt.a, 1e-9)
	}
}

// response evaluates |H(e^jw)| at normalized frequency f (1 is Nyquist).
func response(b, a []float64, f float64) float64 {
	zinv := cmplx.Exp(complex(0, -math.Pi*f))
	var num, den complex128
	pow := complex(1, 0)
	for i := range max(len(a), len(b)) {
		if i < len(b) {
			num += complex(b[i], 0) * pow
		}
		if i < len(a) {
			den += complex(a[i], 0) * pow
		}
		pow *= zinv
	}
	return cmplx.Abs(num / den)
}

func TestButterHighPass_Response(t *testing.T) {
	t.Parallel()

	for _, order := range []int{1, 2, 4, 6, 8} {
		b, a, err := ButterHighPass(order, 0.1)
		if err != nil {
			t.Fatal(err)
		}

		if len(b) != order+1 || len(a) != order+1 {
			t.Fatalf("order %d: len(b)=%d len(a)=%d", order, len(b), len(a))
		}
		if got := response(b, a, 0.1); math.Abs(got-math.Sqrt2/2) > 1e-6 {
			t.Errorf("order %d: |H(wn)| = %v, want 1/sqrt(2)", order, got)
		}
		if got := response(b, a, 1); math.Abs(got-1) > 1e-9 {
			t.Errorf("order %d: |H(nyquist)| = %v, want 1", order, got)
		}
		if got := response(b, a, 0); got > 1e-9 {
			t.Errorf("order %d: |H(0)| = %v, want 0", order, got)
		}
	}
}

func TestButterHighPass_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		order int
		wn    float64
		want  error
	}{
		{0, 0.5, ErrInvalidOrder},
		{-2, 0.5, ErrInvalidOrder},
		{6, 0, ErrInvalidCutoff},
		{6, 1, ErrInvalidCutoff},
		{6, 1.5, ErrInvalidCutoff},
		{6, math.NaN(), ErrInvalidCutoff},
	}

	for _, tt := range tests {
		if _, _, err := ButterHighPass(tt.order, tt.wn); !errors.Is(err, tt.want) {
			t.Errorf("ButterHighPass(%d, %g) error = %v, want %v", tt.order, tt.wn, err, tt.want)
		}
	}
}
