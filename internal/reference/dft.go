// Package reference holds slow scalar transforms used to check the fast
// kernels. Nothing here is tuned for speed.
package reference

import (
	"math"
	"math/cmplx"

	m "github.com/cwbudde/algo-srfft/internal/math"
)

// NaiveDFT computes X[k] = Σ x[j]·e^{-2πi·jk/n} by direct summation.
// The exponent is reduced modulo n before evaluation, so every root is
// accurate to one rounding.
func NaiveDFT(x []complex128) []complex128 {
	return naive(x, -1)
}

// NaiveIDFT computes the inverse of NaiveDFT, including the 1/n factor.
func NaiveIDFT(x []complex128) []complex128 {
	out := naive(x, 1)

	scale := complex(1/float64(len(x)), 0)
	for i := range out {
		out[i] *= scale
	}

	return out
}

func naive(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for j := range n {
			sum += x[j] * root(sign, (j*k)%n, n)
		}

		out[k] = sum
	}

	return out
}

// RadixTwoFFT is an iterative radix-2 decimation-in-time transform for
// power-of-two lengths. Twiddles are evaluated directly rather than by
// recurrence.
func RadixTwoFFT(x []complex128) []complex128 {
	n := len(x)
	if !m.IsPowerOf2(n) {
		panic("reference: RadixTwoFFT needs a power-of-two length")
	}

	out := make([]complex128, n)
	for i, j := range bitReversal(n) {
		out[i] = x[j]
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				w := root(-1, k*step, n)
				a := out[start+k]
				b := out[start+k+half] * w
				out[start+k] = a + b
				out[start+k+half] = a - b
			}
		}
	}

	return out
}

// bitReversal reverses the index bits one at a time. It stays independent
// of the recursive permutation the kernels use.
func bitReversal(n int) []int {
	width := m.Log2(n)
	perm := make([]int, n)

	for i := range perm {
		r := 0
		for x, b := i, 0; b < width; b++ {
			r = r<<1 | x&1
			x >>= 1
		}

		perm[i] = r
	}

	return perm
}

func root(sign float64, e, n int) complex128 {
	s, c := math.Sincos(sign * m.TwoPi * float64(e) / float64(n))
	return complex(c, s)
}

// MaxRelativeError returns max|got[i]-want[i]| / max|want[i]|, the error
// relative to the largest reference magnitude. It returns +Inf when the
// lengths differ.
func MaxRelativeError(got, want []complex128) float64 {
	if len(got) != len(want) {
		return math.Inf(1)
	}

	var maxErr, maxMag float64

	for i := range want {
		maxErr = math.Max(maxErr, cmplx.Abs(got[i]-want[i]))
		maxMag = math.Max(maxMag, cmplx.Abs(want[i]))
	}

	if maxMag == 0 {
		return maxErr
	}

	return maxErr / maxMag
}

// Interleave writes x as (re, im) pairs into dst, which must hold 2·len(x)
// values.
func Interleave(dst []float64, x []complex128) {
	for i, v := range x {
		dst[2*i] = real(v)
		dst[2*i+1] = imag(v)
	}
}

// Deinterleave reads (re, im) pairs from b.
func Deinterleave(b []float64) []complex128 {
	out := make([]complex128, len(b)/2)
	for i := range out {
		out[i] = complex(b[2*i], b[2*i+1])
	}

	return out
}
