// Package testutil provides shared test helpers for transform tests.
package testutil

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/simd/f64"
)

// Tolerances used across the transform tests.
const (
	// RelativeTolerance is the per-element bound relative to the expected
	// magnitude.
	RelativeTolerance = 1e-2
	// FloorTolerance is an absolute floor, relative to the largest expected
	// magnitude, for bins whose true value is close to zero.
	FloorTolerance = 1e-9
)

// RandomComplex returns n reproducible samples with components in [-1, 1).
func RandomComplex(n int, seed uint64) []complex128 {
	rng := rand.New(rand.NewPCG(seed, seed^0xA5A5A5A5DEADBEEF))

	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return x
}

// RandomInterleaved returns n reproducible complex samples as 2n
// interleaved values.
func RandomInterleaved(n int, seed uint64) []float64 {
	x := RandomComplex(n, seed)

	b := make([]float64, 2*n)
	for i, v := range x {
		b[2*i] = real(v)
		b[2*i+1] = imag(v)
	}

	return b
}

// Energy returns Σ b[i]², the squared magnitude sum of an interleaved
// buffer.
func Energy(b []float64) float64 {
	return f64.DotProductUnsafe(b, b)
}

// AssertSpectrumClose checks |got[i]-want[i]| <= rel·|want[i]| + floor per
// element, with floor = FloorTolerance·max|want|.
func AssertSpectrumClose(t assert.TestingT, got, want []complex128, rel float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}

	var maxMag float64
	for _, w := range want {
		maxMag = math.Max(maxMag, cmplx.Abs(w))
	}

	floor := FloorTolerance * maxMag

	for i := range want {
		diff := cmplx.Abs(got[i] - want[i])
		if diff > rel*cmplx.Abs(want[i])+floor {
			return assert.Fail(t, "spectrum mismatch",
				"bin %d: got %v, want %v (|diff| = %g)", i, got[i], want[i], diff)
		}
	}

	return true
}

// AssertNoNaNOrInf verifies that no element is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()

	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return assert.Fail(t, "non-finite value", "s[%d] = %v", i, v)
		}
	}

	return true
}
