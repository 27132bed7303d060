package kernels

import (
	"fmt"
	"testing"

	m "github.com/cwbudde/algo-srfft/internal/math"
	"github.com/cwbudde/algo-srfft/internal/memory"
	"github.com/cwbudde/algo-srfft/internal/reference"
	"github.com/cwbudde/algo-srfft/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type buffers struct {
	in, out, tmp []float64
}

func newBuffers(n int) buffers {
	var l memory.Layout

	in, out, tmp := l.Reserve(2*n), l.Reserve(2*n), l.Reserve(2*n)
	a := memory.NewArena(&l)

	return buffers{in: a.Slice(in), out: a.Slice(out), tmp: a.Slice(tmp)}
}

func TestExecutorMatchesReference(t *testing.T) {
	t.Parallel()

	for logN := 4; logN <= 16; logN++ {
		n := 1 << logN

		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			e := NewExecutor(n)
			b := newBuffers(n)

			x := testutil.RandomComplex(n, uint64(n))
			reference.Interleave(b.in, x)

			e.Run(Forward, b.in, b.out, b.tmp)

			got := reference.Deinterleave(b.out)
			want := reference.RadixTwoFFT(x)

			testutil.AssertSpectrumClose(t, got, want, testutil.RelativeTolerance)
			assert.Less(t, reference.MaxRelativeError(got, want), 1e-9)
		})
	}
}

func TestExecutorMatchesNaiveDFT(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 32, 64, 128} {
		e := NewExecutor(n)
		b := newBuffers(n)

		x := testutil.RandomComplex(n, 99)
		reference.Interleave(b.in, x)
		e.Run(Forward, b.in, b.out, b.tmp)

		testutil.AssertSpectrumClose(t, reference.Deinterleave(b.out), reference.NaiveDFT(x),
			testutil.RelativeTolerance, "n=%d", n)
	}
}

func TestExecutorInverse(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 32, 64, 128, 256, 2048} {
		e := NewExecutor(n)
		b := newBuffers(n)

		x := testutil.RandomComplex(n, 11)
		reference.Interleave(b.in, x)
		e.Run(Inverse, b.in, b.out, b.tmp)

		got := reference.Deinterleave(b.out)
		for i := range got {
			got[i] /= complex(float64(n), 0)
		}

		assert.Less(t, reference.MaxRelativeError(got, reference.NaiveIDFT(x)), 1e-10, "n=%d", n)
	}
}

func TestExecutorLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	const n = 512

	e := NewExecutor(n)
	b := newBuffers(n)
	copy(b.in, testutil.RandomInterleaved(n, 5))

	saved := append([]float64(nil), b.in...)
	e.Run(Forward, b.in, b.out, b.tmp)
	first := append([]float64(nil), b.out...)

	e.Run(Forward, b.in, b.out, b.tmp)

	assert.Equal(t, saved, b.in)
	assert.Equal(t, first, b.out, "repeated runs must be bit-identical")
}

func TestExecutorOutputBeforeSwapIsSlotOrdered(t *testing.T) {
	t.Parallel()

	for _, n := range []int{128, 256} {
		e := NewExecutor(n)
		b := newBuffers(n)

		x := testutil.RandomComplex(n, 8)
		reference.Interleave(b.in, x)
		e.Run(Forward, b.in, b.out, b.tmp)

		// Undo the finalize pass; slot s of each quarter then holds the bin
		// pair of j = rev(s).
		swapStage(b.out, e.Swaps())

		quarter := n / 4
		perm := m.DigitReversal(e.Plan().MergeSlots())
		want := reference.RadixTwoFFT(x)
		got := reference.Deinterleave(b.out)

		for q := range 4 {
			for s, j := range perm {
				for l := range 2 {
					at := q*quarter + 2*s + l
					assert.InDelta(t, 0, sqDiff(got[at], want[q*quarter+2*j+l]), 1e-18,
						"n=%d quarter %d slot %d", n, q, s)
				}
			}
		}
	}
}

func TestExecutorContracts(t *testing.T) {
	t.Parallel()

	e := NewExecutor(32)
	b := newBuffers(32)

	assert.Panics(t, func() { e.Run(Forward, b.in[:32], b.out, b.tmp) })
	assert.Panics(t, func() { e.Run(Forward, b.in, b.in, b.tmp) })
	assert.Panics(t, func() { e.Run(Forward, b.in, b.out, b.out) })
	assert.Panics(t, func() { NewExecutor(24) })

	require.NotPanics(t, func() { e.Run(Forward, b.in, b.out, b.tmp) })
}

func TestExecutorSharedAcrossGoroutines(t *testing.T) {
	t.Parallel()

	const n = 1024

	e := NewExecutor(n)
	x := testutil.RandomComplex(n, 21)
	want := reference.RadixTwoFFT(x)

	done := make(chan []complex128, 4)
	for range 4 {
		go func() {
			b := newBuffers(n)
			reference.Interleave(b.in, x)
			e.Run(Forward, b.in, b.out, b.tmp)
			done <- reference.Deinterleave(b.out)
		}()
	}

	for range 4 {
		testutil.AssertSpectrumClose(t, <-done, want, testutil.RelativeTolerance)
	}
}

func BenchmarkExecutor(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			e := NewExecutor(n)
			buf := newBuffers(n)
			copy(buf.in, testutil.RandomInterleaved(n, 1))

			b.SetBytes(int64(16 * n))
			b.ReportAllocs()

			for b.Loop() {
				e.Run(Forward, buf.in, buf.out, buf.tmp)
			}
		})
	}
}
