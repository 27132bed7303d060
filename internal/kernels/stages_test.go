package kernels

import (
	"fmt"
	"testing"

	m "github.com/cwbudde/algo-srfft/internal/math"
	"github.com/cwbudde/algo-srfft/internal/reference"
	"github.com/cwbudde/algo-srfft/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func sqDiff(a, b complex128) float64 {
	d := a - b
	return real(d)*real(d) + imag(d)*imag(d)
}

func TestSplitFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  split
	}{
		{2, split{a: 1, c1: 0, c2: 0, b: 0}},
		{4, split{a: 1, c1: 0, c2: 1, b: 0}},
		{8, split{a: 2, c1: 0, c2: 1, b: 1}},
		{16, split{a: 3, c1: 1, c2: 2, b: 2}},
		{64, split{a: 11, c1: 5, c2: 6, b: 10}},
		{256, split{a: 43, c1: 21, c2: 22, b: 42}},
		{1024, split{a: 171, c1: 85, c2: 86, b: 170}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count=%d", tt.count), func(t *testing.T) {
			t.Parallel()

			got := splitFor(tt.count)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.count/2, got.total())

			if tt.count >= 4 {
				assert.Equal(t, tt.count/4, got.a+got.c1, "even slots")
				assert.Equal(t, tt.count/4, got.c2+got.b, "odd slots")
			}
		})
	}
}

func TestSplitPerSize(t *testing.T) {
	t.Parallel()

	// The initial stage of size n runs one block of n/4 pairs; normal stage
	// t runs blocks of n/(4·G) pairs.
	tests := []struct {
		n       int
		initial split
		last    split
	}{
		{16, split{a: 1, c1: 0, c2: 1, b: 0}, split{}},
		{32, split{a: 2, c1: 0, c2: 1, b: 1}, split{a: 1}},
		{64, split{a: 3, c1: 1, c2: 2, b: 2}, split{a: 1, c2: 1}},
		{4096, split{a: 171, c1: 85, c2: 86, b: 170}, split{a: 1, c2: 1}},
		{8192, split{a: 342, c1: 170, c2: 171, b: 341}, split{a: 1}},
	}

	for _, tt := range tests {
		p := PlanFor(tt.n)
		assert.Equal(t, tt.initial, splitFor(tt.n/4), "n=%d initial", tt.n)

		if p.NormalStages > 0 {
			groups := p.Groups(p.NormalStages - 1)
			assert.Equal(t, tt.last, splitFor(tt.n/(4*groups)), "n=%d last normal", tt.n)
		}
	}
}

// lanePasses runs the initial and normal stages of size n on src and
// returns the buffer the terminal stage would read.
func lanePasses(n int, src []float64, d Direction) []float64 {
	e := NewExecutor(n)
	cur, next := make([]float64, 2*n), make([]float64, 2*n)

	initialStage(cur, src, d)

	for t := range e.plan.NormalStages {
		normalStage(next, cur, e.groups[t], e.table.Stage(t), d)
		cur, next = next, cur
	}

	return cur
}

func laneValue(b []float64, p, lane int) complex128 {
	return complex(b[4*p+2*lane], b[4*p+2*lane+1])
}

func TestPassesLeaveLanesSorted(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 32, 64, 128, 256, 512, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := testutil.RandomComplex(n, uint64(3*n))
			src := make([]float64, 2*n)
			reference.Interleave(src, x)

			lanes := n / 2
			even, odd := make([]complex128, lanes), make([]complex128, lanes)
			for i := range lanes {
				even[i], odd[i] = x[2*i], x[2*i+1]
			}

			want := [2][]complex128{reference.NaiveDFT(even), reference.NaiveDFT(odd)}
			got := lanePasses(n, src, Forward)

			for lane := range 2 {
				if PlanFor(n).Terminal == TerminalMerge {
					for p := range lanes {
						assert.InDelta(t, 0, sqDiff(laneValue(got, p, lane), want[lane][p]), 1e-18,
							"lane %d bin %d", lane, p)
					}

					continue
				}

				// One radix-2 level is left: pair (2m, 2m+1) yields bins m and m+M/2.
				for mm := range lanes / 2 {
					a, b := laneValue(got, 2*mm, lane), laneValue(got, 2*mm+1, lane)
					assert.InDelta(t, 0, sqDiff(a+b, want[lane][mm]), 1e-18, "lane %d bin %d", lane, mm)
					assert.InDelta(t, 0, sqDiff(a-b, want[lane][mm+lanes/2]), 1e-18, "lane %d bin %d", lane, mm+lanes/2)
				}
			}
		})
	}
}

func TestInitialStageImpulse(t *testing.T) {
	t.Parallel()

	// A unit impulse in sample 0 reaches every bin of lane 0 with weight 1
	// after all passes; the initial stage alone already spreads it evenly
	// over the four quarters.
	const n = 64

	src := make([]float64, 2*n)
	src[0] = 1

	dst := make([]float64, 2*n)
	initialStage(dst, src, Forward)

	quarter := n / 8
	for q := range 4 {
		assert.Equal(t, 1.0, dst[2*n/4*q], "quarter %d", q)
		assert.Equal(t, 0.0, dst[2*n/4*q+1], "quarter %d", q)
	}

	for p := 1; p < quarter; p++ {
		assert.Zero(t, laneValue(dst, p, 0), "slot %d", p)
	}
}

func TestStageContracts(t *testing.T) {
	t.Parallel()

	buf := make([]float64, 64)
	other := make([]float64, 64)
	tw := make([]float64, 24)
	order := m.DigitReversal(4)

	tests := []struct {
		name string
		fn   func()
	}{
		{"initial short dst", func() { initialStage(other[:32], buf, Forward) }},
		{"initial ragged length", func() { initialStage(other[:40], buf[:40], Forward) }},
		{"initial too small", func() { initialStage(other[:16], buf[:16], Forward) }},
		{"initial in place", func() { initialStage(buf, buf, Forward) }},
		{"normal too few groups", func() { normalStage(other, buf, m.DigitReversal(2), tw, Forward) }},
		{"normal groups do not tile", func() { normalStage(other, buf, m.DigitReversal(8), make([]float64, 48), Forward) }},
		{"normal short table", func() { normalStage(other, buf, order, tw[:12], Forward) }},
		{"normal long table", func() { normalStage(other, buf, order, make([]float64, 30), Forward) }},
		{"normal in place", func() { normalStage(buf, buf, order, tw, Forward) }},
		{"radix2 table mismatch", func() { radix2MergeStage(other, buf, order, tw[:8], Forward) }},
		{"radix2 slot mismatch", func() { radix2MergeStage(other, buf, m.DigitReversal(2), make([]float64, 16), Forward) }},
		{"radix2 in place", func() { radix2MergeStage(buf, buf, order, make([]float64, 16), Forward) }},
		{"merge table mismatch", func() { mergeStage(other, buf, order, tw, Forward) }},
		{"merge ragged", func() { mergeStage(other[:12], buf[:12], nil, make([]float64, 3), Forward) }},
		{"swap ragged", func() { swapStage(buf[:6], nil) }},
		{"swap outside quarter", func() { swapStage(buf, [][2]int{{0, 4}}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Panics(t, tt.fn)
		})
	}
}

func TestSwapStageAllQuarters(t *testing.T) {
	t.Parallel()

	const slots = 8

	quarter := 4 * slots
	buf := make([]float64, 4*quarter)
	for i := range buf {
		buf[i] = float64(i)
	}

	perm := m.DigitReversal(slots)
	swapStage(buf, m.SwapPairs(perm))

	for q := range 4 {
		for s := range slots {
			for c := range 4 {
				want := float64(q*quarter + 4*perm[s] + c)
				assert.Equal(t, want, buf[q*quarter+4*s+c], "quarter %d slot %d", q, s)
			}
		}
	}
}
