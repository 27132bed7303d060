package kernels

import (
	"math"

	m "github.com/cwbudde/algo-srfft/internal/math"
	"github.com/cwbudde/algo-srfft/internal/memory"
)

// Table holds every root of unity a size needs, in the order the stages
// consume them. It is immutable after BuildTable and safe to share.
//
// Layout, one aligned allocation:
//
//	stage t   G = 4^(t+1) slots of (w0, w1, w2), slot s serving group rev_G(s):
//	          w0 = ω^g, w1 = e^{-iπ/4}·ω^g, w2 = ω^{2g}, ω = e^{-iπ/(4G)}
//	merge     n/8 slots of (W^{2j}, W^{2j+1}), slot s serving j = rev_{n/8}(s),
//	          W = e^{-2πi/n}
type Table struct {
	size   int
	arena  *memory.Arena
	stages []memory.Region
	merge  memory.Region
}

// eighth is e^{-iπ/4}, the fixed start of the w1 role.
var eighth = complex(m.Sqrt1_2, -m.Sqrt1_2)

// BuildTable computes the table for p. Roots advance by repeated
// multiplication with the stage's base root, so entry r carries about r
// roundings of error; the tolerance tests account for it.
func BuildTable(p StagePlan) *Table {
	var layout memory.Layout

	stages := make([]memory.Region, p.NormalStages)
	for t := range stages {
		stages[t] = layout.Reserve(6 * p.Groups(t))
	}

	merge := layout.Reserve(4 * p.MergeSlots())

	tab := &Table{
		size:   p.Size,
		arena:  memory.NewArena(&layout),
		stages: stages,
		merge:  merge,
	}

	for t, r := range stages {
		fillStage(tab.arena.Slice(r), p.Groups(t))
	}

	fillMerge(tab.arena.Slice(merge), p.Size)

	return tab
}

// Size returns the transform length the table was built for.
func (t *Table) Size() int { return t.size }

// Len returns the table length in float64 elements.
func (t *Table) Len() int { return t.arena.Len() }

// Stages returns the number of normal stage sections.
func (t *Table) Stages() int { return len(t.stages) }

// Stage returns the section of normal stage s.
func (t *Table) Stage(s int) []float64 { return t.arena.Slice(t.stages[s]) }

// Merge returns the lane merge section.
func (t *Table) Merge() []float64 { return t.arena.Slice(t.merge) }

// fillStage walks the groups in natural order, starting from (1, e^{-iπ/4}, 1)
// and stepping w0 and w1 by ω and w2 by ω², and stores group g at slot rev(g).
func fillStage(dst []float64, groups int) {
	perm := m.DigitReversal(groups)

	sin, cos := math.Sincos(-math.Pi / float64(4*groups))
	step := complex(cos, sin)
	step2 := step * step

	w0, w1, w2 := complex(1, 0), eighth, complex(1, 0)
	for g := range groups {
		slot := 6 * perm[g]
		putComplex(dst, slot, w0)
		putComplex(dst, slot+2, w1)
		putComplex(dst, slot+4, w2)

		w0 *= step
		w1 *= step
		w2 *= step2
	}
}

// fillMerge writes the merge factors of size n, two consecutive powers of
// W per slot.
func fillMerge(dst []float64, n int) {
	perm := m.DigitReversal(n / 8)

	sin, cos := math.Sincos(-m.TwoPi / float64(n))
	step := complex(cos, sin)

	w := complex(1, 0)
	for j := range perm {
		slot := 4 * perm[j]
		putComplex(dst, slot, w)
		w *= step
		putComplex(dst, slot+2, w)
		w *= step
	}
}

func putComplex(dst []float64, i int, c complex128) {
	dst[i] = real(c)
	dst[i+1] = imag(c)
}
