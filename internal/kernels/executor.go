package kernels

import m "github.com/cwbudde/algo-srfft/internal/math"

// Executor runs the stage sequence of one size. It owns the twiddle table,
// the visiting orders and the swap table and never mutates them, so one
// Executor may serve any number of goroutines as long as each brings its
// own buffers.
type Executor struct {
	plan   StagePlan
	table  *Table
	groups [][]int
	slots  []int
	swaps  [][2]int
}

// NewExecutor builds the tables for a valid size.
func NewExecutor(n int) *Executor {
	p := PlanFor(n)

	groups := make([][]int, p.NormalStages)
	for t := range groups {
		groups[t] = m.DigitReversal(p.Groups(t))
	}

	slots := m.DigitReversal(p.MergeSlots())

	return &Executor{
		plan:   p,
		table:  BuildTable(p),
		groups: groups,
		slots:  slots,
		swaps:  m.SwapPairs(slots),
	}
}

// Plan returns the resolved stage sequence.
func (e *Executor) Plan() StagePlan { return e.plan }

// Table returns the shared twiddle table.
func (e *Executor) Table() *Table { return e.table }

// Swaps returns the finalize pass exchanges, vector slots within one quarter.
func (e *Executor) Swaps() [][2]int { return e.swaps }

// Run transforms in into out, using tmp as the second ping-pong buffer.
// All three hold 2n values and must be distinct; in is only read.
// The inverse direction is not normalised.
func (e *Executor) Run(d Direction, in, out, tmp []float64) {
	size := 2 * e.plan.Size
	if len(in) != size || len(out) != size || len(tmp) != size {
		violate("run", "buffers %d/%d/%d, want %d", len(in), len(out), len(tmp), size)
	}

	if aliased(in, out) || aliased(in, tmp) || aliased(out, tmp) {
		violate("run", "input, output and temp must be distinct")
	}

	cur, next := out, tmp
	if e.plan.InitialToTemp() {
		cur, next = tmp, out
	}

	initialStage(cur, in, d)

	for t := range e.plan.NormalStages {
		normalStage(next, cur, e.groups[t], e.table.Stage(t), d)
		cur, next = next, cur
	}

	if !aliased(cur, tmp) {
		violate("run", "%v ends its normal stages outside the temp buffer", e.plan.Variant)
	}

	switch e.plan.Terminal {
	case TerminalRadix2Merge:
		radix2MergeStage(out, tmp, e.slots, e.table.Merge(), d)
	case TerminalMerge:
		mergeStage(out, tmp, e.slots, e.table.Merge(), d)
	}

	swapStage(out, e.swaps)
}
