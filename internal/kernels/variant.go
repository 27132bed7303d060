package kernels

import (
	m "github.com/cwbudde/algo-srfft/internal/math"
)

const (
	// MinSize is the smallest supported transform length. Below it the lane
	// transforms have fewer than the two radix-2 levels the initial stage needs.
	MinSize = 16
	// MaxSize is the largest supported transform length. A transformer holds
	// three buffers of 2n float64 values, 3 GiB at this size.
	MaxSize = 1 << 26
)

// Variant fixes the stage sequence for a size. With k = log2(n/16)+1 the
// tag is k mod 4, with 0 mapped to Variant4. It encodes two facts: whether
// the number of normal radix-4 stages (⌊k/2⌋) is odd, and whether one
// radix-2 level is left for the terminal stage.
type Variant uint8

const (
	// Variant1: even normal stage count, radix-2 + merge terminal.
	Variant1 Variant = iota + 1
	// Variant2: odd normal stage count, pure merge terminal.
	Variant2
	// Variant3: odd normal stage count, radix-2 + merge terminal.
	Variant3
	// Variant4: even normal stage count, pure merge terminal.
	Variant4
)

// Terminal identifies the shape of the last out-of-place stage.
type Terminal uint8

const (
	// TerminalRadix2Merge finishes the last radix-2 level and merges lanes.
	TerminalRadix2Merge Terminal = iota
	// TerminalMerge only merges the two lane transforms.
	TerminalMerge
)

func (t Terminal) String() string {
	if t == TerminalRadix2Merge {
		return "radix2+merge"
	}

	return "merge"
}

// ValidSize reports whether n is a power of two in [MinSize, MaxSize].
func ValidSize(n int) bool {
	return n >= MinSize && n <= MaxSize && m.IsPowerOf2(n)
}

// stageCount returns k = log2(n/16)+1.
func stageCount(n int) int {
	return m.Log2(n) - 3
}

// VariantFor returns the variant of a valid size. Callers validate first;
// an invalid size is a contract violation.
func VariantFor(n int) Variant {
	if !ValidSize(n) {
		violate("variant", "size %d is not a power of two in [%d, %d]", n, MinSize, MaxSize)
	}

	if tag := stageCount(n) % 4; tag != 0 {
		return Variant(tag)
	}

	return Variant4
}

// Terminal returns the terminal stage shape of v.
func (v Variant) Terminal() Terminal {
	if v == Variant1 || v == Variant3 {
		return TerminalRadix2Merge
	}

	return TerminalMerge
}

// OddNormalStages reports whether v runs an odd number of normal stages.
func (v Variant) OddNormalStages() bool {
	return v == Variant2 || v == Variant3
}

func (v Variant) String() string {
	switch v {
	case Variant1:
		return "variant1"
	case Variant2:
		return "variant2"
	case Variant3:
		return "variant3"
	case Variant4:
		return "variant4"
	default:
		return "invalid"
	}
}

// StagePlan is the resolved stage sequence of one size.
type StagePlan struct {
	Size         int
	Variant      Variant
	NormalStages int
	Terminal     Terminal
}

// PlanFor resolves the stage sequence for a valid size.
func PlanFor(n int) StagePlan {
	v := VariantFor(n)
	p := StagePlan{
		Size:         n,
		Variant:      v,
		NormalStages: stageCount(n) / 2,
		Terminal:     v.Terminal(),
	}

	if (p.NormalStages%2 == 1) != v.OddNormalStages() {
		violate("variant", "%v disagrees with %d normal stages for n=%d", v, p.NormalStages, n)
	}

	return p
}

// Lanes returns M = n/2, the length of each lane transform.
func (p StagePlan) Lanes() int {
	return p.Size / 2
}

// Groups returns the butterfly group count of normal stage t.
func (p StagePlan) Groups(t int) int {
	return 4 << (2 * t)
}

// MergeSlots returns the iteration count of the terminal stage. Each slot
// produces two consecutive bins in every quarter of the output.
func (p StagePlan) MergeSlots() int {
	return p.Size / 8
}

// InitialToTemp reports whether the initial stage writes the temp buffer.
// The ping-pong between temp and output must end in temp so the terminal
// stage can write the output buffer.
func (p StagePlan) InitialToTemp() bool {
	return p.NormalStages%2 == 0
}
