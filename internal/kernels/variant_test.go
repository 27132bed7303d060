package kernels

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		variant  Variant
		normal   int
		terminal Terminal
		toTemp   bool
	}{
		{16, Variant1, 0, TerminalRadix2Merge, true},
		{32, Variant2, 1, TerminalMerge, false},
		{64, Variant3, 1, TerminalRadix2Merge, false},
		{128, Variant4, 2, TerminalMerge, true},
		{256, Variant1, 2, TerminalRadix2Merge, true},
		{512, Variant2, 3, TerminalMerge, false},
		{1024, Variant3, 3, TerminalRadix2Merge, false},
		{2048, Variant4, 4, TerminalMerge, true},
		{65536, Variant1, 6, TerminalRadix2Merge, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()

			p := PlanFor(tt.n)
			assert.Equal(t, tt.n, p.Size)
			assert.Equal(t, tt.variant, p.Variant)
			assert.Equal(t, tt.normal, p.NormalStages)
			assert.Equal(t, tt.terminal, p.Terminal)
			assert.Equal(t, tt.toTemp, p.InitialToTemp())
			assert.Equal(t, tt.n/2, p.Lanes())
		})
	}
}

func TestPlanCoversAllLevels(t *testing.T) {
	t.Parallel()

	for logN := 4; logN <= 20; logN++ {
		p := PlanFor(1 << logN)

		levels := 2 + 2*p.NormalStages
		if p.Terminal == TerminalRadix2Merge {
			levels++
		}

		assert.Equal(t, logN-1, levels, "n=%d", 1<<logN)
	}
}

func TestGroups(t *testing.T) {
	t.Parallel()

	p := PlanFor(4096)
	assert.Equal(t, 4, p.Groups(0))
	assert.Equal(t, 16, p.Groups(1))
	assert.Equal(t, 64, p.Groups(2))
	assert.Equal(t, 512, p.MergeSlots())
}

func TestValidSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 32, 1 << 16, MaxSize} {
		assert.True(t, ValidSize(n), "n=%d", n)
	}

	for _, n := range []int{-16, 0, 1, 8, 15, 17, 24, 1000, 2 * MaxSize, math.MaxInt} {
		assert.False(t, ValidSize(n), "n=%d", n)
	}
}

func TestVariantForRejectsInvalid(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "kernels: variant: size 8 is not a power of two in [16, 67108864]", func() { VariantFor(8) })
	assert.Panics(t, func() { VariantFor(17) })
	assert.Panics(t, func() { PlanFor(2 * MaxSize) })
}

func TestVariantStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "variant1", Variant1.String())
	assert.Equal(t, "variant4", Variant4.String())
	assert.Equal(t, "invalid", Variant(0).String())
	assert.Equal(t, "radix2+merge", TerminalRadix2Merge.String())
	assert.Equal(t, "merge", TerminalMerge.String())
}
