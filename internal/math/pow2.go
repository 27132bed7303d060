package math

import "math/bits"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns ⌊log2 n⌋, which is exact for powers of two. It returns 0
// for n < 2.
func Log2(n int) int {
	if n < 2 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}
