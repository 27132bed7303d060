package math

// DigitReversal returns the permutation that maps a natural position in
// [0, m) to its digit-reversed position. m must be a power of two.
//
// The table is filled by recursive halving: the positions visited with
// stride 2·interval starting at offset receive the lower half of the
// remaining values, the positions starting at offset+interval receive the
// same values shifted by m/(2·interval).
func DigitReversal(m int) []int {
	if m <= 0 {
		return nil
	}

	perm := make([]int, m)
	fillDigitReversal(perm, 0, 1, 0)

	return perm
}

func fillDigitReversal(perm []int, offset, interval, index int) {
	m := len(perm)
	if interval == m {
		perm[offset] = index
		return
	}

	fillDigitReversal(perm, offset, interval<<1, index)
	fillDigitReversal(perm, offset+interval, interval<<1, index+m/(interval<<1))
}

// SwapPairs extracts the exchanges that realise perm in place. Only pairs
// (i, perm[i]) with i < perm[i] are kept, so fixed points and the mirrored
// duplicate of every pair are skipped. perm must be an involution.
func SwapPairs(perm []int) [][2]int {
	pairs := make([][2]int, 0, len(perm)/2)

	for i, p := range perm {
		if i < p {
			pairs = append(pairs, [2]int{i, p})
		}
	}

	return pairs
}
