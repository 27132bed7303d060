// Package srfft computes power-of-two discrete Fourier transforms of
// interleaved complex float64 data with a split-radix decomposition laid out
// for two-wide complex vectors.
//
// The even and odd samples run as two lanes of one vector. Each pass is a
// self-sorting radix-4 step whose butterflies take their split-radix role
// from their position in a block: the odd-index quarters are combined as a
// conjugate pair u·w, v·w̄ before they meet the even half. A final pass
// merges the lanes and a swap pass restores natural order. Sizes run from
// MinSize to MaxSize.
//
// A Procedure holds the tables for one size and may be shared. Each
// Transformer owns aligned input, output and scratch buffers:
//
//	proc, err := srfft.CreateProcedure(1024)
//	if err != nil {
//	    return err
//	}
//	tr := proc.CreateTransformer()
//	in := tr.Input() // 2048 values: re, im, re, im, ...
//	// fill in
//	tr.Transform()
//	out := tr.Output()
//
// The forward transform uses e^{-2πi·jk/n} and is not scaled. The inverse
// transformer applies 1/n, so a forward/inverse round trip returns the
// input.
package srfft
