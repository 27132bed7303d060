package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	srfft "github.com/cwbudde/algo-srfft"
	"github.com/cwbudde/algo-srfft/internal/reference"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/dsp/fourier"
	"k8s.io/klog/v2"
)

type verifyOptions struct {
	sizes     string
	trials    int
	seed      uint64
	tolerance float64
}

type verifyReport struct {
	n         int
	variant   srfft.Variant
	worst     float64
	roundTrip float64
}

func newVerifyCommand() *cobra.Command {
	opts := verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the transform with gonum on random and cosine inputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizes, err := parseSizes(opts.sizes)
			if err != nil {
				return err
			}

			if opts.trials < 1 {
				return fmt.Errorf("trials must be positive")
			}

			out := cmd.OutOrStdout()
			rng := rand.New(rand.NewPCG(opts.seed, ^opts.seed))

			if err := checkCosine(cmd, opts.tolerance); err != nil {
				return err
			}

			fmt.Fprintf(out, "%8s  %10s  %12s  %12s\n", "size", "variant", "max rel err", "round trip")

			failed := 0

			for _, n := range sizes {
				rep := verifySize(rng, n, opts.trials)

				status := "ok"
				if rep.worst > opts.tolerance || rep.roundTrip > opts.tolerance {
					status = "FAIL"
					failed++
				}

				fmt.Fprintf(out, "%8d  %10v  %12.3e  %12.3e  %s\n", n, rep.variant, rep.worst, rep.roundTrip, status)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d sizes exceed tolerance %g", failed, len(sizes), opts.tolerance)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sizes, "sizes", "16,32,64,128,256,512,1024,2048,4096,8192,16384,32768,65536", "comma-separated sizes")
	cmd.Flags().IntVar(&opts.trials, "trials", 3, "random inputs per size")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "rng seed")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 1e-9, "maximum error relative to the largest reference bin")

	return cmd
}

func verifySize(rng *rand.Rand, n, trials int) verifyReport {
	proc, err := srfft.CreateProcedure(n)
	if err != nil {
		return verifyReport{n: n, worst: math.Inf(1), roundTrip: math.Inf(1)}
	}

	fwd := proc.CreateTransformer()
	inv := proc.CreateInverseTransformer()
	ref := fourier.NewCmplxFFT(n)

	rep := verifyReport{n: n, variant: proc.Variant()}
	x := make([]complex128, n)
	want := make([]complex128, n)

	for range trials {
		for i := range x {
			x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}

		if err := fwd.LoadComplex(x); err != nil {
			klog.ErrorS(err, "load failed", "n", n)
			return verifyReport{n: n, worst: math.Inf(1), roundTrip: math.Inf(1)}
		}

		fwd.Transform()
		ref.Coefficients(want, x)

		rep.worst = math.Max(rep.worst, reference.MaxRelativeError(fwd.AppendOutput(nil), want))

		copy(inv.Input(), fwd.Output())
		inv.Transform()

		rep.roundTrip = math.Max(rep.roundTrip, reference.MaxRelativeError(inv.AppendOutput(nil), x))
	}

	klog.V(2).InfoS("verified", "n", n, "maxRelErr", rep.worst, "roundTrip", rep.roundTrip)

	return rep
}

// checkCosine runs x[i] = cos(0.2·i) at n = 1024 and expects the two largest
// bins at round(0.2·n/2π) and its mirror.
func checkCosine(cmd *cobra.Command, tolerance float64) error {
	const n = 1024

	proc, err := srfft.CreateProcedure(n)
	if err != nil {
		return err
	}

	tr := proc.CreateTransformer()

	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(math.Cos(0.2*float64(i)), 0)
	}

	if err := tr.LoadComplex(x); err != nil {
		return err
	}

	tr.Transform()

	got := tr.AppendOutput(nil)
	k := int(math.Round(0.2 * n / (2 * math.Pi)))

	first, second := topTwo(got)
	if (first != k && first != n-k) || (second != k && second != n-k) {
		return fmt.Errorf("cosine peaks at bins %d and %d, want %d and %d", first, second, k, n-k)
	}

	relErr := reference.MaxRelativeError(got, fourier.NewCmplxFFT(n).Coefficients(nil, x))
	if relErr > tolerance {
		return fmt.Errorf("cosine spectrum error %.3e exceeds %g", relErr, tolerance)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "cosine n=%d: peaks at %d and %d, |X| = %.1f, max rel err %.3e\n",
		n, k, n-k, cmplx.Abs(got[k]), relErr)

	return nil
}

func topTwo(x []complex128) (int, int) {
	first, second := -1, -1

	var m1, m2 float64

	for i, v := range x {
		mag := cmplx.Abs(v)

		switch {
		case mag > m1:
			second, m2 = first, m1
			first, m1 = i, mag
		case mag > m2:
			second, m2 = i, mag
		}
	}

	return first, second
}
