package main

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	srfft "github.com/cwbudde/algo-srfft"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/dsp/fourier"
	"k8s.io/klog/v2"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundtrip = "roundtrip"
)

type benchOptions struct {
	sizes  string
	iters  int
	warmup int
	mode   string
	seed   uint64
}

type benchResult struct {
	size    int
	mode    string
	impl    string
	nsPerOp float64
}

func newBenchCommand() *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the transform against gonum's FFT",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizes, err := parseSizes(opts.sizes)
			if err != nil {
				return err
			}

			modes, err := resolveModes(opts.mode)
			if err != nil {
				return err
			}

			if opts.iters < 1 || opts.warmup < 0 {
				return fmt.Errorf("iters must be positive and warmup non-negative")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "iters=%d warmup=%d\n", opts.iters, opts.warmup)
			fmt.Fprintf(out, "%8s  %10s  %8s  %12s\n", "size", "mode", "impl", "ns/op")

			rng := rand.New(rand.NewPCG(opts.seed, opts.seed))

			for _, n := range sizes {
				for _, mode := range modes {
					for _, res := range benchmarkSize(rng, n, opts.iters, opts.warmup, mode) {
						fmt.Fprintf(out, "%8d  %10s  %8s  %12.1f\n", res.size, res.mode, res.impl, res.nsPerOp)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sizes, "sizes", "1024,4096,16384,65536", "comma-separated sizes")
	cmd.Flags().IntVar(&opts.iters, "iters", 50, "benchmark iterations")
	cmd.Flags().IntVar(&opts.warmup, "warmup", 5, "warmup iterations")
	cmd.Flags().StringVar(&opts.mode, "mode", modeForward, "forward, inverse, roundtrip or all")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "rng seed")

	return cmd
}

func resolveModes(mode string) ([]string, error) {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundtrip}, nil
	case modeForward, modeInverse, modeRoundtrip:
		return []string{mode}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func benchmarkSize(rng *rand.Rand, n, iters, warmup int, mode string) []benchResult {
	proc, err := srfft.CreateProcedure(n)
	if err != nil {
		klog.ErrorS(err, "skipping size", "n", n)
		return nil
	}

	fwd := proc.CreateTransformer()
	inv := proc.CreateInverseTransformer()

	in := fwd.Input()
	for i := range in {
		in[i] = rng.Float64()*2 - 1
	}

	fwd.Transform()
	copy(inv.Input(), fwd.Output())

	src := fwd.AppendOutput(nil)
	seq := make([]complex128, n)
	for i := range seq {
		seq[i] = complex(in[2*i], in[2*i+1])
	}

	gonum := fourier.NewCmplxFFT(n)
	dst := make([]complex128, n)

	var ours, theirs func()

	switch mode {
	case modeInverse:
		ours = inv.Transform
		theirs = func() { gonum.Sequence(dst, src) }
	case modeRoundtrip:
		ours = func() {
			fwd.Transform()
			copy(inv.Input(), fwd.Output())
			inv.Transform()
		}
		theirs = func() {
			gonum.Coefficients(dst, seq)
			gonum.Sequence(dst, dst)
		}
	default:
		ours = fwd.Transform
		theirs = func() { gonum.Coefficients(dst, seq) }
	}

	klog.V(2).InfoS("benchmarking", "n", n, "mode", mode, "variant", proc.Variant())

	return []benchResult{
		{size: n, mode: mode, impl: "srfft", nsPerOp: timeIt(ours, iters, warmup)},
		{size: n, mode: mode, impl: "gonum", nsPerOp: timeIt(theirs, iters, warmup)},
	}
}

func timeIt(fn func(), iters, warmup int) float64 {
	for range warmup {
		fn()
	}

	runtime.GC()

	start := time.Now()
	for range iters {
		fn()
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}
