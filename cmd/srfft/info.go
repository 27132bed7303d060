package main

import (
	"fmt"
	"runtime"

	srfft "github.com/cwbudde/algo-srfft"
	"github.com/cwbudde/algo-srfft/internal/cpu"
	"github.com/spf13/cobra"
	simdcpu "github.com/tphakala/simd/cpu"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected backend and detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cpu.DetectFeatures()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "backend:      %s\n", srfft.ComplexF64.Name())
			fmt.Fprintf(out, "go:           %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "fma:          %t\n", f.FusedMultiplyAdd())
			fmt.Fprintf(out, "vector width: %d x float64\n", f.VectorWidth())
			fmt.Fprintf(out, "avx2:         %t\n", f.HasAVX2)
			fmt.Fprintf(out, "neon:         %t\n", f.HasNEON)
			fmt.Fprintf(out, "simd helpers: %s\n", simdcpu.Info())
			fmt.Fprintf(out, "min size:     %d\n", srfft.MinSize)

			return nil
		},
	}
}
