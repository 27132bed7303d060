// Command srfft benchmarks, verifies and demonstrates the split-radix
// transform.
package main

import (
	goflag "flag"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		klog.ErrorS(err, "command failed")
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "srfft",
		Short:         "Split-radix FFT tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	cmd.SetGlobalNormalizationFunc(wordSepNormalize)

	cmd.AddCommand(
		newBenchCommand(),
		newVerifyCommand(),
		newSpectrumCommand(),
		newInfoCommand(),
	)

	return cmd
}

// wordSepNormalize accepts klog's underscore flags in dashed form as well.
func wordSepNormalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}

	return pflag.NormalizedName(name)
}
