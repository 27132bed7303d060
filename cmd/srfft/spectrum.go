package main

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"slices"

	srfft "github.com/cwbudde/algo-srfft"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const (
	windowHann = "hann"
	windowRect = "rect"
)

type spectrumOptions struct {
	size    int
	channel int
	offset  int
	top     int
	window  string
}

type peak struct {
	bin  int
	freq float64
	dB   float64
}

func newSpectrumCommand() *cobra.Command {
	opts := spectrumOptions{}

	cmd := &cobra.Command{
		Use:   "spectrum FILE.wav",
		Short: "Print the strongest spectral peaks of one window of a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.window != windowHann && opts.window != windowRect {
				return fmt.Errorf("unknown window %q", opts.window)
			}

			if opts.top < 1 {
				return fmt.Errorf("top must be positive")
			}

			proc, err := srfft.CreateProcedure(opts.size)
			if err != nil {
				return err
			}

			samples, rate, err := readChannel(args[0], opts.channel, opts.offset, opts.size)
			if err != nil {
				return err
			}

			peaks := analyze(proc, samples, rate, opts.window, opts.top)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d Hz, window %d (%s)\n", args[0], rate, opts.size, opts.window)
			fmt.Fprintf(out, "%6s  %10s  %8s\n", "bin", "Hz", "dBFS")

			for _, p := range peaks {
				fmt.Fprintf(out, "%6d  %10.1f  %8.1f\n", p.bin, p.freq, p.dB)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", 4096, "window length, a power of two >= 16")
	cmd.Flags().IntVar(&opts.channel, "channel", 0, "channel to analyse")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "frames to skip before the window")
	cmd.Flags().IntVar(&opts.top, "top", 5, "number of peaks to print")
	cmd.Flags().StringVar(&opts.window, "window", windowHann, "window function: hann or rect")

	return cmd
}

// readChannel decodes one channel of a PCM WAV file, scaled to [-1, 1).
// Frames past the end of the file are returned as zeros.
func readChannel(path string, channel, offset, size int) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	if channel < 0 || channel >= channels {
		return nil, 0, fmt.Errorf("channel %d out of range, file has %d", channel, channels)
	}

	if offset < 0 {
		return nil, 0, fmt.Errorf("negative offset %d", offset)
	}

	klog.V(2).InfoS("decoding", "path", path, "rate", format.SampleRate, "channels", channels, "bitDepth", bitDepth)

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	scale := 1 / math.Ldexp(1, bitDepth-1)
	frames := len(buf.Data) / channels

	samples := make([]float64, size)
	for i := range size {
		frame := offset + i
		if frame >= frames {
			klog.V(1).InfoS("zero padding window", "frames", frames, "missing", size-i)
			break
		}

		samples[i] = float64(buf.Data[frame*channels+channel]) * scale
	}

	return samples, format.SampleRate, nil
}

// analyze windows and transforms the first proc.Len() samples and returns
// the top local maxima of the one-sided magnitude spectrum, strongest first.
func analyze(proc *srfft.Procedure, samples []float64, rate int, window string, top int) []peak {
	size := proc.Len()
	tr := proc.CreateTransformer()
	in := tr.Input()

	var gain float64

	for i, s := range samples[:size] {
		w := 1.0
		if window == windowHann {
			w = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(size))
		}

		gain += w
		in[2*i] = s * w
		in[2*i+1] = 0
	}

	tr.Transform()

	spectrum := tr.AppendOutput(make([]complex128, 0, size))
	mags := make([]float64, size/2+1)

	for k := range mags {
		mags[k] = 2 * cmplx.Abs(spectrum[k]) / gain
	}

	var peaks []peak

	for k := 1; k < len(mags)-1; k++ {
		if mags[k] > mags[k-1] && mags[k] >= mags[k+1] {
			peaks = append(peaks, peak{
				bin:  k,
				freq: float64(k) * float64(rate) / float64(size),
				dB:   20 * math.Log10(math.Max(mags[k], 1e-12)),
			})
		}
	}

	slices.SortFunc(peaks, func(a, b peak) int {
		return cmp.Compare(b.dB, a.dB)
	})

	return peaks[:min(top, len(peaks))]
}
