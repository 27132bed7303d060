package srfft

import "github.com/cwbudde/algo-srfft/internal/kernels"

// Direction selects the forward or inverse transform.
type Direction = kernels.Direction

const (
	// Forward computes X[k] = Σ x[j]·e^{-2πi·jk/n}.
	Forward = kernels.Forward
	// Inverse computes x[j] = (1/n)·Σ X[k]·e^{+2πi·jk/n}.
	Inverse = kernels.Inverse
)

// Variant identifies which of the four stage sequences a size runs.
type Variant = kernels.Variant

const (
	Variant1 = kernels.Variant1
	Variant2 = kernels.Variant2
	Variant3 = kernels.Variant3
	Variant4 = kernels.Variant4
)

// Supported transform lengths are the powers of two in [MinSize, MaxSize].
const (
	MinSize = kernels.MinSize
	MaxSize = kernels.MaxSize
)
