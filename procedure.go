package srfft

import (
	"fmt"

	"github.com/cwbudde/algo-srfft/internal/kernels"
)

// Procedure is the immutable per-size state: the stage sequence and the
// twiddle and swap tables. It is safe for concurrent use and may outlive the
// transformers created from it.
type Procedure struct {
	n    int
	exec *kernels.Executor
}

// CreateProcedure validates n and builds its tables. n must be a power of two
// between MinSize and MaxSize; anything else fails with ErrUnsupportedSize.
func CreateProcedure(n int) (*Procedure, error) {
	if !kernels.ValidSize(n) {
		return nil, fmt.Errorf("%w: n=%d", ErrUnsupportedSize, n)
	}

	return &Procedure{n: n, exec: kernels.NewExecutor(n)}, nil
}

// Len returns the transform length.
func (p *Procedure) Len() int {
	return p.n
}

// Variant returns the stage sequence selected for the size.
func (p *Procedure) Variant() Variant {
	return p.exec.Plan().Variant
}

// NormalStages returns the number of radix-4 stages between the initial and
// the terminal stage.
func (p *Procedure) NormalStages() int {
	return p.exec.Plan().NormalStages
}

// TableLen returns the twiddle table size in float64 values.
func (p *Procedure) TableLen() int {
	return p.exec.Table().Len()
}

// CreateTransformer returns a forward transformer with fresh buffers.
func (p *Procedure) CreateTransformer() *Transformer {
	return newTransformer(p, Forward)
}

// CreateInverseTransformer returns an inverse transformer with fresh
// buffers. Its output is scaled by 1/n.
func (p *Procedure) CreateInverseTransformer() *Transformer {
	return newTransformer(p, Inverse)
}
