package srfft

import (
	"fmt"

	"github.com/cwbudde/algo-srfft/internal/cpu"
)

// Interface is the transformer surface shared by every factory.
type Interface interface {
	Input() []float64
	Output() []float64
	Transform()
	Len() int
}

// Factory creates transformers by size and direction. It exists so callers
// can swap implementations (for example a comparison library) behind one
// signature.
type Factory interface {
	Name() string
	Create(n int, dir Direction) (Interface, error)
}

// ComplexF64 is the factory for this package's interleaved complex128
// transform.
var ComplexF64 Factory = complexF64{}

type complexF64 struct{}

// Name describes the kernel backend chosen for this process.
func (complexF64) Name() string {
	f := cpu.DetectFeatures()

	mul := "mul+add"
	if f.FusedMultiplyAdd() {
		mul = "fma"
	}

	return fmt.Sprintf("srfft/complex128 (%s, %s)", f.Architecture, mul)
}

func (complexF64) Create(n int, dir Direction) (Interface, error) {
	p, err := CreateProcedure(n)
	if err != nil {
		return nil, err
	}

	if dir == Inverse {
		return p.CreateInverseTransformer(), nil
	}

	return p.CreateTransformer(), nil
}
