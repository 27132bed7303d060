package srfft

import (
	"fmt"

	"github.com/cwbudde/algo-srfft/internal/memory"
	"github.com/tphakala/simd/f64"
)

// Transformer runs one procedure against buffers it owns exclusively. It is
// not safe for concurrent use; create one per goroutine.
type Transformer struct {
	proc  *Procedure
	dir   Direction
	arena *memory.Arena
	in    []float64
	out   []float64
	tmp   []float64
	scale float64
}

func newTransformer(p *Procedure, dir Direction) *Transformer {
	var layout memory.Layout

	in := layout.Reserve(2 * p.n)
	out := layout.Reserve(2 * p.n)
	tmp := layout.Reserve(2 * p.n)

	arena := memory.NewArena(&layout)

	return &Transformer{
		proc:  p,
		dir:   dir,
		arena: arena,
		in:    arena.Slice(in),
		out:   arena.Slice(out),
		tmp:   arena.Slice(tmp),
		scale: 1 / float64(p.n),
	}
}

// Input returns the 2n interleaved values read by Transform. Callers write
// it directly; Transform never modifies it.
func (t *Transformer) Input() []float64 {
	return t.in
}

// Output returns the 2n interleaved values written by Transform.
func (t *Transformer) Output() []float64 {
	return t.out
}

// Transform recomputes Output from the current Input. It performs no
// validation and does not allocate.
func (t *Transformer) Transform() {
	t.proc.exec.Run(t.dir, t.in, t.out, t.tmp)

	if t.dir == Inverse {
		f64.Scale(t.out, t.out, t.scale)
	}
}

// Len returns the transform length in complex samples.
func (t *Transformer) Len() int {
	return t.proc.n
}

// Variant returns the stage sequence of the underlying procedure.
func (t *Transformer) Variant() Variant {
	return t.proc.Variant()
}

// Direction reports whether the transformer runs forward or inverse.
func (t *Transformer) Direction() Direction {
	return t.dir
}

// Procedure returns the procedure the transformer was created from.
func (t *Transformer) Procedure() *Procedure {
	return t.proc
}

// LoadComplex copies x into Input. len(x) must equal Len().
func (t *Transformer) LoadComplex(x []complex128) error {
	if len(x) != t.proc.n {
		return fmt.Errorf("%w: got %d samples, want %d", ErrLengthMismatch, len(x), t.proc.n)
	}

	for i, v := range x {
		t.in[2*i] = real(v)
		t.in[2*i+1] = imag(v)
	}

	return nil
}

// AppendOutput appends Output as complex values to dst and returns the
// extended slice.
func (t *Transformer) AppendOutput(dst []complex128) []complex128 {
	for i := 0; i < len(t.out); i += 2 {
		dst = append(dst, complex(t.out[i], t.out[i+1]))
	}

	return dst
}
