package kernels

import (
	"math"

	"github.com/cwbudde/algo-srfft/internal/cpu"
)

// Vec2 packs two complex numbers as (re0, im0, re1, im1), the contents of one
// 256-bit register. Every stage kernel is written against this type only, so
// a wider backend replaces these helpers and nothing else.
type Vec2 [4]float64

// fused selects math.FMA in the complex multiplies. Without hardware FMA the
// runtime falls back to an exact software routine that is far slower than a
// separate multiply and add.
var fused = cpu.DetectFeatures().FusedMultiplyAdd()

// Load reads the vector starting at b[i].
func Load(b []float64, i int) Vec2 {
	return Vec2(b[i : i+4])
}

// Store writes v to b[i:i+4].
func (v Vec2) Store(b []float64, i int) {
	*(*Vec2)(b[i : i+4]) = v
}

// Broadcast loads the complex number at b[i:i+2] into both lanes.
func Broadcast(b []float64, i int) Vec2 {
	re, im := b[i], b[i+1]
	return Vec2{re, im, re, im}
}

func splat(c complex128) Vec2 {
	return Vec2{real(c), imag(c), real(c), imag(c)}
}

// Add returns v + o lane-wise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v - o lane-wise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Scale multiplies every component by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Rotate multiplies both lanes by ±i: real and imaginary parts trade places
// and sign flips one of them. sign is one of the Direction rotation vectors.
func (v Vec2) Rotate(sign Vec2) Vec2 {
	return Vec2{v[1] * sign[0], v[0] * sign[1], v[3] * sign[2], v[2] * sign[3]}
}

// Unpack regroups two vectors by lane: lo holds lane 0 of a and b, hi holds
// lane 1 of a and b.
func Unpack(a, b Vec2) (lo, hi Vec2) {
	return Vec2{a[0], a[1], b[0], b[1]}, Vec2{a[2], a[3], b[2], b[3]}
}

// Complex returns lane l as a complex128.
func (v Vec2) Complex(l int) complex128 {
	return complex(v[2*l], v[2*l+1])
}

// Mul returns the lane-wise complex product a·w.
func Mul(a, w Vec2) Vec2 {
	if fused {
		return Vec2{
			math.FMA(a[0], w[0], -a[1]*w[1]),
			math.FMA(a[1], w[0], a[0]*w[1]),
			math.FMA(a[2], w[2], -a[3]*w[3]),
			math.FMA(a[3], w[2], a[2]*w[3]),
		}
	}

	return Vec2{
		a[0]*w[0] - a[1]*w[1],
		a[1]*w[0] + a[0]*w[1],
		a[2]*w[2] - a[3]*w[3],
		a[3]*w[2] + a[2]*w[3],
	}
}

// MulT returns the lane-wise product a·conj(w).
func MulT(a, w Vec2) Vec2 {
	if fused {
		return Vec2{
			math.FMA(a[0], w[0], a[1]*w[1]),
			math.FMA(a[1], w[0], -a[0]*w[1]),
			math.FMA(a[2], w[2], a[3]*w[3]),
			math.FMA(a[3], w[2], -a[2]*w[3]),
		}
	}

	return Vec2{
		a[0]*w[0] + a[1]*w[1],
		a[1]*w[0] - a[0]*w[1],
		a[2]*w[2] + a[3]*w[3],
		a[3]*w[2] - a[2]*w[3],
	}
}
