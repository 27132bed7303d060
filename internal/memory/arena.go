// Package memory provides 32-byte aligned float64 storage carved into
// disjoint named regions of a single allocation.
package memory

import "unsafe"

// Alignment is the byte alignment of every buffer handed out by this package.
const Alignment = 32

const (
	floatSize = 8
	// Granule is the region granularity in float64 elements. Rounding every
	// region to a multiple of it keeps each region aligned when the arena is.
	Granule = Alignment / floatSize
)

// AllocAligned returns a zeroed slice of n float64 values whose first element
// is Alignment-byte aligned. The slice capacity equals its length.
func AllocAligned(n int) []float64 {
	if n <= 0 {
		return nil
	}

	backing := make([]float64, n+Granule-1)

	off := 0
	if r := uintptr(unsafe.Pointer(&backing[0])) % Alignment; r != 0 {
		off = int((Alignment - r) / floatSize)
	}

	return backing[off : off+n : off+n]
}

// IsAligned reports whether the first element of s is Alignment-byte aligned.
// Empty slices are considered aligned.
func IsAligned(s []float64) bool {
	if len(s) == 0 {
		return true
	}

	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0
}

// Region names a span of an arena by offset and length, both in float64
// elements.
type Region struct {
	Offset int
	Len    int
}

// End returns the first element past the region.
func (r Region) End() int {
	return r.Offset + r.Len
}

// Layout reserves regions one after another. Each reservation starts on a
// Granule boundary. The zero value is an empty layout ready for use.
type Layout struct {
	size int
}

// Reserve appends a region of n elements to the layout.
func (l *Layout) Reserve(n int) Region {
	if n < 0 {
		panic("memory: negative region length")
	}

	r := Region{Offset: l.size, Len: n}
	l.size += roundUp(n)

	return r
}

// Size returns the number of elements an arena needs to back the layout.
func (l *Layout) Size() int {
	return l.size
}

// Arena owns one aligned allocation. Slices obtained through Slice alias the
// arena and stay valid for its lifetime.
//
// An Arena is not safe for concurrent mutation; regions handed to different
// goroutines must not overlap.
type Arena struct {
	data []float64
}

// NewArena allocates storage for every region reserved in l.
func NewArena(l *Layout) *Arena {
	return &Arena{data: AllocAligned(l.Size())}
}

// Len returns the arena size in float64 elements.
func (a *Arena) Len() int {
	return len(a.data)
}

// Slice returns the arena's view of r. The capacity is clipped to the region
// so an append can never spill into a neighbour.
func (a *Arena) Slice(r Region) []float64 {
	if r.Offset < 0 || r.End() > len(a.data) {
		panic("memory: region outside arena")
	}

	return a.data[r.Offset:r.End():r.End()]
}

func roundUp(n int) int {
	return (n + Granule - 1) &^ (Granule - 1)
}
