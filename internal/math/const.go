package math

import "math"

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// Sqrt1_2 is √½, the magnitude of both components of e^{±iπ/4}.
const Sqrt1_2 = math.Sqrt2 / 2
