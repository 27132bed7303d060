package kernels

// Direction selects the sign of the exponent. Forward computes
// X[k] = Σ x[j]·e^{-2πi·jk/n}; Inverse uses e^{+2πi·jk/n} and leaves the
// 1/n normalisation to the caller.
type Direction uint8

const (
	Forward Direction = iota
	Inverse
)

var (
	// (re, im)·(-i) = (im, -re)
	rotateForward = Vec2{1, -1, 1, -1}
	// (re, im)·(+i) = (-im, re)
	rotateInverse = Vec2{-1, 1, -1, 1}
)

// Rotation returns the sign vector for the quarter turn W_4 in this
// direction: -i forward, +i inverse.
func (d Direction) Rotation() Vec2 {
	if d == Inverse {
		return rotateInverse
	}

	return rotateForward
}

// Twiddle multiplies a by a table factor, conjugating the factor for the
// inverse direction. Tables always hold forward roots.
func (d Direction) Twiddle(a, w Vec2) Vec2 {
	if d == Inverse {
		return MulT(a, w)
	}

	return Mul(a, w)
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}
