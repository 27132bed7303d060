package kernels

// TypeA is the plain sum/difference butterfly: (a+c, a-c).
func TypeA(a, c Vec2) (Vec2, Vec2) {
	return a.Add(c), a.Sub(c)
}

// TypeB is TypeA with the operand roles swapped: (b+c, b-c).
func TypeB(c, b Vec2) (Vec2, Vec2) {
	return b.Add(c), b.Sub(c)
}

// TypeCI combines with a fixed quarter-turn phase: (a+b, rot·(a-b)).
// The rotation is a lane swap plus a sign flip, so it is exact.
func TypeCI(a, b, rot Vec2) (Vec2, Vec2) {
	return a.Add(b), a.Sub(b).Rotate(rot)
}

// TypeC is the conjugate-pair combine of a split-radix step:
// (a·w + b·w̄, rot·(a·w - b·w̄)). The inverse direction swaps the roles of
// w and w̄, since tables always hold forward roots.
func TypeC(a, b, w Vec2, d Direction) (Vec2, Vec2) {
	var aw, bw Vec2
	if d == Inverse {
		aw, bw = MulT(a, w), Mul(b, w)
	} else {
		aw, bw = Mul(a, w), MulT(b, w)
	}

	return TypeCI(aw, bw, d.Rotation())
}
