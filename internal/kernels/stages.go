package kernels

// Buffers hold 2n float64 values, read as M = n/2 vectors of two lanes.
// Lane 0 runs the M-point transform of the even samples and lane 1 that of
// the odd samples; nothing mixes the lanes before the terminal stage.
//
// The radix-4 passes are self-sorting. Each one reads its blocks front to
// back and scatters the four results of a butterfly over the four quarters
// of dst, so after the last pass a lane holds its transform in natural
// order, or, for sizes with a radix-2 terminal, as adjacent pairs that one
// plain sum/difference turns into (X[m], X[m+M/2]).
//
// A butterfly takes p, q from the first half of a block and u, v from the
// second and stores y0..y3 in quarters 0..3. The iterations of a block fall
// into three runs by the split-radix role of their operands:
//
//	A-AC  a = p ± q,  c = TypeC(u, v, w2)            y0,y2 = a0 ± c0, y1,y3 = a1 ± c1
//	C-AB  a = p ± q,  b = v ± u                      y0,y2 = TypeC(a0, b0, w0), y1,y3 = TypeC(a1, b1, w1)
//	B-CB  c = TypeC(p, q, w2),  b = v ± u            y0,y2 = b0 ± c0, y1,y3 = b1 ± c1
//
// A-AC and the first C-AB run fill the even output slots of the block, the
// second C-AB run and B-CB the odd ones.

// split holds the run lengths of a block of count vector pairs.
type split struct {
	a, c1, c2, b int
}

func splitFor(count int) split {
	b := count / 6
	a := b + 1
	half := count / 4

	return split{a: a, c1: max(half-a, 0), c2: half - b, b: b}
}

func (s split) total() int {
	return s.a + s.c1 + s.c2 + s.b
}

// operands locates q, u and v relative to p and gives the read step between
// iterations, all in float64 elements.
type operands struct {
	step, q, u, v int
}

func (o operands) load(src []float64, i int) (p, q, u, v Vec2) {
	return Load(src, i), Load(src, i+o.q), Load(src, i+o.u), Load(src, i+o.v)
}

func storeQuarters(dst []float64, o, quarter int, y0, y1, y2, y3 Vec2) {
	y0.Store(dst, o)
	y1.Store(dst, o+quarter)
	y2.Store(dst, o+2*quarter)
	y3.Store(dst, o+3*quarter)
}

// group carries the factors of one butterfly group. unit marks w0 = w2 = 1,
// where the twiddled combines reduce to TypeCI.
type group struct {
	w0, w1, w2 Vec2
	rot        Vec2
	d          Direction
	unit       bool
}

func (g *group) combine(a, b, w Vec2) (Vec2, Vec2) {
	if g.unit {
		return TypeCI(a, b, g.rot)
	}

	return TypeC(a, b, w, g.d)
}

func (g *group) aac(p, q, u, v Vec2) (y0, y1, y2, y3 Vec2) {
	a0, a1 := TypeA(p, q)
	c0, c1 := g.combine(u, v, g.w2)
	y0, y2 = TypeA(a0, c0)
	y1, y3 = TypeA(a1, c1)

	return y0, y1, y2, y3
}

func (g *group) cab(p, q, u, v Vec2) (y0, y1, y2, y3 Vec2) {
	a0, a1 := TypeA(p, q)
	b0, b1 := TypeB(u, v)
	y0, y2 = g.combine(a0, b0, g.w0)
	y1, y3 = TypeC(a1, b1, g.w1, g.d)

	return y0, y1, y2, y3
}

func (g *group) bcb(p, q, u, v Vec2) (y0, y1, y2, y3 Vec2) {
	c0, c1 := g.combine(p, q, g.w2)
	b0, b1 := TypeB(u, v)
	y0, y2 = TypeB(c0, b0)
	y1, y3 = TypeB(c1, b1)

	return y0, y1, y2, y3
}

// run processes one block. Reads start at in; out is the block's first
// slot within each quarter of dst.
func (g *group) run(dst, src []float64, in, out int, ops operands, sp split) {
	quarter := len(dst) / 4
	i, o := in, out

	for range sp.a {
		y0, y1, y2, y3 := g.aac(ops.load(src, i))
		storeQuarters(dst, o, quarter, y0, y1, y2, y3)
		i += ops.step
		o += 8
	}

	for range sp.c1 {
		y0, y1, y2, y3 := g.cab(ops.load(src, i))
		storeQuarters(dst, o, quarter, y0, y1, y2, y3)
		i += ops.step
		o += 8
	}

	o = out + 4

	for range sp.c2 {
		y0, y1, y2, y3 := g.cab(ops.load(src, i))
		storeQuarters(dst, o, quarter, y0, y1, y2, y3)
		i += ops.step
		o += 8
	}

	for range sp.b {
		y0, y1, y2, y3 := g.bcb(ops.load(src, i))
		storeQuarters(dst, o, quarter, y0, y1, y2, y3)
		i += ops.step
		o += 8
	}
}

// initialStage runs the first pass on the raw input. The whole buffer is a
// single block whose operands sit a quarter apart; p, u, q, v come from
// quarters 0, 1, 2, 3. Its factors are 1 and e^{∓iπ/4}, so no table is read.
func initialStage(dst, src []float64, d Direction) {
	if len(src) < 2*MinSize || len(src)%32 != 0 || len(dst) != len(src) {
		violate("initial", "buffer lengths %d -> %d", len(src), len(dst))
	}

	if aliased(dst, src) {
		violate("initial", "stage must run out of place")
	}

	quarter := len(src) / 4
	g := group{w1: splat(eighth), rot: d.Rotation(), d: d, unit: true}
	ops := operands{step: 4, q: 2 * quarter, u: quarter, v: 3 * quarter}

	g.run(dst, src, 0, 0, ops, splitFor(len(src)/8))
}

// normalStage runs one pass over len(order) groups. Slot s of tw holds the
// factors of group order[s]; groups are visited in slot order.
func normalStage(dst, src []float64, order []int, tw []float64, d Direction) {
	groups := len(order)
	if groups < 4 || len(src)%(16*groups) != 0 || len(dst) != len(src) {
		violate("normal", "%d groups do not tile a buffer of %d", groups, len(src))
	}

	if len(tw) != 6*groups {
		violate("normal", "table section has %d values, need %d", len(tw), 6*groups)
	}

	if aliased(dst, src) {
		violate("normal", "stage must run out of place")
	}

	count := len(src) / (8 * groups)
	ops := operands{step: 8, q: 4, u: 4 * count, v: 4*count + 4}
	sp := splitFor(count)
	rot := d.Rotation()

	for s, gi := range order {
		w := 6 * s
		g := group{
			w0:   Broadcast(tw, w),
			w1:   Broadcast(tw, w+2),
			w2:   Broadcast(tw, w+4),
			rot:  rot,
			d:    d,
			unit: gi == 0,
		}

		g.run(dst, src, 8*count*gi, 2*count*gi, ops, sp)
	}
}

func checkTerminal(op string, dst, src []float64, order []int, twm []float64) {
	if len(src)%16 != 0 || len(dst) != len(src) || len(order) != len(src)/16 {
		violate(op, "buffer lengths %d -> %d with %d slots", len(src), len(dst), len(order))
	}

	if len(twm) != len(src)/4 {
		violate(op, "table section %d for %d slots", len(twm), len(order))
	}

	if aliased(dst, src) {
		violate(op, "stage must run out of place")
	}
}

// radix2MergeStage finishes the last radix-2 level on runs of four vectors
// and merges the lanes of the result in the same pass.
func radix2MergeStage(dst, src []float64, order []int, twm []float64, d Direction) {
	checkTerminal("radix2+merge", dst, src, order, twm)

	for s, j := range order {
		i := 16 * j

		x0, x1 := TypeA(Load(src, i), Load(src, i+4))
		y0, y1 := TypeA(Load(src, i+8), Load(src, i+12))

		el, ol := Unpack(x0, y0)
		eh, oh := Unpack(x1, y1)
		mergeSlot(dst, s, el, ol, eh, oh, Load(twm, 4*s), d)
	}
}

// mergeStage merges natural-order lane transforms. Slot s reads bins 2j,
// 2j+1 and M/2+2j, M/2+2j+1 of both lanes, j = order[s].
func mergeStage(dst, src []float64, order []int, twm []float64, d Direction) {
	checkTerminal("merge", dst, src, order, twm)

	half := len(src) / 2

	for s, j := range order {
		el, ol := Unpack(Load(src, 8*j), Load(src, 8*j+4))
		eh, oh := Unpack(Load(src, half+8*j), Load(src, half+8*j+4))
		mergeSlot(dst, s, el, ol, eh, oh, Load(twm, 4*s), d)
	}
}

// mergeSlot forms X = E ± W·O for a bin pair and for its partner M/2 bins
// higher, whose factor is a quarter turn further round. The four results
// land in slot s of the four output quarters.
func mergeSlot(dst []float64, s int, el, ol, eh, oh, w Vec2, d Direction) {
	lo := d.Twiddle(ol, w)
	hi := d.Twiddle(oh, w).Rotate(d.Rotation())

	x0, x2 := TypeA(el, lo)
	x1, x3 := TypeA(eh, hi)

	storeQuarters(dst, 4*s, len(dst)/4, x0, x1, x2, x3)
}

// swapStage turns the slot order of the terminal stage into natural order
// in place. A pair names two vector slots of one quarter; the exchange is
// repeated in both halves, for each of their two quarters.
func swapStage(buf []float64, swaps [][2]int) {
	if len(buf)%16 != 0 {
		violate("swap", "buffer length %d", len(buf))
	}

	quarter := len(buf) / 4

	for _, p := range swaps {
		a, b := 4*p[0], 4*p[1]
		if a < 0 || b+4 > quarter {
			violate("swap", "pair %v outside a quarter of %d", p, quarter/4)
		}

		for off := 0; off < len(buf); off += quarter {
			va, vb := Load(buf, off+a), Load(buf, off+b)
			vb.Store(buf, off+a)
			va.Store(buf, off+b)
		}
	}
}
