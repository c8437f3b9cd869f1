package curve25519

import "github.com/MuntashirAkon/spake2-go/internal/field"

// cmovCached sets *r to s, in constant time, iff b == 1.
func cmovCached(r *Cached, s Cached, b uint32) {
	field.Cmov(&r.YplusX, s.YplusX, b)
	field.Cmov(&r.YminusX, s.YminusX, b)
	field.Cmov(&r.Z, s.Z, b)
	field.Cmov(&r.T2d, s.T2d, b)
}

// negateCached returns a cached point with the sign of its X
// coordinate flipped: swap YplusX/YminusX, negate T2d. Z is
// unchanged. This is what lets a single 8-entry table of positive
// multiples serve 16 signed 4-bit window digits.
func negateCached(c Cached) Cached {
	return Cached{
		YplusX:  c.YminusX,
		YminusX: c.YplusX,
		Z:       c.Z,
		T2d:     field.Negate(field.Carry(c.T2d)),
	}
}

// selectCached does a constant-time lookup of table[|digit|] negated
// according to the sign of digit, where table holds {1P, 2P, ..., 8P}
// at indices {0, ..., 7} and digit is in [-8, 8].
func selectCached(table *[8]Cached, digit int8) Cached {
	sign := uint32(digit) >> 31 // 1 if digit < 0, else 0
	absDigit := (digit ^ (-int8(sign))) + int8(sign)

	var r Cached
	// r starts at the identity's cached form (YplusX=YminusX=Z=1, T2d=0).
	r.YplusX = field.Add(field.One(), field.Zero())
	r.YminusX = field.Add(field.One(), field.Zero())
	r.Z = field.Add(field.One(), field.Zero())
	r.T2d = field.Add(field.Zero(), field.Zero())

	for i := 0; i < 8; i++ {
		b := equal(absDigit, int8(i+1))
		cmovCached(&r, table[i], b)
	}

	neg := negateCached(r)
	cmovCached(&r, neg, sign)
	return r
}

// equal returns 1 if a == b, else 0, without branching. a is derived
// from a secret scalar digit, so the comparison itself must be
// data-independent: a^b is zero only on equality, and the unsigned
// decrement turns exactly that case into a borrow out of the top bit.
func equal(a, b int8) uint32 {
	x := uint32(uint8(a ^ b))
	x--
	return x >> 31
}

// cmovPrecomp sets *r to s, in constant time, iff b == 1.
func cmovPrecomp(r *AffinePrecomp, s AffinePrecomp, b uint32) {
	field.Cmov(&r.YplusX, s.YplusX, b)
	field.Cmov(&r.YminusX, s.YminusX, b)
	field.Cmov(&r.XY2d, s.XY2d, b)
}

// negatePrecomp mirrors negateCached for the affine precomputed form.
func negatePrecomp(c AffinePrecomp) AffinePrecomp {
	return AffinePrecomp{
		YplusX:  c.YminusX,
		YminusX: c.YplusX,
		XY2d:    field.Negate(field.Carry(c.XY2d)),
	}
}

// selectPrecomp is selectCached's counterpart for a fixed-base table of
// affine precomputed points.
func selectPrecomp(table *[8]AffinePrecomp, digit int8) AffinePrecomp {
	sign := uint32(digit) >> 31
	absDigit := (digit ^ (-int8(sign))) + int8(sign)

	var r AffinePrecomp
	r.YplusX = field.Add(field.One(), field.Zero())
	r.YminusX = field.Add(field.One(), field.Zero())
	r.XY2d = field.Add(field.Zero(), field.Zero())

	for i := 0; i < 8; i++ {
		b := equal(absDigit, int8(i+1))
		cmovPrecomp(&r, table[i], b)
	}

	neg := negatePrecomp(r)
	cmovPrecomp(&r, neg, sign)
	return r
}
