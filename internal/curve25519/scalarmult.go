package curve25519

// recodeScalar splits a 256-bit scalar into 64 signed 4-bit digits,
// least significant first, using ref10's carry-propagating recoding:
// digits 0..62 lie in [-8, 7] and digit 63, which absorbs the final
// carry, lies in [0, 8]. The scalar's top bit must already be clear
// (true of both clamped Ed25519 scalars and scalars reduced mod the
// group order), so the final carry never overflows past digit 63.
func recodeScalar(s [32]byte) [64]int8 {
	var e [64]int8
	for i := 0; i < 32; i++ {
		e[2*i] = int8(s[i] & 15)
		e[2*i+1] = int8((s[i] >> 4) & 15)
	}

	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry
	return e
}

// buildTable computes the cached forms of 1P, 2P, ..., 8P from an
// extended point p, for use as a window-multiplication lookup table.
func buildTable(p Extended) [8]Cached {
	var table [8]Cached
	table[0] = p.ToCached()
	for i := 1; i < 8; i++ {
		table[i] = FromCompletedExtended(Add(p, table[i-1])).ToCached()
	}
	return table
}

// ScalarMultiply computes scalar*p via constant-time 4-bit signed
// windowed multiplication: a fresh table of {1P,...,8P} is built for p,
// then each of the 64 recoded digits is applied high to low as four
// doublings followed by one constant-time table lookup and add.
//
// scalar is interpreted as a little-endian integer whose top bit must
// be clear (see recodeScalar); the caller is responsible for any
// clamping or reduction mod the group order the calling protocol
// requires.
func ScalarMultiply(scalar [32]byte, p Extended) Extended {
	digits := recodeScalar(scalar)
	table := buildTable(p)

	r := IdentityExtended()
	for i := 63; i >= 0; i-- {
		r = FromCompletedExtended(Double(r.ToProjective()))
		r = FromCompletedExtended(Double(r.ToProjective()))
		r = FromCompletedExtended(Double(r.ToProjective()))
		r = FromCompletedExtended(Double(r.ToProjective()))

		t := selectCached(&table, digits[i])
		r = FromCompletedExtended(Add(r, t))
	}
	return r
}

// FixedTable holds the affine precomputed forms of 1P, ..., 8P for a
// fixed point P, built once and reused across many scalar
// multiplications against that same point (e.g. the generator).
type FixedTable [8]AffinePrecomp

// BuildFixedTable computes a FixedTable for p. Each entry is
// normalized to affine via a field inversion, so this is meant to run
// once per fixed point, not per scalar multiplication.
func BuildFixedTable(p Extended) FixedTable {
	cached := p.ToCached()
	var table FixedTable
	acc := p
	table[0] = acc.ToAffinePrecomp()
	for i := 1; i < 8; i++ {
		acc = FromCompletedExtended(Add(acc, cached))
		table[i] = acc.ToAffinePrecomp()
	}
	return table
}

// ScalarMultiplyFixedBase computes scalar*p using a table built in
// advance by BuildFixedTable, via the same windowed digit recoding as
// ScalarMultiply but with the cheaper mixed-addition (madd) formula
// against the precomputed affine table entries instead of a fresh
// Cached table built from p on every call.
func ScalarMultiplyFixedBase(scalar [32]byte, table *FixedTable) Extended {
	digits := recodeScalar(scalar)

	r := IdentityExtended()
	for i := 63; i >= 0; i-- {
		r = FromCompletedExtended(Double(r.ToProjective()))
		r = FromCompletedExtended(Double(r.ToProjective()))
		r = FromCompletedExtended(Double(r.ToProjective()))
		r = FromCompletedExtended(Double(r.ToProjective()))

		t := selectPrecomp((*[8]AffinePrecomp)(table), digits[i])
		r = FromCompletedExtended(MixedAdd(r, t))
	}
	return r
}
