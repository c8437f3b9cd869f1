// Package field implements arithmetic over GF(2^255-19), the base field
// of the Ed25519 curve.
//
// A field element is stored as ten limbs of mixed radix 2^25.5 (even
// limbs hold 26 bits, odd limbs hold 25 bits), following the public
// domain "ref10" code from SUPERCOP. Two Go types carry ref10's
// fe/fe_loose distinction at the type level: Element holds limbs
// within their canonical tight range and is the only type Multiply
// and Square accept; Loose holds limbs that may have accumulated
// slack bits from Add, Sub, or Negate and must pass through Carry
// before being multiplied. The compiler enforces this distinction;
// there is no implicit conversion between the two.
package field

import "crypto/subtle"

// Element is a field element with limbs in tight range. Limbs are
// signed, as Carry leaves them: even-indexed limbs lie within about
// ±2^25 and odd-indexed limbs within about ±2^24, and they are not kept
// non-negative.
type Element [10]int32

// Loose is a field element whose limbs may carry a small amount of
// slack beyond the tight range. Produced by Add, Sub, and Negate;
// reduced back to an Element by Carry.
type Loose [10]int32

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element { return Element{1} }

// twoP holds 2p in the same limb layout as a tight Element, used by Sub
// and Negate to keep intermediate values non-negative.
var twoP = Element{
	0x7ffffda, 0x3fffffe, 0x7fffffe, 0x3fffffe, 0x7fffffe,
	0x3fffffe, 0x7fffffe, 0x3fffffe, 0x7fffffe, 0x3fffffe,
}

// load3 reads three little-endian bytes as an int64.
func load3(in []byte) int64 {
	var r int64
	r = int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	return r
}

// load4 reads four little-endian bytes as an int64.
func load4(in []byte) int64 {
	var r int64
	r = int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	r |= int64(in[3]) << 24
	return r
}

// FromBytesStrict decodes 32 little-endian bytes into a tight element.
// The precondition is that the top bit of the last byte is clear; the
// caller (curve point decode, which needs that bit as a sign flag) is
// responsible for stripping it first. Unlike the reference C, which
// asserts, this returns ok=false rather than aborting the process.
func FromBytesStrict(s [32]byte) (e Element, ok bool) {
	if s[31]&0x80 != 0 {
		return Element{}, false
	}
	return fromBytesUnchecked(s), true
}

// FromBytes decodes 32 bytes into a tight element, masking off the top
// bit before decoding so it never fails.
func FromBytes(s [32]byte) Element {
	s[31] &= 0x7f
	return fromBytesUnchecked(s)
}

func fromBytesUnchecked(s [32]byte) Element {
	h0 := load4(s[0:])
	h1 := load3(s[4:]) << 6
	h2 := load3(s[7:]) << 5
	h3 := load3(s[10:]) << 3
	h4 := load3(s[13:]) << 2
	h5 := load4(s[16:])
	h6 := load3(s[20:]) << 7
	h7 := load3(s[23:]) << 5
	h8 := load3(s[26:]) << 4
	h9 := (load3(s[29:]) & 0x7fffff) << 2

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25
	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	return Element{
		int32(h0), int32(h1), int32(h2), int32(h3), int32(h4),
		int32(h5), int32(h6), int32(h7), int32(h8), int32(h9),
	}
}

// Bytes serializes a tight element to its fully reduced, canonical
// 32-byte little-endian encoding.
func (e Element) Bytes() [32]byte {
	h0, h1, h2, h3, h4 := int64(e[0]), int64(e[1]), int64(e[2]), int64(e[3]), int64(e[4])
	h5, h6, h7, h8, h9 := int64(e[5]), int64(e[6]), int64(e[7]), int64(e[8]), int64(e[9])

	q := (19*h9 + (1 << 24)) >> 25
	q = (h0 + q) >> 26
	q = (h1 + q) >> 25
	q = (h2 + q) >> 26
	q = (h3 + q) >> 25
	q = (h4 + q) >> 26
	q = (h5 + q) >> 25
	q = (h6 + q) >> 26
	q = (h7 + q) >> 25
	q = (h8 + q) >> 26
	q = (h9 + q) >> 25

	h0 += 19 * q

	c0 := h0 >> 26
	h1 += c0
	h0 -= c0 << 26
	c1 := h1 >> 25
	h2 += c1
	h1 -= c1 << 25
	c2 := h2 >> 26
	h3 += c2
	h2 -= c2 << 26
	c3 := h3 >> 25
	h4 += c3
	h3 -= c3 << 25
	c4 := h4 >> 26
	h5 += c4
	h4 -= c4 << 26
	c5 := h5 >> 25
	h6 += c5
	h5 -= c5 << 25
	c6 := h6 >> 26
	h7 += c6
	h6 -= c6 << 26
	c7 := h7 >> 25
	h8 += c7
	h7 -= c7 << 25
	c8 := h8 >> 26
	h9 += c8
	h8 -= c8 << 26
	c9 := h9 >> 25
	h9 -= c9 << 25

	var s [32]byte
	s[0] = byte(h0)
	s[1] = byte(h0 >> 8)
	s[2] = byte(h0 >> 16)
	s[3] = byte((h0 >> 24) | (h1 << 2))
	s[4] = byte(h1 >> 6)
	s[5] = byte(h1 >> 14)
	s[6] = byte((h1 >> 22) | (h2 << 3))
	s[7] = byte(h2 >> 5)
	s[8] = byte(h2 >> 13)
	s[9] = byte((h2 >> 21) | (h3 << 5))
	s[10] = byte(h3 >> 3)
	s[11] = byte(h3 >> 11)
	s[12] = byte((h3 >> 19) | (h4 << 6))
	s[13] = byte(h4 >> 2)
	s[14] = byte(h4 >> 10)
	s[15] = byte(h4 >> 18)
	s[16] = byte(h5)
	s[17] = byte(h5 >> 8)
	s[18] = byte(h5 >> 16)
	s[19] = byte((h5 >> 24) | (h6 << 1))
	s[20] = byte(h6 >> 7)
	s[21] = byte(h6 >> 15)
	s[22] = byte((h6 >> 23) | (h7 << 3))
	s[23] = byte(h7 >> 5)
	s[24] = byte(h7 >> 13)
	s[25] = byte((h7 >> 21) | (h8 << 4))
	s[26] = byte(h8 >> 4)
	s[27] = byte(h8 >> 12)
	s[28] = byte((h8 >> 20) | (h9 << 6))
	s[29] = byte(h9 >> 2)
	s[30] = byte(h9 >> 10)
	s[31] = byte(h9 >> 18)
	return s
}

// Add returns a loose element holding e+f, limb-wise.
func Add(e, f Element) Loose {
	var h Loose
	for i := range e {
		h[i] = e[i] + f[i]
	}
	return h
}

// Sub returns a loose element holding e-f. 2p is added first so every
// limb stays non-negative.
func Sub(e, f Element) Loose {
	var h Loose
	for i := range e {
		h[i] = e[i] + twoP[i] - f[i]
	}
	return h
}

// Negate returns a loose element holding -e, computed as 2p-e.
func Negate(e Element) Loose {
	var h Loose
	for i := range e {
		h[i] = twoP[i] - e[i]
	}
	return h
}

// Carry reduces a loose element back into tight range.
func Carry(l Loose) Element {
	h0, h1, h2, h3, h4 := int64(l[0]), int64(l[1]), int64(l[2]), int64(l[3]), int64(l[4])
	h5, h6, h7, h8, h9 := int64(l[5]), int64(l[6]), int64(l[7]), int64(l[8]), int64(l[9])
	return carryLimbs(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

// carryLimbs runs the standard two-pass radix-25.5 carry chain over ten
// int64 accumulators and packs the result into an Element.
func carryLimbs(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 int64) Element {
	c0 := (h0 + (1 << 25)) >> 26
	h1 += c0
	h0 -= c0 << 26
	c4 := (h4 + (1 << 25)) >> 26
	h5 += c4
	h4 -= c4 << 26

	c1 := (h1 + (1 << 24)) >> 25
	h2 += c1
	h1 -= c1 << 25
	c5 := (h5 + (1 << 24)) >> 25
	h6 += c5
	h5 -= c5 << 25

	c2 := (h2 + (1 << 25)) >> 26
	h3 += c2
	h2 -= c2 << 26
	c6 := (h6 + (1 << 25)) >> 26
	h7 += c6
	h6 -= c6 << 26

	c3 := (h3 + (1 << 24)) >> 25
	h4 += c3
	h3 -= c3 << 25
	c7 := (h7 + (1 << 24)) >> 25
	h8 += c7
	h7 -= c7 << 25

	c4 = (h4 + (1 << 25)) >> 26
	h5 += c4
	h4 -= c4 << 26
	c8 := (h8 + (1 << 25)) >> 26
	h9 += c8
	h8 -= c8 << 26

	c9 := (h9 + (1 << 24)) >> 25
	h0 += c9 * 19
	h9 -= c9 << 25

	c0 = (h0 + (1 << 25)) >> 26
	h1 += c0
	h0 -= c0 << 26

	return Element{
		int32(h0), int32(h1), int32(h2), int32(h3), int32(h4),
		int32(h5), int32(h6), int32(h7), int32(h8), int32(h9),
	}
}

// Multiply computes e*f. Both inputs must be tight; the result is tight.
func Multiply(e, f Element) Element {
	f0, f1, f2, f3, f4 := int64(e[0]), int64(e[1]), int64(e[2]), int64(e[3]), int64(e[4])
	f5, f6, f7, f8, f9 := int64(e[5]), int64(e[6]), int64(e[7]), int64(e[8]), int64(e[9])
	g0, g1, g2, g3, g4 := int64(f[0]), int64(f[1]), int64(f[2]), int64(f[3]), int64(f[4])
	g5, g6, g7, g8, g9 := int64(f[5]), int64(f[6]), int64(f[7]), int64(f[8]), int64(f[9])

	g1_19 := 19 * g1
	g2_19 := 19 * g2
	g3_19 := 19 * g3
	g4_19 := 19 * g4
	g5_19 := 19 * g5
	g6_19 := 19 * g6
	g7_19 := 19 * g7
	g8_19 := 19 * g8
	g9_19 := 19 * g9
	f1_2 := 2 * f1
	f3_2 := 2 * f3
	f5_2 := 2 * f5
	f7_2 := 2 * f7
	f9_2 := 2 * f9

	f0g0 := f0 * g0
	f0g1 := f0 * g1
	f0g2 := f0 * g2
	f0g3 := f0 * g3
	f0g4 := f0 * g4
	f0g5 := f0 * g5
	f0g6 := f0 * g6
	f0g7 := f0 * g7
	f0g8 := f0 * g8
	f0g9 := f0 * g9
	f1g0 := f1 * g0
	f1g1_2 := f1_2 * g1
	f1g2 := f1 * g2
	f1g3_2 := f1_2 * g3
	f1g4 := f1 * g4
	f1g5_2 := f1_2 * g5
	f1g6 := f1 * g6
	f1g7_2 := f1_2 * g7
	f1g8 := f1 * g8
	f1g9_38 := f1_2 * g9_19
	f2g0 := f2 * g0
	f2g1 := f2 * g1
	f2g2 := f2 * g2
	f2g3 := f2 * g3
	f2g4 := f2 * g4
	f2g5 := f2 * g5
	f2g6 := f2 * g6
	f2g7 := f2 * g7
	f2g8_19 := f2 * g8_19
	f2g9_19 := f2 * g9_19
	f3g0 := f3 * g0
	f3g1_2 := f3_2 * g1
	f3g2 := f3 * g2
	f3g3_2 := f3_2 * g3
	f3g4 := f3 * g4
	f3g5_2 := f3_2 * g5
	f3g6 := f3 * g6
	f3g7_38 := f3_2 * g7_19
	f3g8_19 := f3 * g8_19
	f3g9_38 := f3_2 * g9_19
	f4g0 := f4 * g0
	f4g1 := f4 * g1
	f4g2 := f4 * g2
	f4g3 := f4 * g3
	f4g4 := f4 * g4
	f4g5 := f4 * g5
	f4g6_19 := f4 * g6_19
	f4g7_19 := f4 * g7_19
	f4g8_19 := f4 * g8_19
	f4g9_19 := f4 * g9_19
	f5g0 := f5 * g0
	f5g1_2 := f5_2 * g1
	f5g2 := f5 * g2
	f5g3_2 := f5_2 * g3
	f5g4 := f5 * g4
	f5g5_38 := f5_2 * g5_19
	f5g6_19 := f5 * g6_19
	f5g7_38 := f5_2 * g7_19
	f5g8_19 := f5 * g8_19
	f5g9_38 := f5_2 * g9_19
	f6g0 := f6 * g0
	f6g1 := f6 * g1
	f6g2 := f6 * g2
	f6g3 := f6 * g3
	f6g4_19 := f6 * g4_19
	f6g5_19 := f6 * g5_19
	f6g6_19 := f6 * g6_19
	f6g7_19 := f6 * g7_19
	f6g8_19 := f6 * g8_19
	f6g9_19 := f6 * g9_19
	f7g0 := f7 * g0
	f7g1_2 := f7_2 * g1
	f7g2 := f7 * g2
	f7g3_38 := f7_2 * g3_19
	f7g4_19 := f7 * g4_19
	f7g5_38 := f7_2 * g5_19
	f7g6_19 := f7 * g6_19
	f7g7_38 := f7_2 * g7_19
	f7g8_19 := f7 * g8_19
	f7g9_38 := f7_2 * g9_19
	f8g0 := f8 * g0
	f8g1 := f8 * g1
	f8g2_19 := f8 * g2_19
	f8g3_19 := f8 * g3_19
	f8g4_19 := f8 * g4_19
	f8g5_19 := f8 * g5_19
	f8g6_19 := f8 * g6_19
	f8g7_19 := f8 * g7_19
	f8g8_19 := f8 * g8_19
	f8g9_19 := f8 * g9_19
	f9g0 := f9 * g0
	f9g1_38 := f9_2 * g1_19
	f9g2_19 := f9 * g2_19
	f9g3_38 := f9_2 * g3_19
	f9g4_19 := f9 * g4_19
	f9g5_38 := f9_2 * g5_19
	f9g6_19 := f9 * g6_19
	f9g7_38 := f9_2 * g7_19
	f9g8_19 := f9 * g8_19
	f9g9_38 := f9_2 * g9_19

	h0 := f0g0 + f1g9_38 + f2g8_19 + f3g7_38 + f4g6_19 + f5g5_38 + f6g4_19 + f7g3_38 + f8g2_19 + f9g1_38
	h1 := f0g1 + f1g0 + f2g9_19 + f3g8_19 + f4g7_19 + f5g6_19 + f6g5_19 + f7g4_19 + f8g3_19 + f9g2_19
	h2 := f0g2 + f1g1_2 + f2g0 + f3g9_38 + f4g8_19 + f5g7_38 + f6g6_19 + f7g5_38 + f8g4_19 + f9g3_38
	h3 := f0g3 + f1g2 + f2g1 + f3g0 + f4g9_19 + f5g8_19 + f6g7_19 + f7g6_19 + f8g5_19 + f9g4_19
	h4 := f0g4 + f1g3_2 + f2g2 + f3g1_2 + f4g0 + f5g9_38 + f6g8_19 + f7g7_38 + f8g6_19 + f9g5_38
	h5 := f0g5 + f1g4 + f2g3 + f3g2 + f4g1 + f5g0 + f6g9_19 + f7g8_19 + f8g7_19 + f9g6_19
	h6 := f0g6 + f1g5_2 + f2g4 + f3g3_2 + f4g2 + f5g1_2 + f6g0 + f7g9_38 + f8g8_19 + f9g7_38
	h7 := f0g7 + f1g6 + f2g5 + f3g4 + f4g3 + f5g2 + f6g1 + f7g0 + f8g9_19 + f9g8_19
	h8 := f0g8 + f1g7_2 + f2g6 + f3g5_2 + f4g4 + f5g3_2 + f6g2 + f7g1_2 + f8g0 + f9g9_38
	h9 := f0g9 + f1g8 + f2g7 + f3g6 + f4g5 + f5g4 + f6g3 + f7g2 + f8g1 + f9g0

	return carryLimbs(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

// Square computes e*e. The input must be tight; the result is tight.
func Square(e Element) Element {
	f0, f1, f2, f3, f4 := int64(e[0]), int64(e[1]), int64(e[2]), int64(e[3]), int64(e[4])
	f5, f6, f7, f8, f9 := int64(e[5]), int64(e[6]), int64(e[7]), int64(e[8]), int64(e[9])

	f0_2 := 2 * f0
	f1_2 := 2 * f1
	f2_2 := 2 * f2
	f3_2 := 2 * f3
	f4_2 := 2 * f4
	f5_2 := 2 * f5
	f6_2 := 2 * f6
	f7_2 := 2 * f7
	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	f0f0 := f0 * f0
	f0f1_2 := f0_2 * f1
	f0f2_2 := f0_2 * f2
	f0f3_2 := f0_2 * f3
	f0f4_2 := f0_2 * f4
	f0f5_2 := f0_2 * f5
	f0f6_2 := f0_2 * f6
	f0f7_2 := f0_2 * f7
	f0f8_2 := f0_2 * f8
	f0f9_2 := f0_2 * f9
	f1f1_2 := f1_2 * f1
	f1f2_2 := f1_2 * f2
	f1f3_4 := f1_2 * f3_2
	f1f4_2 := f1_2 * f4
	f1f5_4 := f1_2 * f5_2
	f1f6_2 := f1_2 * f6
	f1f7_4 := f1_2 * f7_2
	f1f8_2 := f1_2 * f8
	f1f9_76 := f1_2 * f9_38
	f2f2 := f2 * f2
	f2f3_2 := f2_2 * f3
	f2f4_2 := f2_2 * f4
	f2f5_2 := f2_2 * f5
	f2f6_2 := f2_2 * f6
	f2f7_2 := f2_2 * f7
	f2f8_38 := f2_2 * f8_19
	f2f9_38 := f2 * f9_38
	f3f3_2 := f3_2 * f3
	f3f4_2 := f3_2 * f4
	f3f5_4 := f3_2 * f5_2
	f3f6_2 := f3_2 * f6
	f3f7_76 := f3_2 * f7_38
	f3f8_38 := f3_2 * f8_19
	f3f9_76 := f3_2 * f9_38
	f4f4 := f4 * f4
	f4f5_2 := f4_2 * f5
	f4f6_38 := f4_2 * f6_19
	f4f7_38 := f4 * f7_38
	f4f8_38 := f4_2 * f8_19
	f4f9_38 := f4 * f9_38
	f5f5_38 := f5 * f5_38
	f5f6_38 := f5_2 * f6_19
	f5f7_76 := f5_2 * f7_38
	f5f8_38 := f5_2 * f8_19
	f5f9_76 := f5_2 * f9_38
	f6f6_19 := f6 * f6_19
	f6f7_38 := f6 * f7_38
	f6f8_38 := f6_2 * f8_19
	f6f9_38 := f6 * f9_38
	f7f7_38 := f7 * f7_38
	f7f8_38 := f7_2 * f8_19
	f7f9_76 := f7_2 * f9_38
	f8f8_19 := f8 * f8_19
	f8f9_38 := f8 * f9_38
	f9f9_38 := f9 * f9_38

	h0 := f0f0 + f1f9_76 + f2f8_38 + f3f7_76 + f4f6_38 + f5f5_38
	h1 := f0f1_2 + f2f9_38 + f3f8_38 + f4f7_38 + f5f6_38
	h2 := f0f2_2 + f1f1_2 + f3f9_76 + f4f8_38 + f5f7_76 + f6f6_19
	h3 := f0f3_2 + f1f2_2 + f4f9_38 + f5f8_38 + f6f7_38
	h4 := f0f4_2 + f1f3_4 + f2f2 + f5f9_76 + f6f8_38 + f7f7_38
	h5 := f0f5_2 + f1f4_2 + f2f3_2 + f6f9_38 + f7f8_38
	h6 := f0f6_2 + f1f5_4 + f2f4_2 + f3f3_2 + f7f9_76 + f8f8_19
	h7 := f0f7_2 + f1f6_2 + f2f5_2 + f3f4_2 + f8f9_38
	h8 := f0f8_2 + f1f7_4 + f2f6_2 + f3f5_4 + f4f4 + f9f9_38
	h9 := f0f9_2 + f1f8_2 + f2f7_2 + f3f6_2 + f4f5_2

	return carryLimbs(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
}

// Invert computes e^(p-2), the multiplicative inverse of e mod p, via
// ref10's fixed addition chain (~254 squarings, ~11 multiplies).
// e must be nonzero.
func Invert(e Element) Element {
	t0 := Square(e)
	t1 := Square(t0)
	t1 = Square(t1)
	t1 = Multiply(e, t1)
	t0 = Multiply(t0, t1)
	t2 := Square(t0)
	t1 = Multiply(t1, t2)
	t2 = Square(t1)
	for i := 1; i < 5; i++ {
		t2 = Square(t2)
	}
	t1 = Multiply(t2, t1)
	t2 = Square(t1)
	for i := 1; i < 10; i++ {
		t2 = Square(t2)
	}
	t2 = Multiply(t2, t1)
	t3 := Square(t2)
	for i := 1; i < 20; i++ {
		t3 = Square(t3)
	}
	t2 = Multiply(t3, t2)
	t2 = Square(t2)
	for i := 1; i < 10; i++ {
		t2 = Square(t2)
	}
	t1 = Multiply(t2, t1)
	t2 = Square(t1)
	for i := 1; i < 50; i++ {
		t2 = Square(t2)
	}
	t2 = Multiply(t2, t1)
	t3 = Square(t2)
	for i := 1; i < 100; i++ {
		t3 = Square(t3)
	}
	t2 = Multiply(t3, t2)
	t2 = Square(t2)
	for i := 1; i < 50; i++ {
		t2 = Square(t2)
	}
	t1 = Multiply(t2, t1)
	t1 = Square(t1)
	for i := 1; i < 5; i++ {
		t1 = Square(t1)
	}
	return Multiply(t1, t0)
}

// PowP58 computes e^((p-5)/8), the exponent used by the point-decode
// square-root step.
func PowP58(e Element) Element {
	t0 := Square(e)
	t1 := Square(t0)
	t1 = Square(t1)
	t1 = Multiply(e, t1)
	t0 = Multiply(t0, t1)
	t0 = Square(t0)
	t0 = Multiply(t1, t0)
	t1 = Square(t0)
	for i := 1; i < 5; i++ {
		t1 = Square(t1)
	}
	t0 = Multiply(t1, t0)
	t1 = Square(t0)
	for i := 1; i < 10; i++ {
		t1 = Square(t1)
	}
	t1 = Multiply(t1, t0)
	t2 := Square(t1)
	for i := 1; i < 20; i++ {
		t2 = Square(t2)
	}
	t1 = Multiply(t2, t1)
	t1 = Square(t1)
	for i := 1; i < 10; i++ {
		t1 = Square(t1)
	}
	t0 = Multiply(t1, t0)
	t1 = Square(t0)
	for i := 1; i < 50; i++ {
		t1 = Square(t1)
	}
	t1 = Multiply(t1, t0)
	t2 = Square(t1)
	for i := 1; i < 100; i++ {
		t2 = Square(t2)
	}
	t1 = Multiply(t2, t1)
	t1 = Square(t1)
	for i := 1; i < 50; i++ {
		t1 = Square(t1)
	}
	t0 = Multiply(t1, t0)
	t0 = Square(t0)
	t0 = Square(t0)
	return Multiply(t0, e)
}

// Cmov sets *f to g, in constant time, iff b == 1. b must be 0 or 1.
// This mirrors the masked-XOR select in the reference C (fe_cmov):
// every limb of both operands is touched regardless of b.
func Cmov(f *Loose, g Loose, b uint32) {
	mask := uint32(0) - b
	for i := range f {
		x := uint32(f[i]) ^ uint32(g[i])
		x &= mask
		f[i] = int32(uint32(f[i]) ^ x)
	}
}

// IsZero reports whether l is congruent to zero mod p, by carrying and
// comparing the canonical encoding against the zero encoding in
// constant time.
func IsZero(l Loose) bool {
	b := Carry(l).Bytes()
	var zero [32]byte
	return subtle.ConstantTimeCompare(b[:], zero[:]) == 1
}

// IsNegative reports whether e's canonical encoding has its low bit
// set, the sign convention used for the x-coordinate in point encode
// and decode.
func IsNegative(e Element) bool {
	b := e.Bytes()
	return b[0]&1 == 1
}
