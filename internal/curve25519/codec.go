package curve25519

import (
	"errors"

	"github.com/MuntashirAkon/spake2-go/internal/field"
)

// ErrInvalidEncoding is returned by Decode when the given 32 bytes do
// not encode a point on the curve.
var ErrInvalidEncoding = errors.New("curve25519: invalid point encoding")

// Encode serializes p's affine y-coordinate as 32 little-endian bytes,
// with the sign of the affine x-coordinate folded into the top bit,
// per the standard Ed25519 point encoding.
func Encode(p Extended) [32]byte {
	recip := field.Invert(p.Z)
	x := field.Multiply(p.X, recip)
	y := field.Multiply(p.Y, recip)
	s := y.Bytes()
	if field.IsNegative(x) {
		s[31] |= 0x80
	}
	return s
}

// Decode parses a 32-byte Ed25519 point encoding, recovering x from y
// and the sign bit by solving x^2 = (y^2-1)/(d*y^2+1) with the
// (p+3)/8 square-root exponentiation technique, then correcting for
// the two square roots of -1. It returns ErrInvalidEncoding if s does
// not encode a point on the curve, or if its y-coordinate is not in
// canonical form (a value of p or more in the low 255 bits).
func Decode(s [32]byte) (Extended, error) {
	y := field.FromBytes(s)
	one := field.One()

	yBytes := s
	yBytes[31] &= 0x7f
	if y.Bytes() != yBytes {
		return Extended{}, ErrInvalidEncoding
	}

	y2 := field.Square(y)
	u := field.Carry(field.Sub(y2, one))
	vRaw := field.Multiply(y2, curveD)
	v := field.Carry(field.Add(vRaw, one))

	v3 := field.Multiply(field.Square(v), v) // v^3
	x := field.Multiply(field.Square(v3), v) // v^7
	x = field.Multiply(x, u)
	x = field.PowP58(x)
	x = field.Multiply(x, v3)
	x = field.Multiply(x, u)

	vx2 := field.Multiply(field.Square(x), v)
	check := field.Carry(field.Sub(vx2, u))
	if !field.IsZero(field.Add(check, field.Zero())) {
		checkPlus := field.Carry(field.Add(vx2, u))
		if !field.IsZero(field.Add(checkPlus, field.Zero())) {
			return Extended{}, ErrInvalidEncoding
		}
		x = field.Multiply(x, sqrtM1)
	}

	wantNeg := s[31]>>7 == 1
	if field.IsNegative(x) != wantNeg {
		x = field.Carry(field.Negate(x))
	}

	return Extended{
		X: x,
		Y: y,
		Z: one,
		T: field.Multiply(x, y),
	}, nil
}
