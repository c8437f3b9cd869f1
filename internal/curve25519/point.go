// Package curve25519 implements group arithmetic on the twisted
// Edwards curve underlying Ed25519: -x^2 + y^2 = 1 + d*x^2*y^2 over
// GF(2^255-19). It provides the four point representations used by
// the ref10 family of Ed25519 implementations (projective, extended,
// completed, cached) and a constant-time variable-base scalar
// multiplication built from them.
package curve25519

import "github.com/MuntashirAkon/spake2-go/internal/field"

// Projective holds a point as (X:Y:Z) with x=X/Z, y=Y/Z. It is the
// cheapest representation for doubling.
type Projective struct {
	X, Y, Z field.Element
}

// Extended holds a point as (X:Y:Z:T) with x=X/Z, y=Y/Z, X*Y=Z*T. This
// is the representation additions and the scalar-mult accumulator use.
type Extended struct {
	X, Y, Z, T field.Element
}

// Completed holds an intermediate point as ((X:Z),(Y:T)), the output
// shape of a doubling or addition formula before its final products
// are taken. Its fields are loose because they come straight out of
// Add/Sub chains inside the formulas.
type Completed struct {
	X, Y, Z, T field.Loose
}

// Cached holds a point prepared for repeated addition: (Y+X, Y-X, Z,
// 2d*T). Building this once per table entry avoids repeating that
// work on every add in a scalar multiplication.
type Cached struct {
	YplusX, YminusX, Z, T2d field.Loose
}

// AffinePrecomp holds a fixed point's cached form with Z implicitly 1:
// (y+x, y-x, 2dxy). Used for the entries of a FixedTable in fixed-base
// scalar multiplication.
type AffinePrecomp struct {
	YplusX, YminusX, XY2d field.Loose
}

// Identity returns the projective representation of the neutral
// element (0:1:1).
func Identity() Projective {
	return Projective{X: field.Zero(), Y: field.One(), Z: field.One()}
}

// IdentityExtended returns the extended representation of the neutral
// element (0:1:1:0).
func IdentityExtended() Extended {
	return Extended{X: field.Zero(), Y: field.One(), Z: field.One(), T: field.Zero()}
}

// ToProjective drops an extended point's T coordinate.
func (p Extended) ToProjective() Projective {
	return Projective{X: p.X, Y: p.Y, Z: p.Z}
}

// FromCompleted converts a completed point to projective: X=X*T, Y=Y*Z, Z=Z*T.
func FromCompleted(p Completed) Projective {
	return Projective{
		X: field.Multiply(field.Carry(p.X), field.Carry(p.T)),
		Y: field.Multiply(field.Carry(p.Y), field.Carry(p.Z)),
		Z: field.Multiply(field.Carry(p.Z), field.Carry(p.T)),
	}
}

// FromCompletedExtended converts a completed point to extended:
// X=X*T, Y=Y*Z, Z=Z*T, T=X*Y.
func FromCompletedExtended(p Completed) Extended {
	x := field.Carry(p.X)
	y := field.Carry(p.Y)
	z := field.Carry(p.Z)
	t := field.Carry(p.T)
	return Extended{
		X: field.Multiply(x, t),
		Y: field.Multiply(y, z),
		Z: field.Multiply(z, t),
		T: field.Multiply(x, y),
	}
}

// ToCached prepares an extended point for repeated addition.
func (p Extended) ToCached() Cached {
	return Cached{
		YplusX:  field.Add(p.Y, p.X),
		YminusX: field.Sub(p.Y, p.X),
		Z:       field.Add(p.Z, field.Zero()),
		T2d:     field.Add(field.Multiply(p.T, curveD2), field.Zero()),
	}
}

// ToAffinePrecomp normalizes p to affine (Z=1) and builds its fixed-base
// precomputed form (y+x, y-x, 2d*x*y). This costs one field inversion,
// so it is meant for one-time table construction on a fixed point such
// as the generator, not for per-scalar-multiply use.
func (p Extended) ToAffinePrecomp() AffinePrecomp {
	zInv := field.Invert(p.Z)
	x := field.Multiply(p.X, zInv)
	y := field.Multiply(p.Y, zInv)
	xy := field.Multiply(x, y)
	return AffinePrecomp{
		YplusX:  field.Add(y, x),
		YminusX: field.Sub(y, x),
		XY2d:    field.Add(field.Multiply(xy, curveD2), field.Zero()),
	}
}

// Double computes 2*p for a projective point, returning a completed
// point (the cheapest doubling formula works from the X/Y/Z
// projective inputs without needing T).
func Double(p Projective) Completed {
	xx := field.Square(p.X)
	yy := field.Square(p.Y)
	zz2 := dblZ(p.Z)
	xPlusY := field.Carry(field.Add(p.X, p.Y))
	xPlusYSq := field.Square(xPlusY)

	yyPlusXX := field.Add(yy, xx)
	yyMinusXX := field.Sub(yy, xx)

	var r Completed
	r.Y = yyPlusXX
	r.Z = yyMinusXX
	zzCarried := field.Carry(yyPlusXX)
	r.X = field.Sub(xPlusYSq, zzCarried)
	zCarried := field.Carry(yyMinusXX)
	r.T = field.Sub(zz2, zCarried)
	return r
}

// dblZ computes 2*z^2 for the doubling formula.
func dblZ(z field.Element) field.Element {
	zz := field.Square(z)
	return field.Carry(field.Add(zz, zz))
}

// Add computes p+q for an extended point p and a cached point q,
// returning a completed point. This is the general-purpose addition
// used by scalar multiplication's table lookups.
func Add(p Extended, q Cached) Completed {
	yPlusX := field.Carry(field.Add(p.Y, p.X))
	yMinusX := field.Carry(field.Sub(p.Y, p.X))

	trZ := field.Multiply(yPlusX, field.Carry(q.YplusX))
	trY := field.Multiply(yMinusX, field.Carry(q.YminusX))
	trT := field.Multiply(field.Carry(q.T2d), p.T)
	trX := field.Multiply(p.Z, field.Carry(q.Z))

	trXdbl := field.Add(trX, trX)

	var r Completed
	r.X = field.Sub(trZ, trY)
	r.Y = field.Add(trZ, trY)
	trZcarried := field.Carry(trXdbl)
	r.Z = field.Add(trZcarried, trT)
	r.T = field.Sub(trZcarried, trT)
	return r
}

// Sub computes p-q for an extended point p and a cached point q,
// returning a completed point.
func Sub(p Extended, q Cached) Completed {
	yPlusX := field.Carry(field.Add(p.Y, p.X))
	yMinusX := field.Carry(field.Sub(p.Y, p.X))

	trZ := field.Multiply(yPlusX, field.Carry(q.YminusX))
	trY := field.Multiply(yMinusX, field.Carry(q.YplusX))
	trT := field.Multiply(field.Carry(q.T2d), p.T)
	trX := field.Multiply(p.Z, field.Carry(q.Z))

	trXdbl := field.Add(trX, trX)

	var r Completed
	r.X = field.Sub(trZ, trY)
	r.Y = field.Add(trZ, trY)
	trZcarried := field.Carry(trXdbl)
	r.Z = field.Sub(trZcarried, trT)
	r.T = field.Add(trZcarried, trT)
	return r
}

// MixedAdd computes p+q for an extended point p and a fixed affine
// precomputed point q (Z implicitly 1). ScalarMultiplyFixedBase uses it
// for its table additions; variable-base ScalarMultiply uses Add.
func MixedAdd(p Extended, q AffinePrecomp) Completed {
	yPlusX := field.Carry(field.Add(p.Y, p.X))
	yMinusX := field.Carry(field.Sub(p.Y, p.X))

	trZ := field.Multiply(yPlusX, field.Carry(q.YplusX))
	trY := field.Multiply(yMinusX, field.Carry(q.YminusX))
	trT := field.Multiply(field.Carry(q.XY2d), p.T)

	zz := field.Add(p.Z, p.Z)

	var r Completed
	r.X = field.Sub(trZ, trY)
	r.Y = field.Add(trZ, trY)
	zzCarried := field.Carry(zz)
	r.Z = field.Add(zzCarried, trT)
	r.T = field.Sub(zzCarried, trT)
	return r
}
