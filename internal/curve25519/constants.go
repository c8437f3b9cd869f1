package curve25519

import "github.com/MuntashirAkon/spake2-go/internal/field"

// The curve is the twisted Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2
// over GF(2^255-19). These limb values are the standard ref10
// constants for d, 2d, and a square root of -1 mod p.

var curveD = field.Element{
	-10913610, 13857413, -15372611, 6949391, 114729,
	-8787816, -6275908, -3247719, -18696448, -12055116,
}

var curveD2 = field.Element{
	-21827239, -5839606, -30745221, 13898782, 229458,
	15978800, -12551817, -6495438, 29715968, 9444199,
}

var sqrtM1 = field.Element{
	-32595792, -7943725, 9377950, 3500415, 12389472,
	-272473, -25146209, -2005654, 326686, 11406482,
}
