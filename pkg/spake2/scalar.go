package spake2

import "math/big"

// groupOrder is l = 2^252 + 27742317777372353535851937790883648493, the
// order of the Ed25519 prime-order subgroup.
var groupOrder, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// clampScalar applies the Ed25519 scalar-clamping convention in
// place: clear the low three bits of the first byte and the top bit
// of the last byte, then set the second-highest bit of the last byte.
// The result is always a multiple of the cofactor 8 in the range
// [2^254, 2^255), which kills any small-subgroup component before the
// scalar is ever used in a multiplication.
func clampScalar(s *[32]byte) {
	s[0] &= 0xf8
	s[31] &= 0x7f
	s[31] |= 0x40
}

// reduceModOrder interprets a 64-byte digest as a little-endian
// integer and reduces it modulo the group order, returning a 32-byte
// little-endian scalar. This is how the password-derived scalar w is
// obtained from SHA-512(password).
func reduceModOrder(digest [64]byte) [32]byte {
	be := make([]byte, 64)
	for i, b := range digest {
		be[63-i] = b
	}
	n := new(big.Int).SetBytes(be)
	n.Mod(n, groupOrder)

	var out [32]byte
	nBytes := n.Bytes() // big-endian, shortest form
	for i, b := range nBytes {
		out[len(nBytes)-1-i] = b
	}
	return out
}
