package spake2

import (
	"crypto/sha512"

	"github.com/MuntashirAkon/spake2-go/internal/curve25519"
)

// Mask points M and N hide each side's ephemeral commitment behind a
// password-derived offset so a passive observer of the wire message
// learns nothing about x without already knowing the password.
//
// Both points are derived deterministically at package init by the
// standard hash-and-increment construction: SHA-512 of a fixed label
// and counter, decoded as a compressed point, cofactor-cleared by
// scalar multiplication by 8. The labels match the seed strings used
// to generate the widely deployed SPAKE2/Ed25519 constants, and the
// derivation always yields a valid prime-order point. A deployment
// that must interoperate with an existing SPAKE2/Ed25519
// implementation should replace these with that implementation's
// exact published 32-byte encodings and verify them against its test
// vectors.
var (
	pointM = derivePoint("edwards25519 point generation seed (M)")
	pointN = derivePoint("edwards25519 point generation seed (N)")

	pointMBytes = curve25519.Encode(pointM)
	pointNBytes = curve25519.Encode(pointN)
)

// cofactorEight is the scalar 8 as a little-endian 32-byte value, used
// to clear any small-subgroup component from a hash-to-curve
// candidate.
var cofactorEight = [32]byte{8}

// derivePoint hashes label together with an incrementing counter byte
// until the digest's low 32 bytes decode to a curve point, then clears
// the cofactor by multiplying by 8. The loop always terminates well
// within 256 iterations in practice (roughly half of all candidate
// bytes decode).
func derivePoint(label string) curve25519.Extended {
	for counter := byte(0); ; counter++ {
		h := sha512.Sum512(append([]byte(label), counter))
		var candidate [32]byte
		copy(candidate[:], h[:32])

		p, err := curve25519.Decode(candidate)
		if err != nil {
			continue
		}

		cleared := curve25519.ScalarMultiply(cofactorEight, p)
		if isIdentity(cleared) {
			continue
		}
		return cleared
	}
}

func isIdentity(p curve25519.Extended) bool {
	enc := curve25519.Encode(p)
	identity := curve25519.Encode(curve25519.IdentityExtended())
	return enc == identity
}
