package spake2

import "github.com/MuntashirAkon/spake2-go/internal/curve25519"

// basePointBytes is the standard Ed25519 generator's compressed
// encoding.
var basePointBytes = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}

var basePoint = mustDecode(basePointBytes)

// basePointTable is a one-time fixed-base precomputation for the
// generator, built at package init. Generate uses it instead of the
// variable-base table builder since B never changes across calls.
var basePointTable = curve25519.BuildFixedTable(basePoint)

func mustDecode(b [32]byte) curve25519.Extended {
	p, err := curve25519.Decode(b)
	if err != nil {
		panic("spake2: base point constant does not decode: " + err.Error())
	}
	return p
}
