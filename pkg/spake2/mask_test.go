package spake2

import (
	"testing"

	"github.com/MuntashirAkon/spake2-go/internal/curve25519"
)

// groupOrderLE is l as a 32-byte little-endian scalar.
var groupOrderLE = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

func TestMaskPointsDecodeAndAreDistinct(t *testing.T) {
	mp, err := curve25519.Decode(pointMBytes)
	if err != nil {
		t.Fatalf("M does not decode: %v", err)
	}
	np, err := curve25519.Decode(pointNBytes)
	if err != nil {
		t.Fatalf("N does not decode: %v", err)
	}
	if pointMBytes == pointNBytes {
		t.Fatal("M and N encode to the same point")
	}
	if pointMBytes == basePointBytes || pointNBytes == basePointBytes {
		t.Fatal("mask point collides with the generator")
	}
	if curve25519.Encode(mp) != pointMBytes || curve25519.Encode(np) != pointNBytes {
		t.Fatal("mask point encodings do not round trip")
	}
}

func TestMaskPointsHavePrimeOrder(t *testing.T) {
	identity := curve25519.Encode(curve25519.IdentityExtended())
	for name, p := range map[string]curve25519.Extended{"M": pointM, "N": pointN} {
		if curve25519.Encode(p) == identity {
			t.Fatalf("%s is the identity", name)
		}
		cleared := curve25519.ScalarMultiply(groupOrderLE, p)
		if curve25519.Encode(cleared) != identity {
			t.Fatalf("l*%s is not the identity; %s has a small-subgroup component", name, name)
		}
	}
}
