package spake2

import (
	"bytes"
	"math/rand"
	"testing"
)

// deterministicRand is a fixed-seed io.Reader, used so a test run is
// reproducible without relying on crypto/rand.
type deterministicRand struct{ r *rand.Rand }

func (d deterministicRand) Read(p []byte) (int, error) { return d.r.Read(p) }

func newDeterministicRand(seed int64) deterministicRand {
	return deterministicRand{r: rand.New(rand.NewSource(seed))}
}

func TestAgreementSamePassword(t *testing.T) {
	initiator, err := NewInitiator([]byte("alice"), []byte("bob"), Config{Rand: newDeterministicRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	responder, err := NewResponder([]byte("bob"), []byte("alice"), Config{Rand: newDeterministicRand(2)})
	if err != nil {
		t.Fatal(err)
	}

	password := []byte("correct horse battery staple")

	var msgA, msgB [32]byte
	if _, err := initiator.Generate(password, msgA[:]); err != nil {
		t.Fatalf("initiator generate: %v", err)
	}
	if _, err := responder.Generate(password, msgB[:]); err != nil {
		t.Fatalf("responder generate: %v", err)
	}

	var keyA, keyB [64]byte
	if _, err := initiator.Process(msgB[:], keyA[:]); err != nil {
		t.Fatalf("initiator process: %v", err)
	}
	if _, err := responder.Process(msgA[:], keyB[:]); err != nil {
		t.Fatalf("responder process: %v", err)
	}

	if keyA != keyB {
		t.Fatalf("agreed keys differ:\n%x\n%x", keyA, keyB)
	}
}

func TestDisagreementOnWrongPassword(t *testing.T) {
	initiator, _ := NewInitiator(nil, nil, Config{Rand: newDeterministicRand(3)})
	responder, _ := NewResponder(nil, nil, Config{Rand: newDeterministicRand(4)})

	var msgA, msgB [32]byte
	if _, err := initiator.Generate([]byte("foo"), msgA[:]); err != nil {
		t.Fatal(err)
	}
	if _, err := responder.Generate([]byte("foo "), msgB[:]); err != nil {
		t.Fatal(err)
	}

	var keyA, keyB [64]byte
	if _, err := initiator.Process(msgB[:], keyA[:]); err != nil {
		t.Fatal(err)
	}
	if _, err := responder.Process(msgA[:], keyB[:]); err != nil {
		t.Fatal(err)
	}

	if keyA == keyB {
		t.Fatal("expected distinct keys for different passwords")
	}
}

func TestReplayImmunity(t *testing.T) {
	password := []byte("shared secret")

	run := func(seed int64) [64]byte {
		initiator, _ := NewInitiator([]byte("a"), []byte("b"), Config{Rand: newDeterministicRand(seed)})
		responder, _ := NewResponder([]byte("a"), []byte("b"), Config{Rand: newDeterministicRand(seed + 1000)})

		var msgA, msgB [32]byte
		initiator.Generate(password, msgA[:])
		responder.Generate(password, msgB[:])

		var key [64]byte
		initiator.Process(msgB[:], key[:])
		return key
	}

	k1 := run(10)
	k2 := run(20)
	if k1 == k2 {
		t.Fatal("two independent sessions produced the same key")
	}
}

func TestProcessRejectsInvalidPeerMessage(t *testing.T) {
	s, _ := NewInitiator(nil, nil, Config{Rand: newDeterministicRand(5)})
	var msg [32]byte
	if _, err := s.Generate([]byte("pw"), msg[:]); err != nil {
		t.Fatal(err)
	}

	var garbage [32]byte
	for i := range garbage {
		garbage[i] = 0xff
	}

	var out [64]byte
	_, err := s.Process(garbage[:], out[:])
	if err != ErrBadPeerMessage {
		t.Fatalf("expected ErrBadPeerMessage, got %v", err)
	}
	if s.state != stateFailed {
		t.Fatal("session did not transition to failed state")
	}
	for _, b := range s.xScalar {
		if b != 0 {
			t.Fatal("x_scalar was not wiped after a failed process")
		}
	}
}

func TestStateMachineSequencing(t *testing.T) {
	s, _ := NewInitiator(nil, nil, Config{Rand: newDeterministicRand(6)})
	var out32 [32]byte
	var out64 [64]byte

	if _, err := s.Process(out32[:], out64[:]); err != ErrWrongState {
		t.Fatalf("process before generate: expected ErrWrongState, got %v", err)
	}

	if _, err := s.Generate([]byte("pw"), out32[:]); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Generate([]byte("pw"), out32[:]); err != ErrWrongState {
		t.Fatalf("second generate: expected ErrWrongState, got %v", err)
	}
}

func TestGenerateRejectsUndersizedBuffer(t *testing.T) {
	s, _ := NewInitiator(nil, nil, Config{Rand: newDeterministicRand(7)})
	var small [16]byte
	if _, err := s.Generate([]byte("pw"), small[:]); err != ErrBufferTooSmall {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}
}

func TestProcessRejectsUndersizedBuffer(t *testing.T) {
	s, _ := NewInitiator(nil, nil, Config{Rand: newDeterministicRand(8)})
	var msg [32]byte
	if _, err := s.Generate([]byte("pw"), msg[:]); err != nil {
		t.Fatal(err)
	}

	var small [32]byte
	if _, err := s.Process(msg[:], small[:]); err != ErrBufferTooSmall {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}
	if s.state != stateFailed {
		t.Fatal("session did not transition to failed state")
	}
	for _, b := range s.xScalar {
		if b != 0 {
			t.Fatal("x_scalar was not wiped after a failed process")
		}
	}

	// The failure is terminal: a retry with a correctly sized buffer
	// must not succeed.
	var out [64]byte
	if _, err := s.Process(msg[:], out[:]); err != ErrWrongState {
		t.Fatalf("expected ErrWrongState after failure, got %v", err)
	}
}

func TestNameTooLongRejected(t *testing.T) {
	longName := bytes.Repeat([]byte("x"), MaxNameLength+1)
	if _, err := NewInitiator(longName, nil, Config{}); err != ErrNameTooLong {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
}

func TestDisablePasswordScalarScenario(t *testing.T) {
	// Scenario: both sides use disable_password_scalar with w encoded
	// directly from the password bytes, empty names, and a fixed random
	// tape. This does not reproduce the byte-exact reference transcript
	// hash (that requires a captured vector from a known-good run); it
	// instead checks the two sides still agree under this test-only
	// code path.
	cfgA := Config{Rand: newDeterministicRand(42), DisablePasswordScalar: true}
	cfgB := Config{Rand: newDeterministicRand(43), DisablePasswordScalar: true}

	initiator, _ := NewInitiator(nil, nil, cfgA)
	responder, _ := NewResponder(nil, nil, cfgB)

	var wBytes [32]byte
	wBytes[0] = 1 // w = 1

	var msgA, msgB [32]byte
	if _, err := initiator.Generate(wBytes[:], msgA[:]); err != nil {
		t.Fatal(err)
	}
	if _, err := responder.Generate(wBytes[:], msgB[:]); err != nil {
		t.Fatal(err)
	}

	var keyA, keyB [64]byte
	if _, err := initiator.Process(msgB[:], keyA[:]); err != nil {
		t.Fatal(err)
	}
	if _, err := responder.Process(msgA[:], keyB[:]); err != nil {
		t.Fatal(err)
	}

	if keyA != keyB {
		t.Fatal("disable_password_scalar path: keys do not agree")
	}
}

func TestClampScalarProducesCanonicalRange(t *testing.T) {
	var s [32]byte
	for i := range s {
		s[i] = 0xff
	}
	clampScalar(&s)
	if s[0]&0x07 != 0 {
		t.Fatal("low three bits of first byte not cleared")
	}
	if s[31]&0x80 != 0 {
		t.Fatal("top bit of last byte not cleared")
	}
	if s[31]&0x40 == 0 {
		t.Fatal("second-highest bit of last byte not set")
	}
}

func TestAgreementWithReferenceTestVectorShape(t *testing.T) {
	// Mirrors the shapes adb's pairing protocol feeds this exchange: a
	// 70-byte binary password (six-digit pairing code plus raw key
	// material) and the "adb pair client"/"adb pair server" names.
	// Checks that a long non-UTF8 password still produces agreement.
	password := []byte{
		0x35, 0x39, 0x32, 0x37, 0x38, 0x31, 0xe6, 0x3d, 0xd9, 0x59, 0x65, 0x1c,
		0x21, 0x16, 0x00, 0xf3, 0xb6, 0x56, 0x1d, 0x0b, 0x9d, 0x90, 0xaf, 0x09,
		0xd0, 0xa4, 0xa4, 0x53, 0xee, 0x20, 0x59, 0xa4, 0x80, 0xcc, 0x7c, 0x5a,
		0x94, 0xd4, 0xd4, 0x89, 0x33, 0xf9, 0xff, 0xf5, 0xfe, 0x43, 0x31, 0x7d,
		0x52, 0xfa, 0x7b, 0xff, 0x8f, 0x8b, 0xc4, 0xf3, 0x48, 0x8b, 0x80, 0x07,
		0x33, 0x0f, 0xec, 0x7c, 0x7e, 0xdc, 0x91, 0xc2, 0x0e, 0x5d,
	}

	initiator, err := NewInitiator([]byte("adb pair client"), []byte("adb pair server"), Config{Rand: newDeterministicRand(100)})
	if err != nil {
		t.Fatal(err)
	}
	responder, err := NewResponder([]byte("adb pair server"), []byte("adb pair client"), Config{Rand: newDeterministicRand(200)})
	if err != nil {
		t.Fatal(err)
	}

	var msgA, msgB [32]byte
	if _, err := initiator.Generate(password, msgA[:]); err != nil {
		t.Fatalf("initiator generate: %v", err)
	}
	if _, err := responder.Generate(password, msgB[:]); err != nil {
		t.Fatalf("responder generate: %v", err)
	}

	var keyA, keyB [64]byte
	if _, err := initiator.Process(msgB[:], keyA[:]); err != nil {
		t.Fatalf("initiator process: %v", err)
	}
	if _, err := responder.Process(msgA[:], keyB[:]); err != nil {
		t.Fatalf("responder process: %v", err)
	}

	if keyA != keyB {
		t.Fatalf("agreed keys differ:\n%x\n%x", keyA, keyB)
	}
}

func TestClampScalarAllZeroInput(t *testing.T) {
	var s [32]byte
	clampScalar(&s)
	want := [32]byte{}
	want[31] = 0x40
	if s != want {
		t.Fatalf("clamp(0) = %x, want %x", s, want)
	}
}
