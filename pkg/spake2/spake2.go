// Package spake2 implements the balanced SPAKE2 password-authenticated
// key exchange over the Ed25519 curve group.
//
// Two parties holding a shared low-entropy password each call Generate
// once to produce a 32-byte commitment to send to the peer, exchange
// commitments out of band, then each call Process once with the
// peer's commitment to derive an identical 64-byte shared key (or, if
// the passwords differed, two keys that differ with overwhelming
// probability). There is no key-confirmation step: this package only
// establishes the shared secret, it does not verify that both sides
// arrived at the same one.
//
// Protocol flow:
//
//	Initiator (A)                       Responder (B)
//	--------------                      --------------
//	NewInitiator(...)                   NewResponder(...)
//	msgA = Generate(password)  --A-->   msgA
//	                            <--B--  msgB = Generate(password)
//	key = Process(msgB)                 key = Process(msgA)
package spake2

import (
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"hash"
	"io"

	"github.com/MuntashirAkon/spake2-go/internal/curve25519"
	"github.com/pion/logging"
)

// MaxNameLength is the implementation limit on my_name/their_name at
// construction time.
const MaxNameLength = 256

// Role identifies which side of the exchange a Session plays. The two
// roles use opposite mask points (M for the initiator's own
// commitment and N for the peer's, reversed for the responder) so a
// passive observer of both commitments cannot trivially swap or
// confuse them.
type Role int

const (
	// RoleInitiator is side A.
	RoleInitiator Role = 0
	// RoleResponder is side B.
	RoleResponder Role = 1
)

func (r Role) String() string {
	if r == RoleResponder {
		return "responder"
	}
	return "initiator"
}

type state int

const (
	stateFresh state = iota
	stateReady
	stateSent
	stateDone
	stateFailed
)

// Hash512 constructs a 64-byte hash.Hash, the contract SHA-512
// satisfies. Config.Hash512 defaults to sha512.New, the standard
// library's implementation of the named primitive; it exists as a
// pluggable field so a caller can substitute an alternate SHA-512
// implementation without touching protocol logic.
type Hash512 func() hash.Hash

// Config configures a Session at construction time.
type Config struct {
	// Rand supplies the 32 random bytes used to sample the ephemeral
	// scalar in Generate. Defaults to crypto/rand.Reader.
	Rand io.Reader

	// Hash512 constructs the hash used for transcript hashing and
	// password-scalar derivation. Defaults to sha512.New.
	Hash512 Hash512

	// DisablePasswordScalar, when set, treats the password bytes
	// directly as the little-endian encoding of the password scalar w
	// instead of deriving w = SHA-512(password) mod l. This exists
	// only to reproduce fixed test vectors that specify w directly;
	// production callers must leave this false.
	DisablePasswordScalar bool

	// LoggerFactory, if non-nil, receives only non-secret facts: role,
	// state transitions, and the fact (not the content) of a rejected
	// peer message. If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Session holds one party's state across a single create/generate/
// process lifecycle. A Session is not safe for concurrent use; each
// operation must complete before the next begins, and every operation
// is single-shot.
type Session struct {
	role Role

	myName    []byte
	theirName []byte

	rand                  io.Reader
	newHash               Hash512
	disablePasswordScalar bool
	log                   logging.LeveledLogger

	state state

	xScalar [32]byte
	wScalar [32]byte
	myMsg   [32]byte
}

func newSession(role Role, myName, theirName []byte, cfg Config) (*Session, error) {
	if len(myName) > MaxNameLength || len(theirName) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	r := cfg.Rand
	if r == nil {
		r = rand.Reader
	}
	h := cfg.Hash512
	if h == nil {
		h = sha512.New
	}

	s := &Session{
		role:                  role,
		myName:                append([]byte(nil), myName...),
		theirName:             append([]byte(nil), theirName...),
		rand:                  r,
		newHash:               h,
		disablePasswordScalar: cfg.DisablePasswordScalar,
		state:                 stateReady,
	}
	if cfg.LoggerFactory != nil {
		s.log = cfg.LoggerFactory.NewLogger("spake2")
	}
	if s.log != nil {
		s.log.Debugf("spake2: session created as %s", role)
	}
	return s, nil
}

// NewInitiator creates a Session playing the initiator (A) role.
func NewInitiator(myName, theirName []byte, cfg Config) (*Session, error) {
	return newSession(RoleInitiator, myName, theirName, cfg)
}

// NewResponder creates a Session playing the responder (B) role.
func NewResponder(myName, theirName []byte, cfg Config) (*Session, error) {
	return newSession(RoleResponder, myName, theirName, cfg)
}

// SetRandom replaces the session's random source. For testing purposes.
func (s *Session) SetRandom(r io.Reader) {
	s.rand = r
}

// maskPoints returns (mine, theirs): the mask point this session
// applies to its own commitment, and the one it subtracts from the
// peer's.
func (s *Session) maskPoints() (mine, theirs curve25519.Extended) {
	if s.role == RoleInitiator {
		return pointM, pointN
	}
	return pointN, pointM
}

// Generate samples the ephemeral scalar, derives the password scalar,
// and writes this session's 32-byte commitment to out. out must have
// length at least 32. Generate may be called exactly once, only from
// the Ready state.
func (s *Session) Generate(password []byte, out []byte) (int, error) {
	if s.state != stateReady {
		return 0, ErrWrongState
	}
	if len(out) < 32 {
		return 0, ErrBufferTooSmall
	}

	var randomBytes [32]byte
	if _, err := io.ReadFull(s.rand, randomBytes[:]); err != nil {
		s.fail()
		return 0, errors.Join(ErrRNGFailure, err)
	}
	clampScalar(&randomBytes)
	s.xScalar = randomBytes

	s.wScalar = s.derivePasswordScalar(password)

	myMsgPoint := s.commitmentPoint()
	s.myMsg = curve25519.Encode(myMsgPoint)

	n := copy(out, s.myMsg[:])
	s.state = stateSent
	if s.log != nil {
		s.log.Debugf("spake2: generated commitment as %s", s.role)
	}
	return n, nil
}

// commitmentPoint computes X + w*mask_self where mask_self is M for
// the initiator and N for the responder.
func (s *Session) commitmentPoint() curve25519.Extended {
	maskSelf, _ := s.maskPoints()
	x := curve25519.ScalarMultiplyFixedBase(s.xScalar, &basePointTable)
	wMask := curve25519.ScalarMultiply(s.wScalar, maskSelf)
	return curve25519.FromCompletedExtended(curve25519.Add(x, wMask.ToCached()))
}

// derivePasswordScalar computes w from the password: SHA-512(password)
// reduced mod the group order, or, when DisablePasswordScalar is set,
// the password bytes read directly as a little-endian scalar.
func (s *Session) derivePasswordScalar(password []byte) [32]byte {
	if s.disablePasswordScalar {
		var w [32]byte
		copy(w[:], password)
		return w
	}
	h := s.newHash()
	h.Write(password)
	var digest [64]byte
	copy(digest[:], h.Sum(nil))
	return reduceModOrder(digest)
}

// Process consumes the peer's 32-byte commitment, derives the shared
// key, and writes the 64-byte key to out. out must have length at
// least 64. Process may be called exactly once, only after Generate
// has completed on this session.
func (s *Session) Process(peerMsg []byte, out []byte) (int, error) {
	if s.state != stateSent {
		return 0, ErrWrongState
	}
	if len(out) < 64 {
		s.fail()
		return 0, ErrBufferTooSmall
	}
	if len(peerMsg) != 32 {
		s.fail()
		return 0, ErrBadPeerMessage
	}

	var peerMsgArr [32]byte
	copy(peerMsgArr[:], peerMsg)

	yMasked, err := curve25519.Decode(peerMsgArr)
	if err != nil {
		s.fail()
		if s.log != nil {
			s.log.Warnf("spake2: rejected peer message as %s", s.role)
		}
		return 0, ErrBadPeerMessage
	}

	_, maskPeer := s.maskPoints()
	wMaskPeer := curve25519.ScalarMultiply(s.wScalar, maskPeer)
	yPeer := curve25519.FromCompletedExtended(curve25519.Sub(yMasked, wMaskPeer.ToCached()))

	kPoint := curve25519.ScalarMultiply(s.xScalar, yPeer)
	k := curve25519.Encode(kPoint)

	var initiatorName, responderName []byte
	var initiatorMsg, responderMsg []byte
	if s.role == RoleInitiator {
		initiatorName, responderName = s.myName, s.theirName
		initiatorMsg, responderMsg = s.myMsg[:], peerMsgArr[:]
	} else {
		initiatorName, responderName = s.theirName, s.myName
		initiatorMsg, responderMsg = peerMsgArr[:], s.myMsg[:]
	}

	tt := buildTranscript(initiatorName, responderName, initiatorMsg, responderMsg, k[:], s.wScalar[:])

	h := s.newHash()
	h.Write(tt)
	digest := h.Sum(nil)
	n := copy(out, digest)

	wipe(s.xScalar[:])
	wipe(s.wScalar[:])

	s.state = stateDone
	if s.log != nil {
		s.log.Debugf("spake2: key derived as %s", s.role)
	}
	return n, nil
}

// Destroy wipes any remaining secret state. It is safe to call more
// than once and after either successful or failed completion.
func (s *Session) Destroy() {
	wipe(s.xScalar[:])
	wipe(s.wScalar[:])
}

func (s *Session) fail() {
	wipe(s.xScalar[:])
	wipe(s.wScalar[:])
	s.state = stateFailed
}

// wipe overwrites b with zeros. This is a best-effort clear: Go does
// not guarantee the compiler cannot elide a store to memory that is
// never read again, and the standard library offers no documented
// non-elidable zero primitive.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
