package spake2

import "errors"

// Protocol errors. Every failure the package surfaces is one of these
// sentinel values, except that a random-source failure is
// ErrRNGFailure joined with the source's own error (match it with
// errors.Is). No error carries data from the peer's message, so a
// malicious peer message cannot smuggle anything into a log message
// or error string beyond the fact of rejection.
var (
	// ErrNameTooLong is returned by NewInitiator/NewResponder when
	// either identity exceeds MaxNameLength.
	ErrNameTooLong = errors.New("spake2: name exceeds maximum length")

	// ErrBufferTooSmall is returned by Generate or Process when the
	// caller's output buffer cannot hold the required bytes.
	ErrBufferTooSmall = errors.New("spake2: output buffer too small")

	// ErrBadPeerMessage is returned by Process when the peer's 32-byte
	// message does not decode to a valid curve point.
	ErrBadPeerMessage = errors.New("spake2: peer message is not a valid point")

	// ErrWrongState is returned when Generate or Process is called out
	// of sequence, or a second time.
	ErrWrongState = errors.New("spake2: operation called out of sequence")

	// ErrRNGFailure is returned when the configured random source
	// fails to deliver entropy.
	ErrRNGFailure = errors.New("spake2: random source failed")
)
