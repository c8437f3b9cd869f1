package spake2

import "encoding/binary"

// appendWithLen64 appends data to dst prefixed by its length as an
// 8-byte little-endian integer, regardless of host endianness.
func appendWithLen64(dst, data []byte) []byte {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(data)))
	dst = append(dst, lenBuf[:]...)
	dst = append(dst, data...)
	return dst
}

// buildTranscript concatenates the six public transcript fields in
// wire order: both names, both commitments (initiator's before
// responder's, independent of which side is computing), the shared
// point K, and the password scalar w. Both parties build byte-identical
// transcripts because the slot a value occupies is determined by role,
// not by who is running this code.
func buildTranscript(initiatorName, responderName, initiatorMsg, responderMsg, k, w []byte) []byte {
	var tt []byte
	tt = appendWithLen64(tt, initiatorName)
	tt = appendWithLen64(tt, responderName)
	tt = appendWithLen64(tt, initiatorMsg)
	tt = appendWithLen64(tt, responderMsg)
	tt = appendWithLen64(tt, k)
	tt = appendWithLen64(tt, w)
	return tt
}
