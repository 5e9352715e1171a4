// Package buf contains the bounds-checked cursor and the endian-safe decoding
// routines every shell link record decoder reads through.
package buf

import "encoding/binary"

// All on-disk integers are little-endian. encoding/binary assembles them byte
// by byte, so the result is correct on big-endian hosts as well.

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}
