package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const lo8 = uint64(0x0101010101010101)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// With wide vector units it defers to bytes.IndexByte, which the runtime
// implements with vector instructions on those CPUs. Otherwise it uses a
// SWAR loop that tests 8 bytes per step.
func Memchr(haystack []byte, needle byte) int {
	if hasWide && len(haystack) >= wideThreshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// memchrGeneric broadcasts needle to every byte of a word, XORs it with the
// haystack so matching bytes become zero, and finds the first zero byte with
// the classic (v - 0x01..) & ^v & 0x80.. test.
func memchrGeneric(haystack []byte, needle byte) int {
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
