// Package conv converts between byte offsets and rune indices.
//
// The matcher works on rune buffers while the public API reports byte
// offsets. These helpers do the decoding once per search and map the rune
// indices of a match back to the input bytes. When the caller already knows
// the input is ASCII both directions are the identity and no decoding is done.
package conv

import "unicode/utf8"

// AppendRunes decodes b and appends its runes to dst[:0], reusing dst's
// storage when it is large enough. Invalid UTF-8 decodes to utf8.RuneError,
// one rune per invalid byte.
func AppendRunes(dst []rune, b []byte, ascii bool) []rune {
	dst = dst[:0]
	if ascii {
		for _, c := range b {
			dst = append(dst, rune(c))
		}
		return dst
	}
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		dst = append(dst, r)
		b = b[size:]
	}
	return dst
}

// ByteOffset returns the byte offset in b of rune index i, as produced by
// AppendRunes. Indices past the last rune map to len(b).
func ByteOffset(b []byte, i int, ascii bool) int {
	if ascii {
		return min(i, len(b))
	}
	off := 0
	for ; i > 0 && off < len(b); i-- {
		_, size := utf8.DecodeRune(b[off:])
		off += size
	}
	return off
}

// ByteOffsets converts the rune indices in idx into byte offsets. -1 entries
// mark unset submatches and are kept as -1.
func ByteOffsets(b []byte, idx []int, ascii bool) []int {
	out := make([]int, len(idx))
	for k, i := range idx {
		if i < 0 {
			out[k] = -1
			continue
		}
		out[k] = ByteOffset(b, i, ascii)
	}
	return out
}
