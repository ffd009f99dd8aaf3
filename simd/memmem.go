package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0, as with
// bytes.Index.
//
// The search scans for the rarest byte of needle with Memchr and verifies
// the full needle around each candidate.
//
// Example:
//
//	simd.Memmem([]byte("hello world"), []byte("world")) // 6
//	simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))   // 4
func Memmem(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	rare, off := RareByte(needle)
	from := off
	for from < len(haystack) {
		pos := Memchr(haystack[from:], rare)
		if pos < 0 {
			return -1
		}
		cand := from + pos - off
		if cand+n > len(haystack) {
			return -1
		}
		if bytes.Equal(haystack[cand:cand+n], needle) {
			return cand
		}
		from += pos + 1
	}
	return -1
}

// RareByte returns the byte of needle that is least frequent in typical
// text, and its first index. needle must not be empty.
func RareByte(needle []byte) (b byte, index int) {
	b = needle[0]
	for i := 1; i < len(needle); i++ {
		if byteRank[needle[i]] < byteRank[b] {
			b, index = needle[i], i
		}
	}
	return b, index
}

// byteRank ranks bytes by how common they are in English text and source
// code. Lower is rarer.
var byteRank = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}
