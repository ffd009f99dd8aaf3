package simd

import "encoding/binary"

const hi8 = uint64(0x8080808080808080)

// IsASCII reports whether every byte in data is below 0x80.
// An empty slice is ASCII.
//
// Example:
//
//	simd.IsASCII([]byte("hello")) // true
//	simd.IsASCII([]byte("héllo")) // false
func IsASCII(data []byte) bool {
	if hasWide && len(data) >= wideThreshold {
		return isASCIIWide(data)
	}
	return isASCIIGeneric(data)
}

// isASCIIGeneric checks the high bit of 8 bytes per step.
func isASCIIGeneric(data []byte) bool {
	i := 0
	for ; i+8 <= len(data); i += 8 {
		if binary.LittleEndian.Uint64(data[i:])&hi8 != 0 {
			return false
		}
	}
	for ; i < len(data); i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

// isASCIIWide ORs four words together before testing, so one branch covers
// 32 bytes.
func isASCIIWide(data []byte) bool {
	i := 0
	for ; i+32 <= len(data); i += 32 {
		w := binary.LittleEndian.Uint64(data[i:]) |
			binary.LittleEndian.Uint64(data[i+8:]) |
			binary.LittleEndian.Uint64(data[i+16:]) |
			binary.LittleEndian.Uint64(data[i+24:])
		if w&hi8 != 0 {
			return false
		}
	}
	return isASCIIGeneric(data[i:])
}
