// Package simd provides the byte-scanning primitives used by the prefilter
// and by the ASCII fast path of the engine.
//
// Everything here is portable Go. On CPUs with wide vector units (AVX2 on
// amd64, ASIMD on arm64) the routines switch to loops that either hand off
// to the runtime's vectorized bytes.IndexByte or unroll the SWAR word loop
// four words at a time. Other CPUs use the plain 8-byte SWAR loop.
package simd

import "golang.org/x/sys/cpu"

// wideThreshold is the input length below which the wide loops are not
// worth their setup.
const wideThreshold = 32

// hasWide is evaluated once at package initialization.
var hasWide = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// HasWide reports whether the wide code paths are active on this CPU.
func HasWide() bool {
	return hasWide
}
