// Package prefilter rejects subjects that cannot match before the matcher
// runs.
//
// A prefilter is built from the literals extracted by package literal. Every
// subject the pattern can match contains at least one of them, so a subject
// where Find reports nothing is rejected without running the backtracker.
// The reported position is not a match start: the matcher always runs from
// the beginning of the subject.
//
// The strategy is chosen from the literal set:
//   - single byte → memchr
//   - single literal → memmem
//   - several literals → Aho-Corasick automaton
//
// Example:
//
//	seq := literal.NewExtractor(literal.DefaultExtractorConfig()).
//	    Required(syntax.MustParse("(cat|dog)s"))
//	pf := prefilter.NewBuilder(seq).Build()
//	pf.Find([]byte("hot dogs"), 0) // 4
package prefilter

import (
	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/simd"
)

// Prefilter finds required literals in a subject.
type Prefilter interface {
	// Find returns the index of the first occurrence of any literal at or
	// after start, or -1 if there is none.
	Find(haystack []byte, start int) int

	// LiteralLen returns the length of the shortest literal.
	LiteralLen() int

	// HeapBytes returns the memory held by the prefilter, for profiling.
	HeapBytes() int

	// String names the strategy, for debugging and statistics.
	String() string
}

// Builder selects a prefilter for a literal set.
type Builder struct {
	seq *literal.Seq
}

// NewBuilder creates a Builder for seq. seq may be nil.
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{seq: seq}
}

// Build returns the prefilter for the literal set, or nil when the set is
// empty or the automaton cannot be built. A nil Prefilter means every
// subject goes to the matcher.
func (b *Builder) Build() Prefilter {
	seq := b.seq
	switch {
	case seq.IsEmpty() || seq.MinLen() == 0:
		return nil
	case seq.Len() == 1 && seq.Get(0).Len() == 1:
		return newMemchrPrefilter(seq.Get(0).Bytes[0])
	case seq.Len() == 1:
		return newMemmemPrefilter(seq.Get(0).Bytes)
	}

	pf, err := newAhoCorasickPrefilter(seq)
	if err != nil {
		return nil
	}
	return pf
}

// memchrPrefilter looks for a single byte.
type memchrPrefilter struct {
	needle byte
}

func newMemchrPrefilter(needle byte) Prefilter {
	return &memchrPrefilter{needle: needle}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	pos := simd.Memchr(haystack[start:], p.needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memchrPrefilter) LiteralLen() int { return 1 }

func (p *memchrPrefilter) HeapBytes() int { return 0 }

func (p *memchrPrefilter) String() string { return "memchr" }

// memmemPrefilter looks for a single literal.
type memmemPrefilter struct {
	needle []byte
}

func newMemmemPrefilter(needle []byte) Prefilter {
	return &memmemPrefilter{needle: needle}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	pos := simd.Memmem(haystack[start:], p.needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memmemPrefilter) LiteralLen() int { return len(p.needle) }

func (p *memmemPrefilter) HeapBytes() int { return len(p.needle) }

func (p *memmemPrefilter) String() string { return "memmem" }
