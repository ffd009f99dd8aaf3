// Package literal extracts the literal byte strings a pattern requires.
//
// The result feeds the prefilter: if none of the required literals occurs in
// a subject, the matcher cannot accept it and the search is skipped. The
// literals say nothing about where a match starts, so they are only used to
// reject subjects, never to position the matcher.
package literal

import (
	"bytes"
	"sort"
)

// Literal is one required byte string.
type Literal struct {
	Bytes []byte
}

// NewLiteral creates a Literal from b.
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns the literal text for debugging.
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + "}"
}

// Seq is a set of literals at least one of which occurs in every subject the
// pattern matches.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("cat")),
//	    literal.NewLiteral([]byte("dog")),
//	)
//	seq.Len() // 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from lits.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals. A nil Seq is empty.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// Literals returns the literals as byte slices, in order.
func (s *Seq) Literals() [][]byte {
	if s == nil {
		return nil
	}
	out := make([][]byte, len(s.literals))
	for i, lit := range s.literals {
		out[i] = lit.Bytes
	}
	return out
}

// MinLen returns the length of the shortest literal, or 0 for an empty Seq.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		n = min(n, lit.Len())
	}
	return n
}

// Minimize removes literals that are redundant for an "any of" test: exact
// duplicates, and literals that contain a shorter literal of the set. The
// remaining literals are sorted shortest first, then lexicographically.
//
// Example: ["foobar", "foo", "bar", "foo"] minimizes to ["bar", "foo"].
func (s *Seq) Minimize() {
	if s.Len() < 2 {
		return
	}

	sort.Slice(s.literals, func(i, j int) bool {
		a, b := s.literals[i].Bytes, s.literals[j].Bytes
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return bytes.Compare(a, b) < 0
	})

	kept := s.literals[:0]
	for _, lit := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(lit.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, lit)
		}
	}
	s.literals = kept
}
