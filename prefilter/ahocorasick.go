package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/linegrep/literal"
)

// ahoCorasickPrefilter looks for any of several literals in one pass.
type ahoCorasickPrefilter struct {
	auto   *ahocorasick.Automaton
	minLen int
	size   int
}

func newAhoCorasickPrefilter(seq *literal.Seq) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	size := 0
	for _, lit := range seq.Literals() {
		builder.AddPattern(lit)
		size += len(lit)
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{auto: auto, minLen: seq.MinLen(), size: size}, nil
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) LiteralLen() int { return p.minLen }

// HeapBytes approximates the automaton by the total pattern size.
func (p *ahoCorasickPrefilter) HeapBytes() int { return p.size }

func (p *ahoCorasickPrefilter) String() string { return "ahocorasick" }
