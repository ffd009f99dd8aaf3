package literal

import (
	"unicode/utf8"

	"github.com/coregx/linegrep/syntax"
)

// ExtractorConfig bounds literal extraction.
type ExtractorConfig struct {
	// MinLiteralLen is the shortest literal, in bytes, worth a prefilter.
	MinLiteralLen int

	// MaxLiterals caps the number of alternatives taken from a leading group.
	MaxLiterals int
}

// DefaultExtractorConfig returns the default limits.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		MinLiteralLen: 1,
		MaxLiterals:   64,
	}
}

// Extractor derives required literals from parsed patterns.
type Extractor struct {
	config ExtractorConfig
}

// NewExtractor creates an Extractor with the given limits.
func NewExtractor(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// Required returns literals at least one of which occurs in every subject p
// matches, or nil when no useful set exists.
//
// Two shapes are recognized:
//
//   - a pattern starting with a literal run: "error: (.+)" requires "error: ".
//     The run stops before an atom marked '?', and includes an atom marked
//     '+' once and then stops.
//   - a pattern starting with a group whose alternatives all start with a
//     literal run: "(cat|dog)s" requires "cat" or "dog".
//
// A leading '^' is skipped in both cases.
func (e *Extractor) Required(p *syntax.Pattern) *Seq {
	pat := p.Runes()
	pi := 0
	if pi < len(pat) && pat[pi] == '^' {
		pi++
	}

	var seq *Seq
	if pi < len(pat) && pat[pi] == '(' {
		seq = e.groupLiterals(p, pi)
	} else if run := literalRun(pat, pi, len(pat)); len(run) > 0 {
		seq = NewSeq(NewLiteral(run))
	}

	if seq.IsEmpty() {
		return nil
	}
	seq.Minimize()
	if seq.MinLen() < e.config.MinLiteralLen {
		return nil
	}
	return seq
}

// groupLiterals collects the literal run of each alternative of the group
// opened at pi. It gives up if any alternative has none, since a subject
// matching that alternative need not contain any of the others.
func (e *Extractor) groupLiterals(p *syntax.Pattern, pi int) *Seq {
	alts := p.Alternatives(p.GroupAt(pi))
	if len(alts) > e.config.MaxLiterals {
		return nil
	}

	lits := make([]Literal, 0, len(alts))
	for _, sp := range alts {
		run := literalRun(p.Runes(), sp.Start, sp.End)
		if len(run) == 0 {
			return nil
		}
		lits = append(lits, NewLiteral(run))
	}
	return NewSeq(lits...)
}

// literalRun returns the UTF-8 encoding of the literal runes at the start
// of pat[pi:pe].
func literalRun(pat []rune, pi, pe int) []byte {
	var buf []byte
	for pi < pe {
		r, next, ok := literalAt(pat, pi, pe)
		if !ok || r == utf8.RuneError {
			break
		}

		q := rune(0)
		if next < pe && syntax.IsQuantifier(pat[next]) {
			q = pat[next]
		}
		if q == '?' {
			break
		}

		buf = utf8.AppendRune(buf, r)
		if q == '+' {
			break
		}
		pi = next
	}
	return buf
}

// literalAt reports whether the atom at pat[pi] is a single literal rune and
// returns it with the index just past the atom.
func literalAt(pat []rune, pi, pe int) (r rune, next int, ok bool) {
	r = pat[pi]
	if r == '\\' {
		if pi+1 >= pe {
			return 0, 0, false
		}
		e := pat[pi+1]
		if e >= '0' && e <= '9' || e == 'd' || e == 's' || e == 'w' {
			return 0, 0, false
		}
		return e, pi + 2, true
	}
	if syntax.IsMeta(r) {
		return 0, 0, false
	}
	return r, pi + 1, true
}
