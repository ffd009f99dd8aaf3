// Package backtrack implements the interpretive backtracking matcher.
//
// There is no compilation step: the matcher walks the validated pattern
// (see package syntax) and the subject with two indices and a commitment
// flag. Before the first atom matches, a failed atom shifts the start of the
// candidate match one rune to the right; after it, every atom is mandatory
// and a failure ends the attempt. Quantified runs are greedy and are never
// given back, and a group commits to the first alternative that matches.
//
// Example:
//
//	bt := backtrack.New(syntax.MustParse(`(\w+) and \1`), backtrack.Config{})
//	bt.IsMatch([]rune("cat and cat")) // true
//	bt.IsMatch([]rune("cat and dog")) // false
package backtrack

import "github.com/coregx/linegrep/syntax"

// noRune marks an unset lookahead rune.
const noRune rune = -1

// Config controls matcher behavior.
type Config struct {
	// RetryGroupStart lets a pattern step that starts with a group, reached
	// before anything has matched, be retried at each later subject
	// position. When false (the default) such a step is tried at the
	// current position only and the attempt fails if no alternative and
	// continuation match there.
	RetryGroupStart bool
}

// Backtracker matches one validated pattern against subjects.
//
// A Backtracker is immutable and safe for concurrent use as long as each
// goroutine passes its own Captures to Search.
type Backtracker struct {
	pattern *syntax.Pattern
	config  Config
}

// New creates a Backtracker for p.
func New(p *syntax.Pattern, config Config) *Backtracker {
	return &Backtracker{pattern: p, config: config}
}

// Pattern returns the pattern the Backtracker was built for.
func (b *Backtracker) Pattern() *syntax.Pattern {
	return b.pattern
}

// IsMatch reports whether the pattern matches subject.
func (b *Backtracker) IsMatch(subject []rune) bool {
	_, _, ok := b.Search(subject, NewCaptures(b.pattern.NumGroups()))
	return ok
}

// Search runs one match attempt over subject. On success it returns the
// rune span [start, end) covered by the match and leaves the group spans in
// caps. caps is reset first, so it may be reused across calls.
func (b *Backtracker) Search(subject []rune, caps *Captures) (start, end int, ok bool) {
	caps.Reset(b.pattern.NumGroups())
	m := machine{
		p:     b.pattern,
		pat:   b.pattern.Runes(),
		subj:  subject,
		caps:  caps,
		retry: b.config.RetryGroupStart,
	}
	r := m.run(0, len(m.pat), 0, 0, false, noRune)
	if !r.ok {
		return -1, -1, false
	}
	return r.start, r.end, true
}

// result is the outcome of matching a pattern range.
type result struct {
	ok    bool
	start int
	end   int
}

// machine holds the state shared by every step of one attempt.
type machine struct {
	p     *syntax.Pattern
	pat   []rune
	subj  []rune
	caps  *Captures
	retry bool
}

// run matches pattern range [pi, pe) against the subject from si.
//
// must is the commitment flag: while false, a failed atom drops one subject
// rune and the same atom is tried again; once any atom matches (or '^' is
// consumed) it becomes true and failures are final. start tracks where the
// committed match began. after is the lookahead rune a negated class must
// stop before, or noRune.
func (m *machine) run(pi, pe, si, start int, must bool, after rune) result {
	subj := m.subj
	for {
		if !must {
			start = si
		}
		if pi == pe {
			return result{ok: true, start: start, end: si}
		}
		if si == len(subj) {
			return result{ok: pe-pi == 1 && m.pat[pi] == '$', start: start, end: si}
		}

		switch m.pat[pi] {
		case '^':
			if !must {
				pi++
				must = true
				after = noRune
				continue
			}
		case '(':
			return m.group(pi, pe, si, start, must, after)
		}

		a := m.classify(pi)
		q := m.quantifierAt(a.next, pe)
		next := a.next
		if q != 0 {
			next++
		}

		if a.ref > 0 {
			n, ok := m.consumeRef(a, q, si)
			if !ok {
				return result{}
			}
			si += n
			pi = next
			must = true
			if pi == pe {
				return result{ok: true, start: start, end: si}
			}
			continue
		}

		n, violated := m.consume(&a, q, si, after)
		if violated {
			return result{}
		}

		switch {
		case n > 0 || q == '?':
			si += n
			pi = next
			if n > 0 {
				must = true
			}
			if pi == pe {
				return result{ok: true, start: start, end: si}
			}
		case must:
			return result{}
		default:
			si++
			start = si
		}

		// End of subject vacuously satisfies a negated class.
		if a.negated() && si == len(subj) {
			return result{ok: true, start: start, end: si}
		}
	}
}
