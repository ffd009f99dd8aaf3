package backtrack

import "github.com/coregx/linegrep/syntax"

// atom is the resolved form of the pattern unit at one index.
type atom struct {
	cond  syntax.Cond
	class *syntax.Class // bracket class, nil otherwise
	never bool          // backreference to a group that has not captured
	ref   int           // group number of a resolved backreference
	next  int           // pattern index just past the atom, before any quantifier
}

// negated reports whether the atom is a negated bracket class.
func (a *atom) negated() bool {
	return a.class != nil && a.class.Negated
}

// contains reports whether r is in the atom's acceptance set, ignoring
// negation.
func (a *atom) contains(r rune) bool {
	switch {
	case a.never:
		return false
	case a.class != nil:
		return a.class.Set.Match(r)
	}
	return a.cond.Match(r)
}

// classify resolves the atom starting at pattern index pi. Anchors and
// groups are handled by the caller before classify is reached.
func (m *machine) classify(pi int) atom {
	switch r := m.pat[pi]; r {
	case '\\':
		e := m.pat[pi+1]
		if e >= '1' && e <= '9' {
			n := int(e - '0')
			if _, _, ok := m.caps.Get(n); ok {
				return atom{ref: n, next: pi + 2}
			}
			return atom{never: true, next: pi + 2}
		}
		return atom{cond: syntax.EscapeCond(e), next: pi + 2}

	case '[':
		return atom{class: m.p.ClassAt(pi), next: m.p.CloseAt(pi) + 1}

	case '.':
		return atom{cond: syntax.Cond{Kind: syntax.CondAny}, next: pi + 1}

	default:
		return atom{cond: syntax.Literal(r), next: pi + 1}
	}
}

// quantifierAt returns the quantifier rune at pattern index i, or 0.
func (m *machine) quantifierAt(i, pe int) rune {
	if i < pe && syntax.IsQuantifier(m.pat[i]) {
		return m.pat[i]
	}
	return 0
}
