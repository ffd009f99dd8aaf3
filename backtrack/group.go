package backtrack

import "github.com/coregx/linegrep/syntax"

// group matches the group opened at pattern index pi followed by the rest
// of [pi, pe).
//
// Without RetryGroupStart the group is tried at si only. With it, an
// uncommitted attempt that fails at si is repeated at si+1, si+2, ... until
// it succeeds or the subject runs out.
func (m *machine) group(pi, pe, si, start int, must bool, after rune) result {
	for {
		mark := m.caps.Mark()
		if r := m.groupAt(pi, pe, si, start, must, after); r.ok {
			return r
		}
		m.caps.Rollback(mark)

		if must || !m.retry {
			return result{}
		}
		si++
		if si >= len(m.subj) {
			return result{}
		}
		start = si
	}
}

// groupAt tries the alternatives of the group at pi in order against the
// subject from si and commits to the first one that matches. The span that
// alternative consumed becomes the group's capture; the pattern after the
// closing ')' is then matched with commitment forced on.
func (m *machine) groupAt(pi, pe, si, start int, must bool, after rune) result {
	end := m.p.CloseAt(pi)
	n := m.p.GroupAt(pi)
	lookahead := m.lookahead(end+1, pe)

	var alt result
	for _, sp := range m.p.Alternatives(n) {
		la := noRune
		if sp.Len() > 0 && m.pat[sp.Start] == '[' {
			la = lookahead
		}

		mark := m.caps.Mark()
		alt = m.run(sp.Start, sp.End, si, si, must, la)
		if alt.ok {
			break
		}
		m.caps.Rollback(mark)
	}
	if !alt.ok {
		return result{}
	}

	m.caps.Set(n, alt.start, alt.end)
	if !must {
		start = alt.start
	}
	if end+1 == pe {
		return result{ok: true, start: start, end: alt.end}
	}
	return m.run(end+1, pe, alt.end, start, true, after)
}

// lookahead returns the plain literal rune at pattern index i, or noRune
// if there is none inside [.., pe).
func (m *machine) lookahead(i, pe int) rune {
	if i < pe && !syntax.IsMeta(m.pat[i]) {
		return m.pat[i]
	}
	return noRune
}
