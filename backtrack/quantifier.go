package backtrack

// consume applies quantifier q ('+', '?' or 0) to atom a at subject index si
// and returns how many runes the atom accepted. '+' takes the longest run,
// anything else at most one rune.
//
// A negated class accepts runes outside its set and stops before the
// lookahead rune after. Meeting a rune inside the set anywhere in the run is
// a violation: the caller must fail the current attempt instead of shifting
// past it or keeping the runes accepted so far.
func (m *machine) consume(a *atom, q rune, si int, after rune) (n int, violated bool) {
	subj := m.subj
	neg := a.negated()

	for si+n < len(subj) {
		r := subj[si+n]
		if neg {
			if a.contains(r) {
				return 0, true
			}
			if after != noRune && r == after {
				break
			}
		} else if !a.contains(r) {
			break
		}

		n++
		if q != '+' {
			break
		}
	}
	return n, false
}

// consumeRef matches the text captured by the backreference a at subject
// index si. Without a quantifier the text must occur once; with '+' it is
// repeated greedily (at least once); with '?' it is optional. The captured
// text is compared rune by rune and never re-read as pattern syntax.
func (m *machine) consumeRef(a atom, q rune, si int) (n int, ok bool) {
	start, end, _ := m.caps.Get(a.ref)
	text := m.subj[start:end]

	count := 0
	for m.hasPrefixAt(si+n, text) {
		n += len(text)
		count++
		if q != '+' || len(text) == 0 {
			break
		}
	}

	if count == 0 {
		return 0, q == '?'
	}
	return n, true
}

// hasPrefixAt reports whether subject[i:] starts with text.
func (m *machine) hasPrefixAt(i int, text []rune) bool {
	if i+len(text) > len(m.subj) {
		return false
	}
	for j, r := range text {
		if m.subj[i+j] != r {
			return false
		}
	}
	return true
}
