package syntax

import "unicode"

// CondKind identifies the acceptance rule of a single Cond.
type CondKind uint8

const (
	// CondLiteral accepts exactly one rune.
	CondLiteral CondKind = iota
	// CondRange accepts runes in the inclusive range [Lit, Hi].
	CondRange
	// CondDigit accepts ASCII decimal digits.
	CondDigit
	// CondSpace accepts any Unicode whitespace.
	CondSpace
	// CondWord accepts any Unicode letter or number.
	CondWord
	// CondAny accepts every rune.
	CondAny
)

// String returns a short name for the kind, used in debug output.
func (k CondKind) String() string {
	switch k {
	case CondLiteral:
		return "Literal"
	case CondRange:
		return "Range"
	case CondDigit:
		return "Digit"
	case CondSpace:
		return "Space"
	case CondWord:
		return "Word"
	case CondAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// Cond is one acceptance condition of an atom.
type Cond struct {
	Kind CondKind
	Lit  rune // literal rune, or range low bound
	Hi   rune // range high bound (CondRange only)
}

// Literal returns a condition accepting exactly r.
func Literal(r rune) Cond {
	return Cond{Kind: CondLiteral, Lit: r}
}

// Match reports whether r satisfies the condition.
func (c Cond) Match(r rune) bool {
	switch c.Kind {
	case CondLiteral:
		return r == c.Lit
	case CondRange:
		return r >= c.Lit && r <= c.Hi
	case CondDigit:
		return r >= '0' && r <= '9'
	case CondSpace:
		return unicode.IsSpace(r)
	case CondWord:
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	case CondAny:
		return true
	}
	return false
}

// Set is the acceptance set of an atom. An empty set accepts nothing.
type Set []Cond

// Match reports whether r satisfies at least one condition in the set.
func (s Set) Match(r rune) bool {
	for _, c := range s {
		if c.Match(r) {
			return true
		}
	}
	return false
}

// EscapeCond resolves the rune following a backslash into a condition.
// The parser has already rejected escapes that are not supported.
func EscapeCond(r rune) Cond {
	switch r {
	case 'd':
		return Cond{Kind: CondDigit}
	case 's':
		return Cond{Kind: CondSpace}
	case 'w':
		return Cond{Kind: CondWord}
	}
	return Literal(r)
}

// isClassEscape reports whether r names a symbolic class after a backslash.
func isClassEscape(r rune) bool {
	return r == 'd' || r == 's' || r == 'w'
}

// validEscape reports whether `\r` is accepted. Class letters and
// punctuation are allowed; other ASCII letters and digits name constructs
// of other dialects (\b, \D, \n, \0, ...) and are rejected instead of being
// read as literals.
func validEscape(r rune) bool {
	if isClassEscape(r) {
		return true
	}
	if r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return false
	}
	return true
}
