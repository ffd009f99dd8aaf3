package syntax

// Class is a parsed bracket expression.
type Class struct {
	Set     Set
	Negated bool
}

// Accepts reports whether r is accepted by the class, honoring negation.
func (c *Class) Accepts(r rune) bool {
	return c.Set.Match(r) != c.Negated
}

// ParseClass parses the bracket expression starting at src[at] == '['.
// It returns the class and the index of the closing ']'.
//
// A '^' directly after '[' negates the class. `\x` is a single member: the
// digit, space or word class for d, s, w, otherwise the literal x. `a-z`
// between two literal members is an inclusive range; a '-' that cannot form
// a range is literal. The first ']' always closes, so "[]" is the empty class.
func ParseClass(src []rune, at int) (*Class, int, error) {
	i := at + 1
	cls := &Class{}
	if i < len(src) && src[i] == '^' {
		cls.Negated = true
		i++
	}

	for i < len(src) {
		if src[i] == ']' {
			return cls, i, nil
		}

		lo, isLit, next, err := classMember(src, at, i)
		if err != nil {
			return nil, 0, err
		}

		if isLit && next+1 < len(src) && src[next] == '-' && src[next+1] != ']' {
			hi, hiLit, after, err := classMember(src, at, next+1)
			if err != nil {
				return nil, 0, err
			}
			if hiLit {
				if hi.Lit < lo.Lit {
					return nil, 0, &Error{Code: ErrInvalidCharRange, Expr: string(src[i:after])}
				}
				cls.Set = append(cls.Set, Cond{Kind: CondRange, Lit: lo.Lit, Hi: hi.Lit})
				i = after
				continue
			}
		}

		cls.Set = append(cls.Set, lo)
		i = next
	}

	return nil, 0, &Error{Code: ErrMissingBracket, Expr: string(src[at:])}
}

// classMember reads one member at src[i]. literal is false for the
// symbolic classes, which cannot be range endpoints.
func classMember(src []rune, at, i int) (c Cond, literal bool, next int, err error) {
	if src[i] != '\\' {
		return Literal(src[i]), true, i + 1, nil
	}
	if i+1 >= len(src) {
		return Cond{}, false, 0, &Error{Code: ErrMissingBracket, Expr: string(src[at:])}
	}
	e := src[i+1]
	if !validEscape(e) {
		return Cond{}, false, 0, &Error{Code: ErrInvalidEscape, Expr: string(src[i : i+2])}
	}
	return EscapeCond(e), !isClassEscape(e), i + 2, nil
}
