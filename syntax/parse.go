package syntax

// DefaultMaxDepth is the group nesting limit used when Parse is given a
// non-positive limit.
const DefaultMaxDepth = 100

// Span is a half-open range [Start, End) of pattern rune indices.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Pattern is a validated pattern with its jump tables.
//
// A Pattern is immutable after Parse and safe for concurrent use.
type Pattern struct {
	source string
	runes  []rune

	// closes holds, for every '[' and '(' that opens a construct, the index
	// of its closing rune. -1 elsewhere.
	closes []int

	// groups holds the capture number of every '(' that opens a group.
	groups []int

	// classes holds the parsed class of every '[' that opens a class.
	classes []*Class

	// alternatives[n] lists the top-level alternatives of group n.
	alternatives [][]Span

	numGroups int
	depth     int
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.source
}

// Runes returns the pattern as runes. The slice must not be modified.
func (p *Pattern) Runes() []rune {
	return p.runes
}

// Len returns the pattern length in runes.
func (p *Pattern) Len() int {
	return len(p.runes)
}

// NumGroups returns the number of capturing groups.
func (p *Pattern) NumGroups() int {
	return p.numGroups
}

// Depth returns the deepest group nesting seen in the pattern.
func (p *Pattern) Depth() int {
	return p.depth
}

// CloseAt returns the index of the ']' or ')' closing the construct opened
// at i, or -1 if i does not open a construct.
func (p *Pattern) CloseAt(i int) int {
	return p.closes[i]
}

// ClassAt returns the class opened at i, or nil.
func (p *Pattern) ClassAt(i int) *Class {
	return p.classes[i]
}

// GroupAt returns the capture number of the group opened at i, or 0.
func (p *Pattern) GroupAt(i int) int {
	return p.groups[i]
}

// Alternatives returns the top-level alternatives of group n (1-based).
func (p *Pattern) Alternatives(n int) []Span {
	return p.alternatives[n]
}

// IsQuantifier reports whether r is a supported quantifier.
func IsQuantifier(r rune) bool {
	return r == '+' || r == '?'
}

// IsMeta reports whether r has a special meaning outside bracket classes.
func IsMeta(r rune) bool {
	switch r {
	case '\\', '[', ']', '(', ')', '|', '.', '^', '$', '+', '?', '*', '{', '}':
		return true
	}
	return false
}

// Parse validates pattern and builds its jump tables. maxDepth bounds group
// nesting; a non-positive value selects DefaultMaxDepth.
//
// Malformed patterns fail with an *Error unwrapping to ErrMalformed;
// constructs of other dialects (bounded repetition, '*', lookaround,
// non-capturing groups, alternation outside a group, quantified groups) fail
// with an *Error unwrapping to ErrUnsupported.
func Parse(pattern string, maxDepth int) (*Pattern, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	runes := []rune(pattern)
	p := &Pattern{
		source:       pattern,
		runes:        runes,
		closes:       make([]int, len(runes)),
		groups:       make([]int, len(runes)),
		classes:      make([]*Class, len(runes)),
		alternatives: [][]Span{nil},
	}
	for i := range p.closes {
		p.closes[i] = -1
	}

	ps := &parser{src: runes, maxDepth: maxDepth, p: p}
	if err := ps.parseSeq(); err != nil {
		return nil, err
	}
	if ps.pos < len(runes) {
		if runes[ps.pos] == ')' {
			return nil, &Error{Code: ErrUnexpectedParen, Expr: pattern}
		}
		// '|' outside any group
		return nil, &Error{Code: ErrUnsupportedConstruct, Expr: "|"}
	}

	for _, ref := range ps.backrefs {
		if ref.n > p.numGroups {
			return nil, &Error{Code: ErrInvalidBackref, Expr: string(runes[ref.pos : ref.pos+2])}
		}
	}

	return p, nil
}

// MustParse is like Parse with the default depth but panics on error.
// It simplifies tests and package-level pattern tables.
func MustParse(pattern string) *Pattern {
	p, err := Parse(pattern, 0)
	if err != nil {
		panic(err)
	}
	return p
}

type atomKind uint8

const (
	atomPlain atomKind = iota
	atomAnchor
	atomGroup
)

type backref struct {
	pos int
	n   int
}

type parser struct {
	src      []rune
	pos      int
	depth    int
	maxDepth int
	p        *Pattern
	backrefs []backref
}

// parseSeq parses atoms up to the next top-level '|' or ')' or the end.
func (ps *parser) parseSeq() error {
	start := ps.pos
	for ps.pos < len(ps.src) {
		r := ps.src[ps.pos]
		if r == ')' || r == '|' {
			return nil
		}
		atomStart := ps.pos
		kind, err := ps.parseAtom(ps.pos == start)
		if err != nil {
			return err
		}
		if err := ps.parseRepeat(atomStart, kind); err != nil {
			return err
		}
	}
	return nil
}

func (ps *parser) parseAtom(first bool) (atomKind, error) {
	src := ps.src
	r := src[ps.pos]

	switch r {
	case '(':
		return atomGroup, ps.parseGroup()

	case '[':
		cls, end, err := ParseClass(src, ps.pos)
		if err != nil {
			return atomPlain, err
		}
		ps.p.classes[ps.pos] = cls
		ps.p.closes[ps.pos] = end
		ps.pos = end + 1
		return atomPlain, nil

	case '\\':
		if ps.pos+1 >= len(src) {
			return atomPlain, &Error{Code: ErrTrailingBackslash}
		}
		e := src[ps.pos+1]
		if e >= '1' && e <= '9' {
			ps.backrefs = append(ps.backrefs, backref{pos: ps.pos, n: int(e - '0')})
		} else if !validEscape(e) {
			return atomPlain, &Error{Code: ErrInvalidEscape, Expr: string(src[ps.pos : ps.pos+2])}
		}
		ps.pos += 2
		return atomPlain, nil

	case '+', '?':
		return atomPlain, &Error{Code: ErrMissingRepeatArgument, Expr: string(r)}

	case '*':
		return atomPlain, &Error{Code: ErrUnsupportedConstruct, Expr: "*"}

	case '{':
		if ps.pos+1 < len(src) && isDigit(src[ps.pos+1]) {
			return atomPlain, &Error{Code: ErrUnsupportedConstruct, Expr: ps.braceExpr()}
		}
		ps.pos++
		return atomPlain, nil

	case '^':
		ps.pos++
		if first {
			return atomAnchor, nil
		}
		return atomPlain, nil
	}

	ps.pos++
	return atomPlain, nil
}

func (ps *parser) parseGroup() error {
	src := ps.src
	open := ps.pos
	if open+1 < len(src) && src[open+1] == '?' {
		end := open + 3
		if end > len(src) {
			end = len(src)
		}
		return &Error{Code: ErrUnsupportedConstruct, Expr: string(src[open:end])}
	}

	ps.depth++
	if ps.depth > ps.maxDepth {
		return &Error{Code: ErrNestingDepth, Expr: ps.p.source}
	}
	if ps.depth > ps.p.depth {
		ps.p.depth = ps.depth
	}

	ps.p.numGroups++
	n := ps.p.numGroups
	ps.p.alternatives = append(ps.p.alternatives, nil)
	ps.pos++

	var spans []Span
	for {
		start := ps.pos
		if err := ps.parseSeq(); err != nil {
			return err
		}
		spans = append(spans, Span{Start: start, End: ps.pos})
		if ps.pos >= len(src) {
			return &Error{Code: ErrMissingParen, Expr: ps.p.source}
		}
		if src[ps.pos] == ')' {
			break
		}
		ps.pos++ // '|'
	}

	ps.p.closes[open] = ps.pos
	ps.p.groups[open] = n
	ps.p.alternatives[n] = spans
	ps.pos++
	ps.depth--
	return nil
}

// parseRepeat consumes an optional quantifier after the atom at atomStart.
func (ps *parser) parseRepeat(atomStart int, kind atomKind) error {
	src := ps.src
	if ps.pos >= len(src) || !IsQuantifier(src[ps.pos]) {
		return nil
	}

	switch kind {
	case atomGroup:
		return &Error{Code: ErrUnsupportedConstruct, Expr: string(src[atomStart : ps.pos+1])}
	case atomAnchor:
		return &Error{Code: ErrMissingRepeatArgument, Expr: string(src[atomStart : ps.pos+1])}
	}
	ps.pos++

	if ps.pos < len(src) {
		switch next := src[ps.pos]; {
		case IsQuantifier(next) || next == '*':
			return &Error{Code: ErrInvalidRepeatOp, Expr: string(src[ps.pos-1 : ps.pos+1])}
		case next == '{' && ps.pos+1 < len(src) && isDigit(src[ps.pos+1]):
			return &Error{Code: ErrInvalidRepeatOp, Expr: string(src[ps.pos-1:ps.pos]) + ps.braceExpr()}
		}
	}
	return nil
}

// braceExpr returns the bounded repetition text starting at ps.pos.
func (ps *parser) braceExpr() string {
	for i := ps.pos; i < len(ps.src); i++ {
		if ps.src[i] == '}' {
			return string(ps.src[ps.pos : i+1])
		}
	}
	return string(ps.src[ps.pos:])
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
