// Package linegrep provides a single-line regular expression matcher in
// the style of grep -E.
//
// Patterns are interpreted directly by a backtracking matcher with a small,
// strict dialect:
//   - literals, '.', \d, \s, \w and escaped punctuation such as \.
//   - bracket classes [abc], [a-z] and negated classes [^abc]
//   - the anchors ^ (start of line) and $ (end of line)
//   - the quantifiers + and ?
//   - capturing groups with alternation (cat|dog) and backreferences \1-\9
//
// The search scans forward for the first rune that starts a match and then
// commits: later atoms must match in sequence, quantified runs are greedy and
// are not given back, and a group keeps the first alternative that matches.
// Constructs of richer dialects ('*', {n,m}, lookaround, (?:...), alternation
// outside a group) are rejected at compile time rather than misread.
//
// Basic usage:
//
//	re, err := linegrep.Compile(`(\w+) and \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("cat and cat") // true
//	re.MatchString("cat and dog") // false
//
// Custom configuration:
//
//	config := linegrep.DefaultConfig()
//	config.RetryGroupStart = true
//	re, err := linegrep.CompileWithConfig(`(cat|dog)s`, config)
package linegrep

import (
	"github.com/coregx/linegrep/meta"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := linegrep.MustCompile(`^\d+-\d+$`)
//	re.MatchString("10-20") // true
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Regexp is an alias for Regex, so code written against the standard
// library's type name keeps compiling.
type Regexp = Regex

// Compile compiles a pattern with the default configuration.
//
// The error is a *meta.CompileError. Use errors.Is with syntax.ErrMalformed
// or syntax.ErrUnsupported to tell broken patterns from unsupported ones.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var logLine = linegrep.MustCompile(`^(\w+): (.+)$`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := linegrep.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := linegrep.CompileWithConfig(`needle`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// MatchString reports whether s matches pattern. More complicated queries
// need to use Compile and the Regex methods.
func MatchString(pattern, s string) (matched bool, err error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Match reports whether b matches pattern.
func Match(pattern string, b []byte) (matched bool, err error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(b), nil
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned pattern matches the literal text.
//
// Example:
//
//	linegrep.QuoteMeta("1+1=2?") // `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Match reports whether b contains a match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains a match of the pattern.
//
// Example:
//
//	re := linegrep.MustCompile(`ca?t`)
//	re.MatchString("ct")   // true
//	re.MatchString("caat") // false
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch([]byte(s))
}

// Find returns the text of the match in b, or nil.
//
// Example:
//
//	re := linegrep.MustCompile(`\d+`)
//	re.Find([]byte("abc123")) // []byte("123")
func (r *Regex) Find(b []byte) []byte {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return m.Bytes()
}

// FindString returns the text of the match in s, or "" if there is none.
// Use FindStringIndex to tell an empty match from no match.
func (r *Regex) FindString(s string) string {
	m := r.engine.Find([]byte(s))
	if m == nil {
		return ""
	}
	return m.String()
}

// FindIndex returns the byte offsets [start, end] of the match in b, or nil.
func (r *Regex) FindIndex(b []byte) []int {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}

// FindStringIndex returns the byte offsets [start, end] of the match in s,
// or nil.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindSubmatch returns the text of the match and of every group, or nil.
// Groups that did not participate are nil.
//
// Example:
//
//	re := linegrep.MustCompile(`(\w+)@(\w+)`)
//	m := re.FindSubmatch([]byte("mail user@host"))
//	// m[0] = "user@host"
//	// m[1] = "user"
//	// m[2] = "host"
func (r *Regex) FindSubmatch(b []byte) [][]byte {
	m := r.engine.FindSubmatch(b)
	if m == nil {
		return nil
	}
	return m.AllGroups()
}

// FindStringSubmatch returns the text of the match and of every group, or
// nil. Groups that did not participate are "".
func (r *Regex) FindStringSubmatch(s string) []string {
	m := r.engine.FindSubmatch([]byte(s))
	if m == nil {
		return nil
	}
	return m.AllGroupStrings()
}

// FindSubmatchIndex returns the byte offset pairs of the match and of every
// group, or nil. Groups that did not participate have -1 offsets.
func (r *Regex) FindSubmatchIndex(b []byte) []int {
	m := r.engine.FindSubmatch(b)
	if m == nil {
		return nil
	}
	return m.AllGroupIndex()
}

// FindStringSubmatchIndex is like FindSubmatchIndex for strings.
func (r *Regex) FindStringSubmatchIndex(s string) []int {
	return r.FindSubmatchIndex([]byte(s))
}

// NumSubexp returns the number of capturing groups.
func (r *Regex) NumSubexp() int {
	return r.engine.NumCaptures()
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Stats returns search statistics accumulated since compilation or the
// last ResetStats.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats zeroes the search statistics.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
