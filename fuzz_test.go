package linegrep

import (
	"testing"
	"unicode/utf8"
)

var seedPatterns = []string{
	`hello`,
	`^hello$`,
	`\d+`,
	`\s\w+`,
	`[a-z]+`,
	`[^aeiou]+`,
	`ca?t`,
	`ca+t`,
	`(cat|dog)s`,
	`(\w+) and \1`,
	`^(\d+)-\1$`,
	`((a)x|ab)c`,
	`([^ ]+) apple`,
	`a.c`,
	`é+`,
	`$`,
	``,
}

var seedInputs = []string{
	"",
	"hello",
	"hello world",
	"cat and cat",
	"12-12",
	"hot dogs",
	"pineapple apple",
	"café",
	"\xff\xfe",
}

// FuzzMatch checks that compiled patterns never panic, that repeated
// searches agree, that the prefilter and ASCII fast path never change a
// result, and that reported spans are well formed.
func FuzzMatch(f *testing.F) {
	for _, p := range seedPatterns {
		for _, s := range seedInputs {
			f.Add(p, s)
		}
	}

	plain := DefaultConfig()
	plain.EnablePrefilter = false
	plain.EnableASCIIOptimization = false

	f.Fuzz(func(t *testing.T, pattern, input string) {
		re, err := Compile(pattern)
		if err != nil {
			return
		}
		slow, err := CompileWithConfig(pattern, plain)
		if err != nil {
			t.Fatalf("plain config rejected %q: %v", pattern, err)
		}

		first := re.MatchString(input)
		if second := re.MatchString(input); first != second {
			t.Fatalf("MatchString(%q, %q) not idempotent: %v then %v", pattern, input, first, second)
		}
		if got := slow.MatchString(input); got != first {
			t.Fatalf("MatchString(%q, %q) = %v with prefilter, %v without", pattern, input, first, got)
		}

		loc := re.FindStringIndex(input)
		if (loc != nil) != first {
			t.Fatalf("FindStringIndex(%q, %q) = %v, MatchString = %v", pattern, input, loc, first)
		}
		if loc == nil {
			return
		}
		if loc[0] < 0 || loc[0] > loc[1] || loc[1] > len(input) {
			t.Fatalf("FindStringIndex(%q, %q) = %v out of range", pattern, input, loc)
		}
		if utf8.ValidString(input) && (!utf8.RuneStart(byteAt(input, loc[0])) || !utf8.RuneStart(byteAt(input, loc[1]))) {
			t.Fatalf("FindStringIndex(%q, %q) = %v splits a rune", pattern, input, loc)
		}

		sub := re.FindStringSubmatchIndex(input)
		if len(sub) != 2*(re.NumSubexp()+1) || sub[0] != loc[0] || sub[1] != loc[1] {
			t.Fatalf("FindStringSubmatchIndex(%q, %q) = %v, want prefix %v", pattern, input, sub, loc)
		}
	})
}

// byteAt returns s[i], or a rune-start byte at the end of s.
func byteAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}
