package meta

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/coregx/linegrep/syntax"
)

func mustCompile(t *testing.T, pattern string, config Config) *Engine {
	t.Helper()
	e, err := CompileWithConfig(pattern, config)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return e
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		class   error
	}{
		{"[abc", syntax.ErrMalformed},
		{"a**", syntax.ErrUnsupported},
		{"a{2}", syntax.ErrUnsupported},
		{`\2(a)`, syntax.ErrMalformed},
	}

	for _, tt := range tests {
		_, err := Compile(tt.pattern)
		if !errors.Is(err, tt.class) {
			t.Errorf("Compile(%q) = %v, want %v", tt.pattern, err, tt.class)
		}

		var cerr *CompileError
		if !errors.As(err, &cerr) || cerr.Pattern != tt.pattern {
			t.Errorf("Compile(%q) error should be *CompileError for the pattern", tt.pattern)
		}
	}

	_, err := Compile("(abc")
	if want := "error parsing regexp: missing closing ): `(abc`"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestCompileNestingLimit(t *testing.T) {
	config := DefaultConfig()
	config.MaxRecursionDepth = 10

	deep := "((((((((((a))))))))))"
	if _, err := CompileWithConfig(deep, config); err != nil {
		t.Errorf("depth 10: %v", err)
	}
	if _, err := CompileWithConfig("("+deep+")", config); !errors.Is(err, syntax.ErrMalformed) {
		t.Errorf("depth 11: err = %v, want malformed", err)
	}
}

// TestPrefilterTransparent checks that results are identical with and
// without the prefilter and the ASCII fast path.
func TestPrefilterTransparent(t *testing.T) {
	patterns := []string{
		"abc", "^abc$", "ab+c", "ab?c", "(cat|dog)s", "(foo|foobar)",
		`\d+`, `(\w+) and \1`, "é+", "[^x]+y", "x?y",
	}
	subjects := []string{
		"", "abc", "xxabcxx", "abxabc", "abbbc", "ac", "hot dogs", "cats",
		"foobar", "123", "cat and cat", "café", "ab", "zy", "\xffabc",
	}

	plain := DefaultConfig()
	plain.EnablePrefilter = false
	plain.EnableASCIIOptimization = false

	for _, p := range patterns {
		fast := mustCompile(t, p, DefaultConfig())
		slow := mustCompile(t, p, plain)
		for _, s := range subjects {
			if got, want := fast.IsMatch([]byte(s)), slow.IsMatch([]byte(s)); got != want {
				t.Errorf("pattern %q subject %q: prefiltered %v, plain %v", p, s, got, want)
			}
		}
	}
}

func TestFindByteOffsets(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		want    string
		start   int
	}{
		{`\d+`, "abc123", "123", 3},
		{"é+", "café!", "é", 3},
		{`\s\w+$`, "naïve café", " café", 6},
		{"", "abc", "", 0},
		{"$", "abc", "", 3},
	}

	for _, tt := range tests {
		e := mustCompile(t, tt.pattern, DefaultConfig())
		m := e.Find([]byte(tt.subject))
		if m == nil {
			t.Errorf("Find(%q, %q) = nil", tt.pattern, tt.subject)
			continue
		}
		if m.String() != tt.want || m.Start() != tt.start {
			t.Errorf("Find(%q, %q) = %q at %d, want %q at %d",
				tt.pattern, tt.subject, m.String(), m.Start(), tt.want, tt.start)
		}
	}

	e := mustCompile(t, "xyz", DefaultConfig())
	if m := e.Find([]byte("abc")); m != nil {
		t.Errorf("Find = %v, want nil", m)
	}
}

func TestFindSubmatch(t *testing.T) {
	e := mustCompile(t, `((\w+)!) and \1`, DefaultConfig())
	m := e.FindSubmatch([]byte("¡ café! and café!"))
	if m == nil {
		t.Fatal("FindSubmatch = nil")
	}

	if m.NumCaptures() != 3 {
		t.Fatalf("NumCaptures = %d, want 3", m.NumCaptures())
	}
	want := []string{"café! and café!", "café!", "café"}
	for i, w := range want {
		if got := string(m.Group(i)); got != w {
			t.Errorf("Group(%d) = %q, want %q", i, got, w)
		}
	}
	if idx := m.GroupIndex(1); idx[0] != 3 || idx[1] != 9 {
		t.Errorf("GroupIndex(1) = %v, want [3 9]", idx)
	}

	e = mustCompile(t, "((a)x|ab)c", DefaultConfig())
	m = e.FindSubmatch([]byte("abc"))
	if m == nil {
		t.Fatal("FindSubmatch = nil")
	}
	if m.Group(2) != nil || m.GroupIndex(2) != nil {
		t.Errorf("Group(2) = %q, want nil for an abandoned alternative", m.Group(2))
	}
	if got := len(m.AllGroups()); got != 3 {
		t.Errorf("len(AllGroups) = %d, want 3", got)
	}
	if got := m.AllGroupIndex(); fmt.Sprint(got) != "[0 3 0 2 -1 -1]" {
		t.Errorf("AllGroupIndex = %v", got)
	}
}

func TestStats(t *testing.T) {
	e := mustCompile(t, "needle", DefaultConfig())

	e.IsMatch([]byte("haystack"))
	e.IsMatch([]byte("a needle"))
	e.IsMatch([]byte("nééedle"))
	e.IsMatch([]byte("needle é"))

	got := e.Stats()
	want := Stats{Searches: 4, PrefilterRejects: 2, ASCIIFastPath: 1, Matches: 2}
	if got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}

	e.ResetStats()
	if got := e.Stats(); got != (Stats{}) {
		t.Errorf("after ResetStats = %+v", got)
	}
}

func TestRetryGroupStartConfig(t *testing.T) {
	config := DefaultConfig()
	if mustCompile(t, "(cat|dog)s", config).IsMatch([]byte("cat dogs")) {
		t.Error("default config should not retry the group")
	}
	config.RetryGroupStart = true
	if !mustCompile(t, "(cat|dog)s", config).IsMatch([]byte("cat dogs")) {
		t.Error("RetryGroupStart should find the later match")
	}
}

func TestConcurrentSearch(t *testing.T) {
	e := mustCompile(t, `(\w+) and \1`, DefaultConfig())
	subjects := map[string]bool{
		"cat and cat":    true,
		"cat and dog":    false,
		"ünï and ünï":    true,
		"no conjunction": false,
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for s, want := range subjects {
					if got := e.IsMatch([]byte(s)); got != want {
						t.Errorf("IsMatch(%q) = %v, want %v", s, got, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	if got := e.Stats().Searches; got != 8*200*4 {
		t.Errorf("Searches = %d, want %d", got, 8*200*4)
	}
}
