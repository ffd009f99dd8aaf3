package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestRun_Stdin(t *testing.T) {
	code, out, errOut := run(t, "apple\nbanana\ncherry pie\n", "-E", `\w+ \w+`)
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "cherry pie\n", out)
	assert.Empty(t, errOut)
}

func TestRun_NoMatch(t *testing.T) {
	code, out, errOut := run(t, "apple\n", "-E", `\d`)
	assert.Equal(t, ExitNoMatch, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestRun_InvalidPattern(t *testing.T) {
	code, _, errOut := run(t, "a\n", "-E", "a{2}")
	assert.Equal(t, ExitError, code)
	assert.Equal(t, "error: error parsing regexp: unsupported construct: `{2}`\n", errOut)
}

func TestRun_MissingPattern(t *testing.T) {
	code, _, errOut := run(t, "a\n")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "extended-regexp")
}

func TestRun_OnlyMatching(t *testing.T) {
	code, out, _ := run(t, "id 42\nnone\nv7\n", "-o", "-E", `\d+`)
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "42\n7\n", out)
}

func TestRun_CRLF(t *testing.T) {
	code, out, _ := run(t, "abc\r\nxyz\r\n", "-E", "c$")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "abc\n", out)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "cat and cat\ncat and dog\n")
	writeFile(t, b, "dog and dog\n")

	code, out, _ := run(t, "", "-E", `(\w+) and \1`, a)
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "cat and cat\n", out)

	code, out, _ = run(t, "", "-E", `(\w+) and \1`, a, b)
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, a+":cat and cat\n"+b+":dog and dog\n", out)
}

func TestRun_MissingFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	writeFile(t, a, "hit\n")

	code, out, errOut := run(t, "", "-E", "hit", a, filepath.Join(dir, "absent.txt"))
	assert.Equal(t, ExitError, code)
	assert.Equal(t, a+":hit\n", out)
	assert.Contains(t, errOut, "absent.txt")
}

func TestRun_DirectoryWithoutRecursive(t *testing.T) {
	code, _, errOut := run(t, "", "-E", "x", t.TempDir())
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "is a directory")
}

func TestRun_RecursiveInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "func main() {}\n")
	writeFile(t, filepath.Join(dir, "sub", "lib.go"), "func helper() {}\n")
	writeFile(t, filepath.Join(dir, "sub", "notes.md"), "func in prose\n")

	code, out, _ := run(t, "", "-r", "--include", "**/*.go", "-E", "^func", dir)
	assert.Equal(t, ExitMatch, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "main.go") + ":func main() {}",
		filepath.Join(dir, "sub", "lib.go") + ":func helper() {}",
	}, lines)
}

func TestRun_RetryGroupStartFlag(t *testing.T) {
	code, _, _ := run(t, "cat dogs\n", "-E", "(cat|dog)s")
	assert.Equal(t, ExitNoMatch, code)

	code, out, _ := run(t, "cat dogs\n", "--retry-group-start", "-E", "(cat|dog)s")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "cat dogs\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "linegrep.yml")
	writeFile(t, cfg, "retry_group_start: true\nonly_matching: true\n")

	code, out, _ := run(t, "cat dogs\n", "--config", cfg, "-E", "(cat|dog)s")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "dogs\n", out)

	code, _, _ = run(t, "cat dogs\n", "--config", cfg, "--retry-group-start=false", "-E", "(cat|dog)s")
	assert.Equal(t, ExitNoMatch, code, "flag should override the file")
}

func TestRun_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "linegrep.yml")
	writeFile(t, cfg, "max_recursion_depth: 1\n")

	code, _, errOut := run(t, "x\n", "--config", cfg, "-E", "x")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "MaxRecursionDepth")
}

func TestRun_Stats(t *testing.T) {
	code, _, errOut := run(t, "needle\nhay\nhay\n", "--stats", "-E", "needle")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "searches=3 prefilter_rejects=2 ascii_fast_path=1 matches=1\n", errOut)

	code, _, errOut = run(t, "needle\nhay\n", "--stats", "--no-prefilter", "-E", "needle")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "searches=2 prefilter_rejects=0 ascii_fast_path=2 matches=1\n", errOut)
}

func TestMatchAnyGlob(t *testing.T) {
	assert.True(t, matchAnyGlob("sub/lib.go", []string{"**/*.go"}))
	assert.True(t, matchAnyGlob("sub/lib.go", []string{"*.go"}))
	assert.False(t, matchAnyGlob("sub/notes.md", []string{"**/*.go"}))
}

func TestRun_Color(t *testing.T) {
	code, out, _ := run(t, "id 42\n", "--color", "always", "-E", `\d+`)
	assert.Equal(t, ExitMatch, code)
	assert.True(t, strings.HasPrefix(out, "id \x1b["), "got %q", out)
	assert.Contains(t, out, "42")
	assert.True(t, strings.HasSuffix(out, "\x1b[0m\n"), "got %q", out)

	// A buffer is not a terminal, so auto stays plain.
	_, out, _ = run(t, "id 42\n", "-E", `\d+`)
	assert.Equal(t, "id 42\n", out)

	_, out, _ = run(t, "id 42\n", "--color", "never", "-o", "-E", `\d+`)
	assert.Equal(t, "42\n", out)
}

func TestRun_ColorInvalid(t *testing.T) {
	code, _, errOut := run(t, "x\n", "--color", "sometimes", "-E", "x")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, `invalid --color "sometimes"`)
}
