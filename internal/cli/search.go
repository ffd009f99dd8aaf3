package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/coregx/linegrep"
)

// maxLineSize is the longest line the scanner accepts.
const maxLineSize = 16 << 20

// stdinName labels lines read from standard input.
const stdinName = "(standard input)"

type searcher struct {
	re     *linegrep.Regex
	opts   Options
	stdout io.Writer
	stderr io.Writer
	color  *highlighter

	// failed is set when a file could not be read; the search goes on but
	// the exit status becomes 2.
	failed bool
}

// run searches stdin or the given paths and reports whether any line
// matched.
func (s *searcher) run(stdin io.Reader, paths []string) (bool, error) {
	if len(paths) == 0 {
		return s.scan(stdin, stdinName, false)
	}

	files, err := s.collect(paths)
	if err != nil {
		return false, err
	}
	prefix := len(paths) > 1 || s.opts.Recursive

	matched := false
	for _, name := range files {
		ok, err := s.scanFile(name, prefix)
		if err != nil {
			s.warn(err)
			continue
		}
		matched = matched || ok
	}

	if s.failed {
		return matched, errSearchFailed
	}
	return matched, nil
}

func (s *searcher) scanFile(name string, prefix bool) (bool, error) {
	f, err := openInput(name)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return s.scan(f, name, prefix)
}

// scan matches each line of r and prints the selected ones.
func (s *searcher) scan(r io.Reader, name string, prefix bool) (bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	w := bufio.NewWriter(s.stdout)
	defer w.Flush()

	matched := false
	for sc.Scan() {
		line := bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})

		var loc []int
		switch {
		case s.opts.OnlyMatching || s.color != nil:
			loc = s.re.FindIndex(line)
			if loc == nil {
				continue
			}
		case !s.re.Match(line):
			continue
		}

		matched = true
		if s.opts.OnlyMatching {
			if loc[0] == loc[1] {
				continue
			}
			line, loc = line[loc[0]:loc[1]], []int{0, loc[1] - loc[0]}
		}
		s.write(w, name, line, loc, prefix)
	}
	if err := sc.Err(); err != nil {
		return matched, fmt.Errorf("%s: %w", name, err)
	}
	return matched, nil
}

// write prints one selected line, with its file name when prefix is set.
func (s *searcher) write(w *bufio.Writer, name string, line []byte, loc []int, prefix bool) {
	if s.color == nil {
		if prefix {
			fmt.Fprintf(w, "%s:", name)
		}
		w.Write(line)
		w.WriteByte('\n')
		return
	}
	if prefix {
		w.WriteString(s.color.name.Render(name))
		w.WriteByte(':')
	}
	s.color.line(w, line, loc)
	w.WriteByte('\n')
}

func (s *searcher) warn(err error) {
	s.failed = true
	fmt.Fprintln(s.stderr, "linegrep:", err)
}
