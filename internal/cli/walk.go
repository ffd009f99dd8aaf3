package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// errSearchFailed reports that some input could not be read. The reasons
// have already been printed.
var errSearchFailed = errors.New("some inputs could not be searched")

// collect expands paths into the files to search. Directories are walked
// with -r and rejected otherwise. Include globs apply to files found by the
// walk, matched against the path relative to the walked root and against
// the base name.
func (s *searcher) collect(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			s.warn(err)
			continue
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		if !s.opts.Recursive {
			s.warn(fmt.Errorf("%s: is a directory", p))
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				s.warn(err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			rel, _ := filepath.Rel(p, path)
			if len(s.opts.Include) > 0 && !matchAnyGlob(filepath.ToSlash(rel), s.opts.Include) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func matchAnyGlob(path string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}
