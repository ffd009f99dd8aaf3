package cli

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

// openInput maps the file into memory when the platform allows it and
// falls back to os.Open otherwise (empty files, pipes, unsupported systems).
func openInput(name string) (io.ReadCloser, error) {
	if mf, err := mmapfile.Open(name); err == nil {
		return mf, nil
	}
	return os.Open(name)
}
