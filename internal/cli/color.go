package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// highlighter styles matched text and file name prefixes.
type highlighter struct {
	match lipgloss.Style
	name  lipgloss.Style
}

// newHighlighter returns the highlighter for mode, or nil when output stays
// plain. In auto mode color is used only when w is a terminal.
func newHighlighter(mode string, w io.Writer) (*highlighter, error) {
	switch mode {
	case colorNever:
		return nil, nil
	case colorAuto, "":
		if !isTerminal(w) {
			return nil, nil
		}
	case colorAlways:
	default:
		return nil, fmt.Errorf("invalid --color %q: want %s, %s or %s", mode, colorAuto, colorAlways, colorNever)
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &highlighter{
		match: r.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion),
		name: r.NewStyle().
			Foreground(lipgloss.Color("5")).
			TabWidth(lipgloss.NoTabConversion),
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// line writes line with the span loc highlighted. A nil loc or an empty span
// writes the line unchanged.
func (h *highlighter) line(w io.Writer, line []byte, loc []int) {
	if loc == nil || loc[0] == loc[1] {
		w.Write(line)
		return
	}
	w.Write(line[:loc[0]])
	io.WriteString(w, h.match.Render(string(line[loc[0]:loc[1]])))
	w.Write(line[loc[1]:])
}
