// Package cli implements the linegrep command line.
//
//	linegrep -E <pattern> [paths...]
//
// Lines are read from stdin when no path is given. Exit status is 0 when a
// line matched, 1 when none did and 2 on any error.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/linegrep"
	"github.com/coregx/linegrep/internal/config"
	"github.com/coregx/linegrep/meta"
)

// Exit statuses.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// errNoMatch signals exit status 1 without printing anything.
var errNoMatch = errors.New("no match")

// Options holds the parsed command line.
type Options struct {
	Pattern         string
	Recursive       bool
	OnlyMatching    bool
	Include         []string
	ConfigPath      string
	RetryGroupStart bool
	NoPrefilter     bool
	Stats           bool
	Color           string
}

// Run executes the command with args and returns the exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return ExitMatch
	case errors.Is(err, errNoMatch):
		return ExitNoMatch
	default:
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}
}

// NewCommand builds the root cobra command.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:           "linegrep -E <pattern> [paths...]",
		Short:         "Print lines that match a pattern",
		Long:          "linegrep prints the lines of its input that match an extended regular expression. Each line is matched on its own.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadFileConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			cfg := resolve(cmd, &opts, fc)

			re, err := linegrep.CompileWithConfig(opts.Pattern, cfg)
			if err != nil {
				return err
			}

			color, err := newHighlighter(opts.Color, stdout)
			if err != nil {
				return err
			}

			s := &searcher{
				re:     re,
				opts:   opts,
				stdout: stdout,
				stderr: stderr,
				color:  color,
			}
			matched, err := s.run(stdin, args)
			if opts.Stats {
				st := re.Stats()
				fmt.Fprintf(stderr, "searches=%d prefilter_rejects=%d ascii_fast_path=%d matches=%d\n",
					st.Searches, st.PrefilterRejects, st.ASCIIFastPath, st.Matches)
			}
			if err != nil {
				return err
			}
			if !matched {
				return errNoMatch
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Pattern, "extended-regexp", "E", "", "pattern to match")
	f.BoolVarP(&opts.Recursive, "recursive", "r", false, "search directories recursively")
	f.BoolVarP(&opts.OnlyMatching, "only-matching", "o", false, "print only the matched part of each line")
	f.StringSliceVar(&opts.Include, "include", nil, "with -r, only search files matching these globs (doublestar syntax)")
	f.StringVar(&opts.ConfigPath, "config", "", "config file (default: .linegrep.yml in the current directory, if present)")
	f.BoolVar(&opts.RetryGroupStart, "retry-group-start", false, "retry a leading group at later positions")
	f.BoolVar(&opts.NoPrefilter, "no-prefilter", false, "disable the literal prefilter")
	f.BoolVar(&opts.Stats, "stats", false, "print search statistics to stderr")
	f.StringVar(&opts.Color, "color", colorAuto, "highlight matches: auto, always or never")
	_ = cmd.MarkFlagRequired("extended-regexp")

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// loadFileConfig reads path, or the local config file when path is empty.
// A missing local file is not an error.
func loadFileConfig(path string) (config.FileConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	fc, err := config.LoadLocal(".")
	if errors.Is(err, config.ErrNoConfig) {
		return config.FileConfig{}, nil
	}
	return fc, err
}

// resolve merges defaults, the config file and explicitly set flags, in
// increasing precedence. Search options from the file are copied into opts
// unless the matching flag was given.
func resolve(cmd *cobra.Command, opts *Options, fc config.FileConfig) meta.Config {
	cfg := fc.Apply(meta.DefaultConfig())

	flags := cmd.Flags()
	if flags.Changed("retry-group-start") {
		cfg.RetryGroupStart = opts.RetryGroupStart
	}
	if opts.NoPrefilter {
		cfg.EnablePrefilter = false
	}

	if !flags.Changed("recursive") && fc.Recursive != nil {
		opts.Recursive = *fc.Recursive
	}
	if !flags.Changed("only-matching") && fc.OnlyMatching != nil {
		opts.OnlyMatching = *fc.OnlyMatching
	}
	if !flags.Changed("include") && len(fc.Include) > 0 {
		opts.Include = fc.Include
	}
	if !flags.Changed("color") && fc.Color != nil {
		opts.Color = *fc.Color
	}
	return cfg
}

// Main runs the command with the process arguments and exits.
func Main() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
