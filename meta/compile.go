package meta

import (
	"errors"

	"github.com/coregx/linegrep/backtrack"
	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/prefilter"
	"github.com/coregx/linegrep/syntax"
)

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig validates pattern and prepares an Engine for it.
//
// Errors are *CompileError values wrapping either a *syntax.Error (see
// syntax.ErrMalformed and syntax.ErrUnsupported) or a *ConfigError.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	p, err := syntax.Parse(pattern, config.MaxRecursionDepth)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	var pf prefilter.Prefilter
	if config.EnablePrefilter {
		extractor := literal.NewExtractor(literal.ExtractorConfig{
			MinLiteralLen: config.MinLiteralLen,
			MaxLiterals:   config.MaxLiterals,
		})
		pf = prefilter.NewBuilder(extractor.Required(p)).Build()
	}

	bt := backtrack.New(p, backtrack.Config{RetryGroupStart: config.RetryGroupStart})

	return &Engine{
		pattern:   p,
		bt:        bt,
		prefilter: pf,
		config:    config,
		states:    newSearchStatePool(p.NumGroups()),
	}, nil
}

// CompileError represents a pattern compilation error.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
// Syntax errors are returned as is; other errors get the regexp: prefix.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return e.Err.Error()
	}
	return "regexp: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
