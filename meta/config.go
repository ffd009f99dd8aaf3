// Package meta ties the pieces of a compiled pattern together: validation,
// the prefilter, the ASCII fast path, pooled per-search state and the
// backtracking matcher.
//
// Every search goes through the same steps:
//   - the prefilter, when the pattern has required literals, rejects
//     subjects that contain none of them
//   - the subject is decoded into a pooled rune buffer (a plain widening
//     copy when it is ASCII)
//   - the backtracker runs one attempt over the runes
//   - rune indices of the match and its groups are mapped back to bytes
//
// An Engine is immutable after Compile and safe for concurrent use.
package meta

// Config controls compilation and search behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.RetryGroupStart = true
//	engine, err := meta.CompileWithConfig(`(cat|dog)s`, config)
type Config struct {
	// EnablePrefilter enables rejection of subjects that lack the pattern's
	// required literals.
	// Default: true
	EnablePrefilter bool

	// EnableASCIIOptimization skips UTF-8 decoding for ASCII-only subjects.
	// Default: true
	EnableASCIIOptimization bool

	// RetryGroupStart retries a group that starts the pattern at later
	// subject positions when it fails before anything has matched.
	// Default: false
	RetryGroupStart bool

	// MinLiteralLen is the shortest required literal, in bytes, for which a
	// prefilter is built.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals caps the literal set taken from a leading group.
	// Default: 64
	MaxLiterals int

	// MaxRecursionDepth limits group nesting in a pattern.
	// Default: 100
	MaxRecursionDepth int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:         true,
		EnableASCIIOptimization: true,
		RetryGroupStart:         false,
		MinLiteralLen:           1,
		MaxLiterals:             64,
		MaxRecursionDepth:       100,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64 (checked when the prefilter is enabled)
//   - MaxLiterals: 1 to 1,000 (checked when the prefilter is enabled)
//   - MaxRecursionDepth: 10 to 1,000
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}

	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must be between 10 and 1,000",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
