// Package config loads the optional .linegrep.yml file read by the CLI.
//
// Every field is a pointer so an absent key leaves the built-in default in
// place. Command-line flags override values from the file.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/coregx/linegrep/meta"
)

// ErrNoConfig is returned by LoadLocal when no config file exists.
var ErrNoConfig = errors.New("no local config")

// LocalNames lists the file names LoadLocal looks for, in order.
var LocalNames = []string{".linegrep.yml", ".linegrep.yaml", "linegrep.yml", "linegrep.yaml"}

// FileConfig is the on-disk YAML configuration shape.
type FileConfig struct {
	// Matcher settings mirror meta.Config.
	Prefilter         *bool `yaml:"prefilter"`
	ASCIIOptimization *bool `yaml:"ascii_optimization"`
	RetryGroupStart   *bool `yaml:"retry_group_start"`
	MinLiteralLen     *int  `yaml:"min_literal_len"`
	MaxLiterals       *int  `yaml:"max_literals"`
	MaxRecursionDepth *int  `yaml:"max_recursion_depth"`

	// Search settings mirror CLI flags.
	Recursive    *bool    `yaml:"recursive"`
	OnlyMatching *bool    `yaml:"only_matching"`
	Include      []string `yaml:"include"`
	Color        *string  `yaml:"color"`
}

// LoadFile reads a YAML config file from path. Unknown keys are rejected so
// a misspelled setting does not pass silently.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty file decodes to io.EOF; treat it as an empty config.
		if errors.Is(err, io.EOF) {
			return FileConfig{}, nil
		}
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal looks for one of LocalNames in dir and loads the first found.
// It returns ErrNoConfig when there is none.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// Apply overlays the fields set in fc onto c and returns the result.
func (fc FileConfig) Apply(c meta.Config) meta.Config {
	if fc.Prefilter != nil {
		c.EnablePrefilter = *fc.Prefilter
	}
	if fc.ASCIIOptimization != nil {
		c.EnableASCIIOptimization = *fc.ASCIIOptimization
	}
	if fc.RetryGroupStart != nil {
		c.RetryGroupStart = *fc.RetryGroupStart
	}
	if fc.MinLiteralLen != nil {
		c.MinLiteralLen = *fc.MinLiteralLen
	}
	if fc.MaxLiterals != nil {
		c.MaxLiterals = *fc.MaxLiterals
	}
	if fc.MaxRecursionDepth != nil {
		c.MaxRecursionDepth = *fc.MaxRecursionDepth
	}
	return c
}
