// Package config provides configuration for the checkers tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // nothing but results
	Summary    = 1 // position count at the end
	Commentary = 2 // one line per position processed
)

// MaxWorkers bounds the worker count accepted by Validate.
const MaxWorkers = 256

// Config holds all program configuration for the command-line tool.
type Config struct {
	// Processing
	Verbosity          int // 0=nothing, 1=summary, 2=running commentary
	Workers            int // 0 picks runtime.NumCPU()
	SuppressDuplicates bool
	StopOnError        bool // batch mode ends at the first failed line

	// Output formatting
	Output *OutputConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the result stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d outside %d-%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("worker count %d outside 0-%d: %w",
			c.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("missing output settings: %w", errors.ErrInvalidConfig)
	}
	return c.Output.Validate()
}
