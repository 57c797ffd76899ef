package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithBoard enables drawing the board.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithSquareNames prints squares by name instead of slot number.
func (b *ConfigBuilder) WithSquareNames(enabled bool) *ConfigBuilder {
	b.cfg.Output.SquareNames = enabled
	return b
}

// WithCompact writes move lists on wrapped lines of at most width columns.
func (b *ConfigBuilder) WithCompact(enabled bool, width uint) *ConfigBuilder {
	b.cfg.Output.Compact = enabled
	b.cfg.Output.MaxLineLength = width
	return b
}

// WithSelection restricts output to the piece on square.
func (b *ConfigBuilder) WithSelection(square string) *ConfigBuilder {
	b.cfg.Output.Select = square
	return b
}

// WithDuplicateSuppression enables duplicate position suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.SuppressDuplicates = enabled
	return b
}

// WithStopOnError ends batch processing at the first failed line.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.StopOnError = enabled
	return b
}

// WithWorkers sets the worker count for batch processing.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
