package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSON enables JSON output instead of text
	JSON bool

	// ShowBoard draws the board before the move list
	ShowBoard bool

	// Compact writes the move list on wrapped lines instead of one move
	// per line
	Compact bool

	// MaxLineLength is the wrap width for compact output
	MaxLineLength uint

	// SquareNames prints squares as "c3" rather than slot numbers
	SquareNames bool

	// Select restricts output to the moves of the piece on this square.
	// Empty means every piece of the side to move.
	Select string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
	}
}

// Validate checks that the output settings do not conflict.
func (o *OutputConfig) Validate() error {
	if o.JSON && o.ShowBoard {
		return fmt.Errorf("board drawing cannot be combined with JSON output: %w", errors.ErrInvalidConfig)
	}
	return nil
}
