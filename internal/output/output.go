// Package output provides position and move list formatting.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/notation"
	"github.com/lgbarn/checkers-go/internal/processing"
	"github.com/lgbarn/checkers-go/internal/render"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputAnalysis outputs an analysis in the configured text format.
func OutputAnalysis(a *processing.Analysis, cfg *config.Config) {
	writeAnalysis(cfg.OutputFile, a, cfg.Output)
}

func writeAnalysis(w io.Writer, a *processing.Analysis, out *config.OutputConfig) {
	if out == nil {
		out = config.NewOutputConfig()
	}

	fmt.Fprintf(w, "Position: %s\n", a.Position())

	if out.ShowBoard {
		opts := render.Options{Targets: a.Targets()}
		if c, err := checkers.LocationToCoordinates(a.Selected); err == nil {
			opts.SelectedColumn = c.Column
		}
		render.Board(w, a.Pieces(), opts) //nolint:errcheck // same writer as the lines around it
	}

	fmt.Fprintln(w, statusLine(a))

	if out.Compact {
		outputCompactMoves(w, a.Moves, out)
		return
	}
	for i, m := range a.Moves {
		fmt.Fprintf(w, "%3d. %s\n", i+1, formatMove(m, out.SquareNames))
	}
}

// statusLine describes who is to move, or who has won.
func statusLine(a *processing.Analysis) string {
	if a.GameOver {
		return fmt.Sprintf("%s wins: %s has no legal moves", a.Winner, a.Turn)
	}

	subject := a.Turn.String() + " to move"
	if a.Selected != checkers.NoSlot {
		subject = "Piece on " + notation.FormatSquare(a.Selected)
	}
	return fmt.Sprintf("%s, %s", subject, pluralMoves(len(a.Moves)))
}

func pluralMoves(n int) string {
	if n == 1 {
		return "1 legal move"
	}
	return strconv.Itoa(n) + " legal moves"
}

// outputCompactMoves writes the move list on wrapped lines.
func outputCompactMoves(w io.Writer, moves []checkers.Move, out *config.OutputConfig) {
	if len(moves) == 0 {
		return
	}
	ow := NewOutputWriter(w, int(out.MaxLineLength))
	for _, m := range moves {
		ow.Write(formatMove(m, out.SquareNames))
	}
	ow.NewLine()
}

func formatMove(m checkers.Move, squareNames bool) string {
	if squareNames {
		return notation.FormatMoveSquares(m)
	}
	return notation.FormatMove(m)
}

// formatHash renders a Zobrist hash as fixed-width hex.
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
