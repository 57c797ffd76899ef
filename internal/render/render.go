// Package render draws a checkers board as text.
//
// Columns are labelled a to h from left to right and rows run from 8 at
// the top (Black's home rows) down to 1.
package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Cell glyphs.
const (
	BlackMan  = 'b'
	BlackKing = 'B'
	WhiteMan  = 'w'
	WhiteKing = 'W'
	Target    = '!'
	Blank     = ' '
)

// Border glyphs; a selected column is fenced with SelectedBorder.
const (
	Border         = '|'
	SelectedBorder = '*'
)

// Header is the column label line.
const Header = "    a   b   c   d   e   f   g   h "

// Options controls what is drawn beyond the pieces.
type Options struct {
	// Targets are slots drawn as legal destinations.
	Targets []checkers.Slot

	// SelectedColumn is 1-8 to highlight a column, 0 for none.
	SelectedColumn int
}

// Glyph returns the cell character for a piece.
func Glyph(p checkers.PieceInfo) byte {
	switch {
	case p.Colour == checkers.Black && p.IsKing():
		return BlackKing
	case p.Colour == checkers.Black:
		return BlackMan
	case p.IsKing():
		return WhiteKing
	default:
		return WhiteMan
	}
}

// Row returns the cells of one row, columns a to h.
func Row(row int, pieces checkers.Pieces, targets map[checkers.Slot]bool) [checkers.Columns]byte {
	var cells [checkers.Columns]byte
	for col := 1; col <= checkers.Columns; col++ {
		cells[col-1] = Blank
		slot, ok := checkers.CoordinatesToLocation(checkers.Coordinates{Row: row, Column: col})
		if !ok {
			continue
		}
		if p, occupied := pieces[slot]; occupied {
			cells[col-1] = Glyph(p)
		} else if targets[slot] {
			cells[col-1] = Target
		}
	}
	return cells
}

// Board writes the header line and all eight rows to w.
func Board(w io.Writer, pieces checkers.Pieces, opts Options) error {
	targets := make(map[checkers.Slot]bool, len(opts.Targets))
	for _, s := range opts.Targets {
		targets[s] = true
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(Header)
	bw.WriteByte('\n')

	for row := checkers.Rows; row >= 1; row-- {
		bw.WriteString(strconv.Itoa(row))
		bw.WriteByte(' ')

		cells := Row(row, pieces, targets)
		for col := 1; col <= checkers.Columns; col++ {
			bw.WriteByte(border(col, opts.SelectedColumn))
			bw.WriteByte(' ')
			bw.WriteByte(cells[col-1])
			bw.WriteByte(' ')
		}
		bw.WriteByte(border(checkers.Columns+1, opts.SelectedColumn))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// border returns the glyph on the left edge of col; col 9 is the right
// edge of the board.
func border(col, selected int) byte {
	if selected > 0 && (col == selected || col == selected+1) {
		return SelectedBorder
	}
	return Border
}
