package checkers

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Coordinates is a row/column pair, both 1-8. Row 8 holds slots 1-4.
type Coordinates struct {
	Row    int
	Column int
}

// LocationToCoordinates converts a slot to its row and column.
func LocationToCoordinates(slot Slot) (Coordinates, error) {
	if !slot.Valid() {
		return Coordinates{}, fmt.Errorf("location %d: %w", slot, errors.ErrInvalidSlot)
	}

	row := Rows - int(slot-1)/SlotsPerRow
	colPos := int(slot-1) % SlotsPerRow

	// Odd rows start on column 1, even rows on column 2.
	column := colPos*2 + 2
	if row%2 != 0 {
		column = colPos*2 + 1
	}

	return Coordinates{Row: row, Column: column}, nil
}

// CoordinatesToLocation converts a row and column to a slot.
// It returns false when the coordinates are off the board or on a light
// square; that is an expected outcome while stepping toward an edge.
func CoordinatesToLocation(c Coordinates) (Slot, bool) {
	if c.Row < 1 || c.Row > Rows || c.Column < 1 || c.Column > Columns {
		return NoSlot, false
	}
	if c.Row%2 != c.Column%2 {
		return NoSlot, false
	}
	return Slot((Rows-c.Row)*SlotsPerRow + (c.Column-1)/2 + 1), true
}

// Step moves distance squares from slot in direction d.
// It returns false if either end lies off the board.
func Step(from Slot, d Direction, distance int) (Slot, bool) {
	c, err := LocationToCoordinates(from)
	if err != nil {
		return NoSlot, false
	}
	dr, dc := d.delta()
	c.Row += dr * distance
	c.Column += dc * distance
	return CoordinatesToLocation(c)
}

// PromotionRow returns the row on which a man of colour c is crowned.
func PromotionRow(c Colour) int {
	if c == White {
		return Rows
	}
	return 1
}
