package checkers

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Board holds the 32-slot position. Unoccupied slots are absent from the
// mapping; captured pieces are dropped and never reinserted.
type Board struct {
	rows    int
	columns int
	pieces  map[Slot]*Piece
}

// NewBoard creates a board in the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmptyBoard creates a board with no pieces.
func NewEmptyBoard() *Board {
	return &Board{rows: Rows, columns: Columns, pieces: make(map[Slot]*Piece)}
}

// Reset places 12 Black men on slots 1-12 and 12 White men on slots 21-32.
func (b *Board) Reset() {
	b.rows = Rows
	b.columns = Columns
	b.pieces = make(map[Slot]*Piece, 24)

	for loc := Slot(1); loc <= 12; loc++ {
		b.pieces[loc] = NewPiece(Black)
	}
	for loc := Slot(21); loc <= LastSlot; loc++ {
		b.pieces[loc] = NewPiece(White)
	}
}

// Arrange clears the board and places exactly the given pieces. Colour and
// type names are case-insensitive. Every placement is validated first, so
// the board is unchanged when an error is returned.
func (b *Board) Arrange(placements map[Slot]Placement) error {
	pieces := make(map[Slot]*Piece, len(placements))
	for loc, desc := range placements {
		if !loc.Valid() {
			return fmt.Errorf("arrange location %d: %w", loc, errors.ErrInvalidSlot)
		}
		p := &Piece{}
		if err := p.SetColour(desc.Color); err != nil {
			return errors.Wrapf(err, "arrange location %d", loc)
		}
		kind, err := ParsePieceType(desc.Type)
		if err != nil {
			return errors.Wrapf(err, "arrange location %d", loc)
		}
		if kind == King {
			p.PromoteToKing()
		}
		pieces[loc] = p
	}

	b.rows = Rows
	b.columns = Columns
	b.pieces = pieces
	return nil
}

// ArrangePieces is the typed form of Arrange. Locations must be distinct.
func (b *Board) ArrangePieces(infos []PieceInfo) error {
	pieces := make(map[Slot]*Piece, len(infos))
	for _, info := range infos {
		if !info.Location.Valid() {
			return fmt.Errorf("arrange location %d: %w", info.Location, errors.ErrInvalidSlot)
		}
		if _, dup := pieces[info.Location]; dup {
			return fmt.Errorf("location %d placed twice: %w", info.Location, errors.ErrInvalidSlot)
		}
		p := NewPiece(info.Colour)
		if info.Type == King {
			p.PromoteToKing()
		}
		pieces[info.Location] = p
	}

	b.rows = Rows
	b.columns = Columns
	b.pieces = pieces
	return nil
}

// Rows returns the number of rows (always 8).
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns (always 8).
func (b *Board) Columns() int { return b.columns }

// AllPiecesByLocation returns a fresh snapshot of every occupied slot.
func (b *Board) AllPiecesByLocation() Pieces {
	out := make(Pieces, len(b.pieces))
	for loc, p := range b.pieces {
		out[loc] = p.describe(loc)
	}
	return out
}

// LocationToCoordinates converts a slot to its row and column.
func (b *Board) LocationToCoordinates(slot Slot) (Coordinates, error) {
	return LocationToCoordinates(slot)
}

// CoordinatesToLocation converts a row and column to a slot.
func (b *Board) CoordinatesToLocation(c Coordinates) (Slot, bool) {
	return CoordinatesToLocation(c)
}

// Piece returns the piece at slot, or false if the slot is empty.
func (b *Board) Piece(slot Slot) (PieceInfo, bool) {
	p, ok := b.pieces[slot]
	if !ok || p.IsCaptured() {
		return PieceInfo{}, false
	}
	return p.describe(slot), true
}

// CapturePiece marks the piece at slot as captured and removes it.
// It returns false if the slot was already empty.
func (b *Board) CapturePiece(slot Slot) bool {
	p, ok := b.pieces[slot]
	if !ok {
		return false
	}
	p.Capture()
	delete(b.pieces, slot)
	return true
}

// Move relocates the piece on from to the empty slot to. Moving a piece
// onto its own slot leaves the board unchanged and succeeds.
// It returns false if from is empty or to is occupied or invalid.
func (b *Board) Move(from, to Slot) bool {
	p, ok := b.pieces[from]
	if !ok || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	if _, taken := b.pieces[to]; taken {
		return false
	}
	delete(b.pieces, from)
	b.pieces[to] = p
	return true
}

// Promote crowns the piece at slot. It returns false if the slot is empty.
func (b *Board) Promote(slot Slot) bool {
	p, ok := b.pieces[slot]
	if !ok {
		return false
	}
	p.PromoteToKing()
	return true
}

// Count returns the number of pieces of colour c on the board.
func (b *Board) Count(c Colour) int {
	n := 0
	for _, p := range b.pieces {
		if p.Colour() == c {
			n++
		}
	}
	return n
}

// Peek looks distance squares from slot in direction d. Only an invalid
// origin is an error; leaving the board yields an Offboard result.
func (b *Board) Peek(from Slot, d Direction, distance int) (PeekResult, error) {
	if !from.Valid() {
		return PeekResult{}, fmt.Errorf("peek from %d: %w", from, errors.ErrInvalidSlot)
	}
	return b.AllPiecesByLocation().Peek(from, d, distance), nil
}

// OppositeDirection returns the point reflection of d.
func (b *Board) OppositeDirection(d Direction) Direction {
	return d.Opposite()
}
