// Package checkers provides core checkers types and board operations.
package checkers

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the canonical capitalised colour name.
func (c Colour) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts a case-insensitive colour name to a Colour.
func ParseColour(name string) (Colour, error) {
	switch strings.ToLower(name) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return White, fmt.Errorf("%q: %w", name, errors.ErrInvalidColor)
}

// PieceType distinguishes men from kings.
type PieceType int

const (
	Man PieceType = iota
	King
)

// String returns "Man" or "King".
func (t PieceType) String() string {
	if t == King {
		return "King"
	}
	return "Man"
}

// ParsePieceType converts a case-insensitive "man" or "king" to a PieceType.
func ParsePieceType(name string) (PieceType, error) {
	switch strings.ToLower(name) {
	case "man":
		return Man, nil
	case "king":
		return King, nil
	}
	return Man, fmt.Errorf("%q: %w", name, errors.ErrInvalidPieceType)
}

// Slot identifies one of the 32 playable dark squares, numbered 1-32.
type Slot int

// Board dimensions and slot ranges.
const (
	Rows        = 8
	Columns     = 8
	SlotsPerRow = 4

	FirstSlot Slot = 1
	LastSlot  Slot = 32
	NumSlots       = int(LastSlot)

	// NoSlot is returned alongside false when a location does not exist.
	NoSlot Slot = 0
)

// Valid reports whether s is in 1-32.
func (s Slot) Valid() bool {
	return s >= FirstSlot && s <= LastSlot
}

// PieceInfo describes a piece standing on a slot. It is a value record
// derived from the board on request; it is never stored by the board.
type PieceInfo struct {
	Location Slot
	Colour   Colour
	Type     PieceType
}

// IsKing reports whether the described piece is a king.
func (p PieceInfo) IsKing() bool {
	return p.Type == King
}

// String returns a short description such as "White Man on 11".
func (p PieceInfo) String() string {
	return fmt.Sprintf("%s %s on %d", p.Colour, p.Type, p.Location)
}

// Placement is the loosely-typed piece description accepted by Board.Arrange.
// Both fields are case-insensitive.
type Placement struct {
	Color string
	Type  string
}
