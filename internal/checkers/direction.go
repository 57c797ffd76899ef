package checkers

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Direction is one of the four diagonals. The black/white half names the
// side of the board being moved toward; Black starts on top in slot order,
// so "black" directions increase the row index and "white" ones decrease it.
type Direction int

const (
	BlackRight Direction = iota
	BlackLeft
	WhiteRight
	WhiteLeft
)

// AllDirections lists every direction in a stable order.
var AllDirections = []Direction{BlackRight, BlackLeft, WhiteRight, WhiteLeft}

var directionNames = [...]string{"blackright", "blackleft", "whiteright", "whiteleft"}

// String returns the lower-case direction name, e.g. "blackright".
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection converts a case-insensitive direction name.
func ParseDirection(name string) (Direction, error) {
	lower := strings.ToLower(name)
	for i, n := range directionNames {
		if n == lower {
			return Direction(i), nil
		}
	}
	return BlackRight, fmt.Errorf("%q: %w", name, errors.ErrInvalidDirection)
}

// Opposite returns the point reflection of d.
func (d Direction) Opposite() Direction {
	switch d {
	case BlackRight:
		return WhiteLeft
	case BlackLeft:
		return WhiteRight
	case WhiteRight:
		return BlackLeft
	default:
		return BlackRight
	}
}

// delta returns the row and column step for one square in direction d.
func (d Direction) delta() (row, col int) {
	switch d {
	case BlackRight:
		return 1, 1
	case BlackLeft:
		return 1, -1
	case WhiteRight:
		return -1, 1
	default:
		return -1, -1
	}
}

// Forward returns the directions a man of colour c may move in: toward the
// opponent's home edge.
func Forward(c Colour) []Direction {
	if c == White {
		return []Direction{BlackRight, BlackLeft}
	}
	return []Direction{WhiteRight, WhiteLeft}
}

// DirectionsFor returns the directions available to a piece.
func DirectionsFor(c Colour, t PieceType) []Direction {
	if t == King {
		return AllDirections
	}
	return Forward(c)
}
