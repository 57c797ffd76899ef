// Package notation converts between checkers text forms and core types:
// square names such as "c5", slot numbers, position strings and move text.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Column letters, left to right.
const (
	FirstColumnLetter = 'a'
	LastColumnLetter  = FirstColumnLetter + checkers.Columns - 1
)

// ParseSquare reads a square name: one column letter a-h followed by one
// row digit 1-8. The letter is case-insensitive. Light squares are
// accepted here; use ParseLocation to require a playable square.
func ParseSquare(text string) (checkers.Coordinates, error) {
	s := strings.TrimSpace(text)
	if len(s) != 2 {
		return checkers.Coordinates{}, &errors.ParseError{
			Err:      errors.ErrInvalidLocationText,
			Input:    text,
			Expected: "a column letter and a row digit",
		}
	}

	col := s[0] | 0x20 // lower-case ASCII letters
	if col < FirstColumnLetter || col > LastColumnLetter {
		return checkers.Coordinates{}, &errors.ParseError{
			Err:      errors.ErrInvalidLocationText,
			Input:    text,
			Offset:   1,
			Expected: "column a-h",
			Got:      fmt.Sprintf("%q", s[0]),
		}
	}

	row := s[1]
	if row < '1' || row > '0'+checkers.Rows {
		return checkers.Coordinates{}, &errors.ParseError{
			Err:      errors.ErrInvalidLocationText,
			Input:    text,
			Offset:   2,
			Expected: "row 1-8",
			Got:      fmt.Sprintf("%q", s[1]),
		}
	}

	return checkers.Coordinates{
		Row:    int(row - '0'),
		Column: int(col-FirstColumnLetter) + 1,
	}, nil
}

// ParseLocation reads either a square name ("c5") or a slot number ("8")
// and returns the slot. Light squares and numbers outside 1-32 are errors.
func ParseLocation(text string) (checkers.Slot, error) {
	s := strings.TrimSpace(text)
	if s != "" && isDigits(s) {
		n, err := strconv.Atoi(s)
		if err != nil || !checkers.Slot(n).Valid() {
			return checkers.NoSlot, &errors.ParseError{
				Err:      errors.ErrInvalidLocationText,
				Input:    text,
				Expected: "slot 1-32",
				Got:      s,
			}
		}
		return checkers.Slot(n), nil
	}

	c, err := ParseSquare(s)
	if err != nil {
		return checkers.NoSlot, err
	}
	slot, ok := checkers.CoordinatesToLocation(c)
	if !ok {
		return checkers.NoSlot, &errors.ParseError{
			Err:      errors.ErrInvalidLocationText,
			Input:    text,
			Expected: "a dark square",
			Got:      "light square " + strings.ToLower(s),
		}
	}
	return slot, nil
}

// FormatSquare returns the square name of slot, e.g. 29 -> "a1".
// Invalid slots yield "".
func FormatSquare(slot checkers.Slot) string {
	c, err := checkers.LocationToCoordinates(slot)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%c%d", FirstColumnLetter+c.Column-1, c.Row)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
