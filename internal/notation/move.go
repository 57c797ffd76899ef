package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// FormatMove returns the standard text of m: "11-15" for a simple move and
// every landing joined by "x" for a capture, e.g. "18x11x4".
func FormatMove(m checkers.Move) string {
	if m == nil {
		return ""
	}
	return m.String()
}

// FormatMoveSquares is FormatMove with square names, e.g. "c3-d4".
func FormatMoveSquares(m checkers.Move) string {
	switch mv := m.(type) {
	case checkers.SimpleMove:
		return FormatSquare(mv.From) + "-" + FormatSquare(mv.To)
	case checkers.CaptureMove:
		var sb strings.Builder
		sb.WriteString(FormatSquare(mv.From))
		for _, l := range mv.Lands {
			sb.WriteByte('x')
			sb.WriteString(FormatSquare(l))
		}
		return sb.String()
	}
	return ""
}

// FormatMoves formats each move in order.
func FormatMoves(moves []checkers.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = FormatMove(m)
	}
	return out
}

// MoveText is move text split into its squares.
type MoveText struct {
	Squares []checkers.Slot
	Capture bool
}

// ParseMoveText reads "11-15", "18x4", "18x11x4" or the same with square
// names ("c3-d4"). A capture may list only its start and end, or every
// landing.
func ParseMoveText(text string) (MoveText, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	sep := "-"
	capture := false
	if strings.Contains(s, "x") {
		sep, capture = "x", true
	}
	if capture && strings.Contains(s, "-") {
		return MoveText{}, &errors.ParseError{
			Err:      errors.ErrInvalidLocationText,
			Input:    text,
			Expected: "either '-' or 'x' separators",
			Got:      "both",
		}
	}

	parts := strings.Split(s, sep)
	if len(parts) < 2 || (!capture && len(parts) != 2) {
		return MoveText{}, &errors.ParseError{
			Err:      errors.ErrInvalidLocationText,
			Input:    text,
			Expected: "from-to or from x to",
			Got:      quoteOrEmpty(s),
		}
	}

	mt := MoveText{Capture: capture, Squares: make([]checkers.Slot, 0, len(parts))}
	for _, part := range parts {
		slot, err := ParseLocation(part)
		if err != nil {
			return MoveText{}, errors.Wrapf(err, "move %q", text)
		}
		mt.Squares = append(mt.Squares, slot)
	}
	return mt, nil
}

// matches reports whether m fits the parsed text.
func (mt MoveText) matches(m checkers.Move) bool {
	if m.IsCapture() != mt.Capture {
		return false
	}
	first, last := mt.Squares[0], mt.Squares[len(mt.Squares)-1]
	if m.Start() != first || m.End() != last {
		return false
	}
	if len(mt.Squares) == 2 {
		return true
	}
	cm, ok := m.(checkers.CaptureMove)
	if !ok || len(cm.Lands) != len(mt.Squares)-1 {
		return false
	}
	for i, l := range cm.Lands {
		if l != mt.Squares[i+1] {
			return false
		}
	}
	return true
}

// ResolveMove finds the single move in legal that text names. Text that
// matches nothing, or matches several moves, wraps ErrIllegalMove.
func ResolveMove(text string, legal []checkers.Move) (checkers.Move, error) {
	mt, err := ParseMoveText(text)
	if err != nil {
		return nil, err
	}

	var found []checkers.Move
	for _, m := range legal {
		if mt.matches(m) {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%q is ambiguous between %s: %w",
			text, strings.Join(FormatMoves(found), " and "), errors.ErrIllegalMove)
	}
}
