package notation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// InitialPosition is the position string for the standard starting layout.
const InitialPosition = "W:W21,22,23,24,25,26,27,28,29,30,31,32:B1,2,3,4,5,6,7,8,9,10,11,12"

// Position is a parsed position string: the side to move and every piece.
type Position struct {
	Turn   checkers.Colour
	Pieces []checkers.PieceInfo
}

// Board arranges a new board holding the position's pieces.
func (p Position) Board() (*checkers.Board, error) {
	b := checkers.NewEmptyBoard()
	if err := b.ArrangePieces(p.Pieces); err != nil {
		return nil, errors.Wrap(err, "building board")
	}
	return b, nil
}

// FromBoard captures a board and side to move as a Position.
func FromBoard(b *checkers.Board, turn checkers.Colour) Position {
	pieces := b.AllPiecesByLocation()
	out := Position{Turn: turn, Pieces: make([]checkers.PieceInfo, 0, len(pieces))}
	for _, s := range pieces.Slots() {
		out.Pieces = append(out.Pieces, pieces[s])
	}
	return out
}

// ParsePosition reads a PDN-style position string such as
// "W:W21,22,K30:B1-12". The first field is the side to move; each further
// field is a colour letter followed by comma-separated slots, where a K
// prefix marks a king and "a-b" expands to a range. Whitespace and a
// trailing "." are ignored; error offsets refer to the text with
// whitespace removed.
func ParsePosition(text string) (Position, error) {
	s := strings.Join(strings.Fields(text), "")
	s = strings.TrimSuffix(s, ".")

	fields := strings.Split(s, ":")
	turn, err := colourLetter(fields[0])
	if err != nil {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    s,
			Offset:   1,
			Expected: "side to move W or B",
			Got:      quoteOrEmpty(fields[0]),
		}
	}

	pos := Position{Turn: turn}
	seenColour := map[checkers.Colour]bool{}
	seenSlot := map[checkers.Slot]bool{}
	offset := len(fields[0]) + 2

	for _, field := range fields[1:] {
		if field == "" {
			return Position{}, &errors.ParseError{
				Err:      errors.ErrInvalidPosition,
				Input:    s,
				Offset:   offset,
				Expected: "colour field",
				Got:      "empty field",
			}
		}
		colour, err := colourLetter(field[:1])
		if err != nil {
			return Position{}, &errors.ParseError{
				Err:      errors.ErrInvalidPosition,
				Input:    s,
				Offset:   offset,
				Expected: "colour W or B",
				Got:      fmt.Sprintf("%q", field[:1]),
			}
		}
		if seenColour[colour] {
			return Position{}, &errors.ParseError{
				Err:    errors.ErrInvalidPosition,
				Input:  s,
				Offset: offset,
				Got:    "second " + colour.String() + " field",
			}
		}
		seenColour[colour] = true

		pieces, err := parsePieceList(colour, field[1:])
		if err != nil {
			return Position{}, &errors.ParseError{Err: err, Input: s, Offset: offset}
		}
		for _, p := range pieces {
			if seenSlot[p.Location] {
				return Position{}, &errors.ParseError{
					Err:    fmt.Errorf("slot %d listed twice: %w", p.Location, errors.ErrInvalidPosition),
					Input:  s,
					Offset: offset,
				}
			}
			seenSlot[p.Location] = true
		}
		pos.Pieces = append(pos.Pieces, pieces...)
		offset += len(field) + 1
	}

	sort.Slice(pos.Pieces, func(i, j int) bool { return pos.Pieces[i].Location < pos.Pieces[j].Location })
	return pos, nil
}

// parsePieceList reads "21,22,K30,1-4" for one colour.
func parsePieceList(colour checkers.Colour, list string) ([]checkers.PieceInfo, error) {
	if list == "" {
		return nil, nil
	}

	var out []checkers.PieceInfo
	for _, item := range strings.Split(list, ",") {
		kind := checkers.Man
		if strings.HasPrefix(item, "K") || strings.HasPrefix(item, "k") {
			kind = checkers.King
			item = item[1:]
		}

		lo, hi, err := parseRange(item)
		if err != nil {
			return nil, err
		}
		for s := lo; s <= hi; s++ {
			out = append(out, checkers.PieceInfo{Location: s, Colour: colour, Type: kind})
		}
	}
	return out, nil
}

// parseRange reads "7" or "1-12".
func parseRange(item string) (checkers.Slot, checkers.Slot, error) {
	first, last, isRange := strings.Cut(item, "-")
	lo, err := parseSlot(first)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err := parseSlot(last)
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("range %q runs backwards: %w", item, errors.ErrInvalidPosition)
	}
	return lo, hi, nil
}

func parseSlot(text string) (checkers.Slot, error) {
	n, err := strconv.Atoi(text)
	if err != nil || !checkers.Slot(n).Valid() {
		return 0, fmt.Errorf("slot %q: %w", text, errors.ErrInvalidPosition)
	}
	return checkers.Slot(n), nil
}

func colourLetter(s string) (checkers.Colour, error) {
	switch s {
	case "W", "w":
		return checkers.White, nil
	case "B", "b":
		return checkers.Black, nil
	}
	return checkers.White, errors.ErrInvalidPosition
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "nothing"
	}
	return fmt.Sprintf("%q", s)
}

// FormatPosition writes p in canonical form: side to move, then the White
// and Black fields with slots ascending and no ranges.
func FormatPosition(p Position) string {
	var sb strings.Builder
	sb.WriteString(turnLetter(p.Turn))

	sorted := make([]checkers.PieceInfo, len(p.Pieces))
	copy(sorted, p.Pieces)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Location < sorted[j].Location })

	for _, colour := range []checkers.Colour{checkers.White, checkers.Black} {
		sb.WriteByte(':')
		sb.WriteString(turnLetter(colour))
		first := true
		for _, piece := range sorted {
			if piece.Colour != colour {
				continue
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			if piece.IsKing() {
				sb.WriteByte('K')
			}
			sb.WriteString(strconv.Itoa(int(piece.Location)))
		}
	}
	return sb.String()
}

// FormatBoard is FormatPosition for a live board.
func FormatBoard(b *checkers.Board, turn checkers.Colour) string {
	return FormatPosition(FromBoard(b, turn))
}

func turnLetter(c checkers.Colour) string {
	if c == checkers.Black {
		return "B"
	}
	return "W"
}
