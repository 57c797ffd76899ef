package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/notation"
	"github.com/lgbarn/checkers-go/internal/processing"
)

// JSONPosition represents an analysed position in JSON format.
type JSONPosition struct {
	Line     int         `json:"line,omitempty"`
	Input    string      `json:"input,omitempty"`
	Position string      `json:"position,omitempty"`
	Turn     string      `json:"turn,omitempty"` // "white" or "black"
	Selected string      `json:"selected,omitempty"`
	Pieces   []JSONPiece `json:"pieces,omitempty"`
	Moves    []JSONMove  `json:"moves"`
	Winner   string      `json:"winner,omitempty"`
	Plies    int         `json:"plies,omitempty"`
	Hash     string      `json:"hash,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// JSONPiece represents one piece in JSON format.
type JSONPiece struct {
	Slot   int    `json:"slot"`
	Square string `json:"square"`
	Color  string `json:"color"` // "white" or "black"
	Type   string `json:"type"`  // "man" or "king"
}

// JSONMove represents a legal move in JSON format.
type JSONMove struct {
	Notation  string `json:"notation"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Capture   bool   `json:"capture,omitempty"`
	JumpsOver []int  `json:"jumpsOver,omitempty"`
	Lands     []int  `json:"lands,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// OutputAnalysisJSON outputs a single analysis in JSON format.
func OutputAnalysisJSON(a *processing.Analysis, cfg *config.Config) {
	enc := json.NewEncoder(cfg.OutputFile)
	enc.SetIndent("", "  ")
	enc.Encode(AnalysisToJSON(a, cfg.Output)) //nolint:gosec // G104: error handled via writer
}

// OutputPositionsJSON outputs multiple positions as a JSON object.
func OutputPositionsJSON(positions []*JSONPosition, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Positions: positions})
}

// AnalysisToJSON converts an analysis to JSON format.
func AnalysisToJSON(a *processing.Analysis, out *config.OutputConfig) *JSONPosition {
	jp := &JSONPosition{
		Position: a.Position(),
		Turn:     colorName(a.Turn),
		Pieces:   PiecesToJSON(a.Pieces()),
		Moves:    MovesToJSON(a.Moves, out != nil && out.SquareNames),
		Plies:    a.Plies,
		Hash:     formatHash(a.Hash),
	}
	if a.Selected != checkers.NoSlot {
		jp.Selected = notation.FormatSquare(a.Selected)
	}
	if a.GameOver {
		jp.Winner = colorName(a.Winner)
	}
	return jp
}

// FailureToJSON records an input that could not be analysed.
func FailureToJSON(line int, input string, err error) *JSONPosition {
	return &JSONPosition{
		Line:  line,
		Input: input,
		Moves: []JSONMove{},
		Error: err.Error(),
	}
}

// PiecesToJSON converts a board snapshot to JSON pieces in slot order.
func PiecesToJSON(pieces checkers.Pieces) []JSONPiece {
	out := make([]JSONPiece, 0, len(pieces))
	for _, s := range pieces.Slots() {
		p := pieces[s]
		out = append(out, JSONPiece{
			Slot:   int(s),
			Square: notation.FormatSquare(s),
			Color:  colorName(p.Colour),
			Type:   pieceTypeName(p.Type),
		})
	}
	return out
}

// MovesToJSON converts moves to JSON format. squareNames selects "c3-d4"
// notation over "22-18".
func MovesToJSON(moves []checkers.Move, squareNames bool) []JSONMove {
	out := make([]JSONMove, 0, len(moves))
	for _, m := range moves {
		out = append(out, MoveToJSON(m, squareNames))
	}
	return out
}

// MoveToJSON converts a single move to JSON format.
func MoveToJSON(m checkers.Move, squareNames bool) JSONMove {
	jm := JSONMove{
		Notation: notation.FormatMove(m),
		From:     int(m.Start()),
		To:       int(m.End()),
		Capture:  m.IsCapture(),
	}
	if squareNames {
		jm.Notation = notation.FormatMoveSquares(m)
	}
	if cm, ok := m.(checkers.CaptureMove); ok {
		jm.JumpsOver = slotInts(cm.JumpsOver)
		jm.Lands = slotInts(cm.Lands)
	}
	return jm
}

func slotInts(slots []checkers.Slot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = int(s)
	}
	return out
}

// colorName returns "white" or "black".
func colorName(c checkers.Colour) string {
	if c == checkers.Black {
		return "black"
	}
	return "white"
}

// pieceTypeName returns the piece type as a lower-case string.
func pieceTypeName(t checkers.PieceType) string {
	if t == checkers.King {
		return "king"
	}
	return "man"
}
