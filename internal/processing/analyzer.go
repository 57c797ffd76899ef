// Package processing provides position analysis and move-list validation.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/notation"
)

// Analysis holds the result of examining one position.
type Analysis struct {
	Board    *checkers.Board
	Turn     checkers.Colour
	Moves    []checkers.Move
	Selected checkers.Slot // NoSlot when Moves covers the whole side
	Winner   checkers.Colour
	GameOver bool
	Hash     uint64

	// Plies and MaxRepetitions are set by ReplayMoves.
	Plies          int
	MaxRepetitions int
}

// Pieces returns a snapshot of the analysed board.
func (a *Analysis) Pieces() checkers.Pieces {
	return a.Board.AllPiecesByLocation()
}

// Position returns the analysed position in canonical text form.
func (a *Analysis) Position() string {
	return notation.FormatBoard(a.Board, a.Turn)
}

// Targets returns the distinct end squares of the moves, in move order.
func (a *Analysis) Targets() []checkers.Slot {
	seen := make(map[checkers.Slot]bool, len(a.Moves))
	var out []checkers.Slot
	for _, m := range a.Moves {
		if !seen[m.End()] {
			seen[m.End()] = true
			out = append(out, m.End())
		}
	}
	return out
}

// ValidationResult holds the result of replaying a move list.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
	Err      error
}

// LoadGame parses a position string into a game ready to play.
func LoadGame(position string) (*engine.Game, error) {
	if strings.TrimSpace(position) == "" {
		position = notation.InitialPosition
	}
	pos, err := notation.ParsePosition(position)
	if err != nil {
		return nil, err
	}
	board, err := pos.Board()
	if err != nil {
		return nil, err
	}
	return engine.NewGameFromBoard(board, pos.Turn), nil
}

// AnalyzeGame lists the legal moves of g. With selected set to a slot, only
// the moves of the piece on that slot are listed, whoever's turn it is; an
// empty slot has no moves.
func AnalyzeGame(g *engine.Game, selected checkers.Slot) *Analysis {
	pieces := g.Board().AllPiecesByLocation()
	a := &Analysis{
		Board:    g.Board(),
		Turn:     g.CurrentTurn(),
		Selected: selected,
		Hash:     hashing.GenerateZobristHash(pieces, g.CurrentTurn()),
	}
	a.Winner, a.GameOver = g.Winner()

	if selected == checkers.NoSlot {
		a.Moves = g.CurrentLegalMoves()
		return a
	}
	if piece, ok := pieces[selected]; ok {
		a.Moves = engine.LegalMovesForPiece(piece, pieces)
	}
	return a
}

// AnalyzePosition parses a position and lists its legal moves. square may
// name a piece ("c3" or "22") to restrict the listing to that piece.
func AnalyzePosition(position, square string) (*Analysis, error) {
	g, err := LoadGame(position)
	if err != nil {
		return nil, err
	}

	selected := checkers.NoSlot
	if strings.TrimSpace(square) != "" {
		selected, err = notation.ParseLocation(square)
		if err != nil {
			return nil, err
		}
	}
	return AnalyzeGame(g, selected), nil
}

// ReplayMoves plays move texts from a position and analyses the result.
// Replay stops at the first move that does not name exactly one legal
// move; the analysis then describes the position before that move.
func ReplayMoves(position string, moves []string) (*Analysis, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	g, err := LoadGame(position)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid position: %v", err)
		result.Err = err
		return nil, result
	}

	reps := hashing.NewRepetitionCounter()
	reps.Add(g.Board().AllPiecesByLocation(), g.CurrentTurn())

	ply := 0
	for _, text := range moves {
		if strings.TrimSpace(text) == "" {
			continue
		}

		m, err := notation.ResolveMove(text, g.CurrentLegalMoves())
		if err != nil {
			err = &errors.MoveError{Err: err, Ply: ply + 1, Move: text}
		} else {
			err = g.ApplyMove(m)
		}
		if err != nil {
			result.Valid = false
			result.ErrorPly = ply + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", ply+1, text)
			result.Err = err
			break
		}
		ply++
		reps.Add(g.Board().AllPiecesByLocation(), g.CurrentTurn())
	}

	a := AnalyzeGame(g, checkers.NoSlot)
	a.Plies = ply
	a.MaxRepetitions = reps.MaxRepetitions()
	return a, result
}

// SplitMoveList splits "22-18 11-15, 18x11" into move texts. Move numbers
// such as "1." are dropped.
func SplitMoveList(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == ';'
	})
	out := fields[:0]
	for _, f := range fields {
		if strings.HasSuffix(f, ".") {
			continue
		}
		out = append(out, f)
	}
	return out
}
