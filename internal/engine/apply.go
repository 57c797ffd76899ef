package engine

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// ApplyMove plays m if it is one of the current legal moves: the piece is
// relocated, every jumped piece is captured, a man reaching the far row is
// crowned, the move is recorded and the turn passes.
func (g *Game) ApplyMove(m checkers.Move) error {
	if m == nil || !g.isLegal(m) {
		return &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Ply:  len(g.history) + 1,
			Move: describeMove(m),
		}
	}

	from, to := m.Start(), m.End()
	if !g.board.Move(from, to) {
		// Unreachable for a legal move; guards against a corrupted board.
		return &errors.MoveError{
			Err:  fmt.Errorf("cannot move %d to %d: %w", from, to, errors.ErrIllegalMove),
			Ply:  len(g.history) + 1,
			Move: describeMove(m),
		}
	}

	if cm, ok := m.(checkers.CaptureMove); ok {
		for _, s := range cm.JumpsOver {
			g.board.CapturePiece(s)
		}
	}

	promoteIfCrowned(g.board, to)

	g.history = append(g.history, m)
	g.EndTurn()
	return nil
}

// isLegal reports whether m matches one of the current legal moves.
func (g *Game) isLegal(m checkers.Move) bool {
	for _, legal := range g.CurrentLegalMoves() {
		if checkers.SameMove(legal, m) {
			return true
		}
	}
	return false
}

// promoteIfCrowned crowns a man standing on its promotion row.
func promoteIfCrowned(board *checkers.Board, s checkers.Slot) {
	p, ok := board.Piece(s)
	if !ok || p.IsKing() {
		return
	}
	c, err := checkers.LocationToCoordinates(s)
	if err != nil {
		return
	}
	if c.Row == checkers.PromotionRow(p.Colour) {
		board.Promote(s)
	}
}

// describeMove renders m for error messages.
func describeMove(m checkers.Move) string {
	if m == nil {
		return ""
	}
	return m.String()
}
