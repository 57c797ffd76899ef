package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// CurrentLegalMoves returns every legal move for the side to move, grouped
// by piece in ascending slot order. Forced capture applies per piece: a
// piece that can jump offers only jumps, but other pieces keep their simple
// moves.
func (g *Game) CurrentLegalMoves() []checkers.Move {
	pieces := g.board.AllPiecesByLocation()

	var moves []checkers.Move
	for _, piece := range pieces.ByColour(g.currentTurn) {
		moves = append(moves, LegalMovesForPiece(piece, pieces)...)
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *Game) HasLegalMoves() bool {
	pieces := g.board.AllPiecesByLocation()
	for _, piece := range pieces.ByColour(g.currentTurn) {
		if len(LegalMovesForPiece(piece, pieces)) > 0 {
			return true
		}
	}
	return false
}

// Winner reports the winning colour once the side to move has no legal
// move left (including having no pieces).
func (g *Game) Winner() (checkers.Colour, bool) {
	if g.HasLegalMoves() {
		return checkers.White, false
	}
	return g.currentTurn.Opposite(), true
}

// LegalMovesForPiece computes the legal moves of one piece against a board
// snapshot. It never mutates pieces: jumped pieces stay in place while the
// chain is explored.
func LegalMovesForPiece(piece checkers.PieceInfo, pieces checkers.Pieces) []checkers.Move {
	return movesFrom(piece, pieces, chain{origin: piece.Location})
}

// chain is the state carried down one capture sequence.
type chain struct {
	origin   checkers.Slot   // where the moving piece started; vacated while it jumps
	jumped   []checkers.Slot // pieces already jumped in this sequence
	previous checkers.Direction
	midChain bool
}

// after returns the chain state once the piece has jumped over captured
// travelling in direction d.
func (c chain) after(d checkers.Direction, captured checkers.Slot) chain {
	jumped := make([]checkers.Slot, len(c.jumped), len(c.jumped)+1)
	copy(jumped, c.jumped)
	return chain{
		origin:   c.origin,
		jumped:   append(jumped, captured),
		previous: d,
		midChain: true,
	}
}

func (c chain) hasJumped(s checkers.Slot) bool {
	for _, j := range c.jumped {
		if j == s {
			return true
		}
	}
	return false
}

// allows reports whether d may be tried: mid-chain the piece cannot turn
// straight back along the line it just jumped.
func (c chain) allows(d checkers.Direction) bool {
	return !c.midChain || d != c.previous.Opposite()
}

// peek is Pieces.Peek with the moving piece's origin treated as empty.
func (c chain) peek(pieces checkers.Pieces, from checkers.Slot, d checkers.Direction, distance int) checkers.PeekResult {
	r := pieces.Peek(from, d, distance)
	if r.Occupied() && r.Location == c.origin {
		return checkers.PeekResult{Status: checkers.Empty, Location: r.Location}
	}
	return r
}

// movesFrom is the recursive move search for a piece standing on
// piece.Location. Each capture found is extended by every capture that can
// follow it; a distinct continuation yields a distinct move.
func movesFrom(piece checkers.PieceInfo, pieces checkers.Pieces, c chain) []checkers.Move {
	var simple, captures []checkers.Move

	for _, d := range checkers.DirectionsFor(piece.Colour, piece.Type) {
		if !c.allows(d) {
			continue
		}

		next := c.peek(pieces, piece.Location, d, 1)
		switch {
		case next.Empty():
			simple = append(simple, checkers.SimpleMove{From: piece.Location, To: next.Location})

		case next.Occupied() && next.Colour != piece.Colour && !c.hasJumped(next.Location):
			landing := c.peek(pieces, piece.Location, d, 2)
			if !landing.Empty() {
				continue
			}
			captures = append(captures, jumpsFrom(piece, pieces, c, d, next.Location, landing.Location)...)
		}
	}

	if len(captures) > 0 {
		return captures
	}
	return simple
}

// jumpsFrom builds the capture moves that begin with piece jumping over
// jumped onto landing.
func jumpsFrom(piece checkers.PieceInfo, pieces checkers.Pieces, c chain, d checkers.Direction, jumped, landing checkers.Slot) []checkers.Move {
	moved := checkers.PieceInfo{Location: landing, Colour: piece.Colour, Type: piece.Type}

	var onward []checkers.CaptureMove
	for _, m := range movesFrom(moved, pieces, c.after(d, jumped)) {
		if cm, ok := m.(checkers.CaptureMove); ok {
			onward = append(onward, cm)
		}
	}

	if len(onward) == 0 {
		return []checkers.Move{checkers.CaptureMove{
			From:      piece.Location,
			To:        landing,
			JumpsOver: []checkers.Slot{jumped},
			Lands:     []checkers.Slot{landing},
		}}
	}

	out := make([]checkers.Move, 0, len(onward))
	for _, cm := range onward {
		out = append(out, cm.Prepend(piece.Location, jumped, landing))
	}
	return out
}
