// Package engine provides checkers turn bookkeeping, legal move generation
// and move application.
package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// Game tracks the board, whose turn it is and the moves played so far.
type Game struct {
	board       *checkers.Board
	currentTurn checkers.Colour
	history     []checkers.Move
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame() *Game {
	g := &Game{board: checkers.NewBoard()}
	g.Reset()
	return g
}

// NewGameFromBoard wraps an existing board. The game owns the board from
// here on; history starts empty.
func NewGameFromBoard(board *checkers.Board, turn checkers.Colour) *Game {
	return &Game{board: board, currentTurn: turn}
}

// Reset restores the starting position, White to move, and clears history.
func (g *Game) Reset() {
	g.currentTurn = checkers.White
	g.history = nil
	g.board.Reset()
}

// Board returns the game's board.
func (g *Game) Board() *checkers.Board {
	return g.board
}

// CurrentTurn returns the colour to move.
func (g *Game) CurrentTurn() checkers.Colour {
	return g.currentTurn
}

// SetTurn sets the colour to move, e.g. after arranging a test position.
func (g *Game) SetTurn(c checkers.Colour) {
	g.currentTurn = c
}

// EndTurn passes the move to the other side.
func (g *Game) EndTurn() {
	g.currentTurn = g.currentTurn.Opposite()
}

// MoveHistory returns a copy of the moves applied so far, oldest first.
func (g *Game) MoveHistory() []checkers.Move {
	out := make([]checkers.Move, len(g.history))
	copy(out, g.history)
	return out
}
