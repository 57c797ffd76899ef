package engine

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

type slots = []checkers.Slot

// gameWith arranges a game with the given pieces and side to move.
func gameWith(t *testing.T, turn checkers.Colour, groups ...map[checkers.Slot]checkers.Placement) *Game {
	t.Helper()
	return NewGameFromBoard(testutil.MustBoard(t, groups...), turn)
}

func TestCurrentLegalMoves_InitialPosition(t *testing.T) {
	g := NewGame()

	want := []checkers.Move{
		testutil.Step(21, 17),
		testutil.Step(22, 18),
		testutil.Step(22, 17),
		testutil.Step(23, 19),
		testutil.Step(23, 18),
		testutil.Step(24, 20),
		testutil.Step(24, 19),
	}
	testutil.AssertMoves(t, g.CurrentLegalMoves(), want)
}

func TestCurrentLegalMoves_BlackOpening(t *testing.T) {
	g := NewGame()
	g.EndTurn()

	got := g.CurrentLegalMoves()
	if len(got) != 7 {
		t.Fatalf("len(CurrentLegalMoves()) = %d, want 7: %v", len(got), got)
	}
	for _, m := range got {
		if m.Start() < 9 || m.Start() > 12 {
			t.Errorf("move %v starts outside Black's front row", m)
		}
		if m.IsCapture() {
			t.Errorf("move %v is a capture in the opening", m)
		}
	}
}

func TestCurrentLegalMoves_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		turn   checkers.Colour
		pieces []map[checkers.Slot]checkers.Placement
		want   []checkers.Move
	}{
		{
			name:   "forced capture",
			turn:   checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("white", 11), testutil.Men("black", 8)},
			want:   []checkers.Move{testutil.Jump(11, slots{8}, slots{4})},
		},
		{
			name:   "no self capture",
			turn:   checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("white", 11, 8)},
			want: []checkers.Move{
				testutil.Step(8, 4),
				testutil.Step(8, 3),
				testutil.Step(11, 7),
			},
		},
		{
			name:   "blocked landing suppresses jump",
			turn:   checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("white", 11), testutil.Men("black", 8, 4)},
			want:   []checkers.Move{testutil.Step(11, 7)},
		},
		{
			name:   "multi jump",
			turn:   checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("white", 18), testutil.Men("black", 15, 8)},
			want:   []checkers.Move{testutil.Jump(18, slots{15, 8}, slots{11, 4})},
		},
		{
			name:   "branching multi jump",
			turn:   checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("white", 18), testutil.Men("black", 15, 8, 7)},
			want: []checkers.Move{
				testutil.Jump(18, slots{15, 8}, slots{11, 4}),
				testutil.Jump(18, slots{15, 7}, slots{11, 2}),
			},
		},
		{
			name: "forced capture is per piece",
			turn: checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{
				testutil.Men("white", 11, 30),
				testutil.Men("black", 8),
			},
			want: []checkers.Move{
				testutil.Jump(11, slots{8}, slots{4}),
				testutil.Step(30, 26),
				testutil.Step(30, 25),
			},
		},
		{
			name:   "black man moves toward white",
			turn:   checkers.Black,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("black", 9)},
			want: []checkers.Move{
				testutil.Step(9, 14),
				testutil.Step(9, 13),
			},
		},
		{
			name:   "black man captures",
			turn:   checkers.Black,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("black", 9), testutil.Men("white", 14)},
			want:   []checkers.Move{testutil.Jump(9, slots{14}, slots{18})},
		},
		{
			name:   "man cannot capture backwards",
			turn:   checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("white", 18), testutil.Men("black", 22)},
			want: []checkers.Move{
				testutil.Step(18, 15),
				testutil.Step(18, 14),
			},
		},
		{
			name:   "king captures backwards",
			turn:   checkers.White,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Kings("white", 18), testutil.Men("black", 22)},
			want:   []checkers.Move{testutil.Jump(18, slots{22}, slots{25})},
		},
		{
			name:   "no pieces",
			turn:   checkers.Black,
			pieces: []map[checkers.Slot]checkers.Placement{testutil.Men("white", 18)},
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gameWith(t, tt.turn, tt.pieces...)
			testutil.AssertMoves(t, g.CurrentLegalMoves(), tt.want)
		})
	}
}

func TestCurrentLegalMoves_NoDuplicates(t *testing.T) {
	g := gameWith(t, checkers.White, testutil.Men("white", 18), testutil.Men("black", 15, 8, 7))

	seen := make(map[string]bool)
	for _, m := range g.CurrentLegalMoves() {
		if seen[m.String()] {
			t.Errorf("duplicate move %v", m)
		}
		seen[m.String()] = true
	}
}

func TestCurrentLegalMoves_DoesNotMutate(t *testing.T) {
	g := gameWith(t, checkers.White, testutil.Men("white", 18), testutil.Men("black", 15, 8))
	before := g.Board().AllPiecesByLocation()

	g.CurrentLegalMoves()

	testutil.AssertEqual(t, g.Board().AllPiecesByLocation(), before)
	if len(g.MoveHistory()) != 0 {
		t.Errorf("MoveHistory() = %v after query, want empty", g.MoveHistory())
	}
}

// A king surrounded by a diamond of four men can jump all of them and
// finish on the square it started from, in either rotation. Each man is
// jumped exactly once.
func TestLegalMovesForPiece_KingCircuit(t *testing.T) {
	b := testutil.MustBoard(t, testutil.Kings("white", 22), testutil.Men("black", 18, 10, 9, 17))
	pieces := b.AllPiecesByLocation()

	got := LegalMovesForPiece(pieces[22], pieces)

	want := []checkers.Move{
		testutil.Jump(22, slots{18, 10, 9, 17}, slots{15, 6, 13, 22}),
		testutil.Jump(22, slots{17, 9, 10, 18}, slots{13, 6, 15, 22}),
	}
	testutil.AssertMoves(t, got, want)
}

func TestLegalMovesForPiece_KingSimpleMoves(t *testing.T) {
	b := testutil.MustBoard(t, testutil.Kings("black", 18))
	pieces := b.AllPiecesByLocation()

	got := LegalMovesForPiece(pieces[18], pieces)

	want := []checkers.Move{
		testutil.Step(18, 15),
		testutil.Step(18, 14),
		testutil.Step(18, 23),
		testutil.Step(18, 22),
	}
	testutil.AssertSameMoves(t, got, want)
}

func TestLegalMovesForPiece_IgnoresTurn(t *testing.T) {
	g := gameWith(t, checkers.White, testutil.Men("black", 9))
	pieces := g.Board().AllPiecesByLocation()

	if got := LegalMovesForPiece(pieces[9], pieces); len(got) != 2 {
		t.Errorf("LegalMovesForPiece(black 9) = %v, want two moves", got)
	}
}

func TestHasLegalMovesAndWinner(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		g := NewGame()
		if !g.HasLegalMoves() {
			t.Error("HasLegalMoves() = false at the start")
		}
		if _, over := g.Winner(); over {
			t.Error("Winner() reports a result at the start")
		}
	})

	t.Run("blocked side loses", func(t *testing.T) {
		// White man on 29 with Black men on 25 and 22 behind it: no step,
		// no jump (landing 22 is occupied).
		g := gameWith(t, checkers.White, testutil.Men("white", 29), testutil.Men("black", 25, 22))
		if g.HasLegalMoves() {
			t.Fatalf("HasLegalMoves() = true, moves %v", g.CurrentLegalMoves())
		}
		winner, over := g.Winner()
		if !over || winner != checkers.Black {
			t.Errorf("Winner() = %v, %v; want Black, true", winner, over)
		}
	})
}
