package testutil

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Men is shorthand for placing men of one colour on the given slots.
func Men(colour string, slots ...checkers.Slot) map[checkers.Slot]checkers.Placement {
	return place(colour, "man", slots)
}

// Kings is shorthand for placing kings of one colour on the given slots.
func Kings(colour string, slots ...checkers.Slot) map[checkers.Slot]checkers.Placement {
	return place(colour, "king", slots)
}

func place(colour, kind string, slots []checkers.Slot) map[checkers.Slot]checkers.Placement {
	out := make(map[checkers.Slot]checkers.Placement, len(slots))
	for _, s := range slots {
		out[s] = checkers.Placement{Color: colour, Type: kind}
	}
	return out
}

// MustBoard arranges a fresh board from one or more placement maps.
// It calls t.Fatal if the arrangement is rejected.
func MustBoard(t *testing.T, groups ...map[checkers.Slot]checkers.Placement) *checkers.Board {
	t.Helper()
	merged := make(map[checkers.Slot]checkers.Placement)
	for _, g := range groups {
		for s, p := range g {
			merged[s] = p
		}
	}
	b := checkers.NewEmptyBoard()
	if err := b.Arrange(merged); err != nil {
		t.Fatalf("failed to arrange test board: %v", err)
	}
	return b
}

// Jump builds a capture move from its origin, jumped slots and landings.
// The final landing becomes the move's end.
func Jump(from checkers.Slot, over, lands []checkers.Slot) checkers.CaptureMove {
	return checkers.CaptureMove{From: from, To: lands[len(lands)-1], JumpsOver: over, Lands: lands}
}

// Step builds a simple move.
func Step(from, to checkers.Slot) checkers.SimpleMove {
	return checkers.SimpleMove{From: from, To: to}
}
