package checkers

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SquareStatus tags what a peek found.
type SquareStatus int

const (
	Offboard SquareStatus = iota // Destination is off the board
	Empty                        // Destination is playable and unoccupied
	Occupied                     // Destination holds a piece
)

// String returns the status name.
func (s SquareStatus) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Occupied:
		return "Occupied"
	default:
		return "Offboard"
	}
}

// PeekResult describes the square found by a peek. Location is NoSlot when
// Status is Offboard; Colour and Type are meaningful only when Occupied.
type PeekResult struct {
	Status   SquareStatus
	Location Slot
	Colour   Colour
	Type     PieceType
}

// Offboard reports whether the peek left the board.
func (r PeekResult) Offboard() bool { return r.Status == Offboard }

// Empty reports whether the peek found an unoccupied playable square.
func (r PeekResult) Empty() bool { return r.Status == Empty }

// Occupied reports whether the peek found a piece.
func (r PeekResult) Occupied() bool { return r.Status == Occupied }

// Pieces is a snapshot of occupied slots. It is detached from the board
// that produced it.
type Pieces map[Slot]PieceInfo

// Peek looks distance squares from slot in direction d without mutating
// anything. An invalid origin reports Offboard.
func (ps Pieces) Peek(from Slot, d Direction, distance int) PeekResult {
	loc, ok := Step(from, d, distance)
	if !ok {
		return PeekResult{Status: Offboard}
	}
	if p, found := ps[loc]; found {
		return PeekResult{Status: Occupied, Location: loc, Colour: p.Colour, Type: p.Type}
	}
	return PeekResult{Status: Empty, Location: loc}
}

// ByColour returns the pieces of colour c in ascending slot order.
func (ps Pieces) ByColour(c Colour) []PieceInfo {
	var result []PieceInfo
	for _, s := range ps.Slots() {
		if ps[s].Colour == c {
			result = append(result, ps[s])
		}
	}
	return result
}

// Slots returns the occupied slots in ascending order.
func (ps Pieces) Slots() []Slot {
	slots := maps.Keys(ps)
	slices.Sort(slots)
	return slots
}

// Clone returns an independent copy of the snapshot.
func (ps Pieces) Clone() Pieces {
	out := make(Pieces, len(ps))
	for k, v := range ps {
		out[k] = v
	}
	return out
}
