package hashing

import (
	"math/rand"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Zobrist keys for each piece kind on each slot, and for Black to move.
var (
	zobristPiece [4][checkers.NumSlots + 1]uint64 // index by pieceKind, then slot
	zobristSide  uint64
)

func init() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for k := range zobristPiece {
		for s := int(checkers.FirstSlot); s <= checkers.NumSlots; s++ {
			zobristPiece[k][s] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
}

func pieceKind(p checkers.PieceInfo) int {
	k := int(p.Colour) * 2
	if p.IsKing() {
		k++
	}
	return k
}

// GenerateZobristHash hashes a position: every piece plus the side to move.
func GenerateZobristHash(pieces checkers.Pieces, turn checkers.Colour) uint64 {
	var key uint64
	for s, p := range pieces {
		if !s.Valid() {
			continue
		}
		key ^= zobristPiece[pieceKind(p)][s]
	}
	if turn == checkers.Black {
		key ^= zobristSide
	}
	return key
}

// HashCode is a cheap secondary position checksum.
type HashCode uint32

// WeakHash sums slot-weighted piece kinds. Collisions are common; it only
// confirms a Zobrist match.
func WeakHash(pieces checkers.Pieces) HashCode {
	var h HashCode
	for s, p := range pieces {
		h += HashCode(s) * HashCode(pieceKind(p)+1) * 2654435761
	}
	return h
}
