package hashing

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/notation"
)

func initialPieces() checkers.Pieces {
	return checkers.NewBoard().AllPiecesByLocation()
}

func piecesFrom(t testing.TB, position string) (checkers.Pieces, checkers.Colour) {
	t.Helper()
	pos, err := notation.ParsePosition(position)
	if err != nil {
		t.Fatalf("ParsePosition(%q) error = %v", position, err)
	}
	b, err := pos.Board()
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	return b.AllPiecesByLocation(), pos.Turn
}

func TestZobristHashConsistency(t *testing.T) {
	// Two identical boards produce the same hash
	hash1 := GenerateZobristHash(initialPieces(), checkers.White)
	hash2 := GenerateZobristHash(initialPieces(), checkers.White)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	moved := initialPieces()
	p := moved[22]
	delete(moved, 22)
	p.Location = 18
	moved[18] = p

	hash1 := GenerateZobristHash(initialPieces(), checkers.White)
	hash2 := GenerateZobristHash(moved, checkers.White)

	if hash1 == hash2 {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashKingDiffersFromMan(t *testing.T) {
	man, _ := piecesFrom(t, "W:W18:B")
	king, _ := piecesFrom(t, "W:WK18:B")

	if GenerateZobristHash(man, checkers.White) == GenerateZobristHash(king, checkers.White) {
		t.Error("man and king on the same slot produced the same hash")
	}
}

func TestSideToMoveAffectsHash(t *testing.T) {
	hash1 := GenerateZobristHash(initialPieces(), checkers.White)
	hash2 := GenerateZobristHash(initialPieces(), checkers.Black)

	if hash1 == hash2 {
		t.Error("Same position with different side to move should have different hashes")
	}
}

func TestWeakHashConsistency(t *testing.T) {
	if WeakHash(initialPieces()) != WeakHash(initialPieces()) {
		t.Error("Identical boards produced different weak hashes")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	// First position should not be a duplicate
	if detector.CheckAndAdd(initialPieces(), checkers.White) {
		t.Error("First position was marked as duplicate")
	}

	// Same position should be a duplicate
	if !detector.CheckAndAdd(initialPieces(), checkers.White) {
		t.Error("Duplicate position was not detected")
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", detector.DuplicateCount())
	}
}

func TestDuplicateDetectorDifferentPositions(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	pieces2, turn2 := piecesFrom(t, "W:W18,21,23-32:B1-12")

	if detector.CheckAndAdd(initialPieces(), checkers.White) {
		t.Error("Position 1 was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(pieces2, turn2) {
		t.Error("Position 2 was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(initialPieces(), checkers.Black) {
		t.Error("Position 1 with Black to move was incorrectly marked as duplicate")
	}

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 3 {
		t.Errorf("Expected 3 unique positions, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	detector.CheckAndAdd(initialPieces(), checkers.White)
	detector.CheckAndAdd(initialPieces(), checkers.White)

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates after reset, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("Expected 0 unique positions after reset, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorNilPieces(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	if detector.CheckAndAdd(nil, checkers.White) {
		t.Error("nil pieces reported as duplicate")
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("nil pieces were stored")
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)

	for _, s := range []checkers.Slot{1, 2, 3} {
		pieces := checkers.Pieces{s: {Location: s, Colour: checkers.White, Type: checkers.Man}}
		detector.CheckAndAdd(pieces, checkers.White)
	}

	if !detector.IsFull() {
		t.Error("detector should be full after 3 unique positions with capacity 2")
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", detector.UniqueCount())
	}
}

func TestRepetitionCounter(t *testing.T) {
	rc := NewRepetitionCounter()

	start, _ := piecesFrom(t, "W:WK22:BK11")
	away, _ := piecesFrom(t, "B:WK18:BK11")

	counts := []int{
		rc.Add(start, checkers.White),
		rc.Add(away, checkers.Black),
		rc.Add(start, checkers.White),
		rc.Add(start, checkers.White),
	}

	want := []int{1, 1, 2, 3}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("Add #%d = %d, want %d", i+1, counts[i], want[i])
		}
	}
	if rc.MaxRepetitions() != 3 {
		t.Errorf("MaxRepetitions() = %d, want 3", rc.MaxRepetitions())
	}
}
