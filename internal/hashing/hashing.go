// Package hashing provides duplicate detection for checkers positions.
package hashing

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
)

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// useExactMatch also compares piece counts
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures; 0 is unlimited
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// PieceCount is the number of pieces on the board
	PieceCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash HashCode
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a position.
func Signature(pieces checkers.Pieces, turn checkers.Colour) PositionSignature {
	return PositionSignature{
		Hash:       GenerateZobristHash(pieces, turn),
		PieceCount: len(pieces),
		WeakHash:   WeakHash(pieces),
	}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash
// table. Returns true if the position is a duplicate. Once the detector is
// full, new positions are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(pieces checkers.Pieces, turn checkers.Colour) bool {
	if pieces == nil {
		return false
	}

	sig := Signature(pieces, turn)

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PieceCount != b.PieceCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.size = 0
	d.duplicateCount = 0
}

// RepetitionCounter counts how often each position occurs along a line of
// play.
type RepetitionCounter struct {
	counts map[uint64]int
	max    int
}

// NewRepetitionCounter creates an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of the position and returns its count so far.
func (r *RepetitionCounter) Add(pieces checkers.Pieces, turn checkers.Colour) int {
	h := GenerateZobristHash(pieces, turn)
	r.counts[h]++
	if r.counts[h] > r.max {
		r.max = r.counts[h]
	}
	return r.counts[h]
}

// MaxRepetitions returns the highest occurrence count of any position.
func (r *RepetitionCounter) MaxRepetitions() int {
	return r.max
}
