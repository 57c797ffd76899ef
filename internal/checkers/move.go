package checkers

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Move is one legal action: either a SimpleMove or a CaptureMove.
// The interface is sealed; no other implementations exist.
type Move interface {
	Start() Slot
	End() Slot
	IsCapture() bool
	String() string
	isMove()
}

// SimpleMove is a one-step relocation onto an empty adjacent slot.
type SimpleMove struct {
	From Slot
	To   Slot
}

// Start returns the origin slot.
func (m SimpleMove) Start() Slot { return m.From }

// End returns the destination slot.
func (m SimpleMove) End() Slot { return m.To }

// IsCapture always returns false.
func (m SimpleMove) IsCapture() bool { return false }

// String returns the move in "11-15" form.
func (m SimpleMove) String() string {
	return strconv.Itoa(int(m.From)) + "-" + strconv.Itoa(int(m.To))
}

func (SimpleMove) isMove() {}

// CaptureMove is a chain of one or more jumps. JumpsOver and Lands are in
// chain order and have equal length; the last landing equals To.
type CaptureMove struct {
	From      Slot
	To        Slot
	JumpsOver []Slot
	Lands     []Slot
}

// Start returns the origin slot.
func (m CaptureMove) Start() Slot { return m.From }

// End returns the final landing slot.
func (m CaptureMove) End() Slot { return m.To }

// IsCapture always returns true.
func (m CaptureMove) IsCapture() bool { return true }

// String returns the move with every landing listed, e.g. "18x11x4".
func (m CaptureMove) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(m.From)))
	for _, l := range m.Lands {
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(int(l)))
	}
	return sb.String()
}

func (CaptureMove) isMove() {}

// Prepend returns a new capture that first jumps over jumped from start,
// landing on landing, then continues with m.
func (m CaptureMove) Prepend(start, jumped, landing Slot) CaptureMove {
	jumps := make([]Slot, 0, len(m.JumpsOver)+1)
	jumps = append(jumps, jumped)
	jumps = append(jumps, m.JumpsOver...)

	lands := make([]Slot, 0, len(m.Lands)+1)
	lands = append(lands, landing)
	lands = append(lands, m.Lands...)

	return CaptureMove{From: start, To: m.To, JumpsOver: jumps, Lands: lands}
}

// SameMove reports whether a and b describe the same action.
func SameMove(a, b Move) bool {
	if a.Start() != b.Start() || a.End() != b.End() || a.IsCapture() != b.IsCapture() {
		return false
	}
	ca, okA := a.(CaptureMove)
	cb, okB := b.(CaptureMove)
	if !okA || !okB {
		return okA == okB
	}
	return slices.Equal(ca.JumpsOver, cb.JumpsOver) && slices.Equal(ca.Lands, cb.Lands)
}
