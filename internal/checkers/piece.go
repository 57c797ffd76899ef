package checkers

// Piece is an individual checker. Its location is implied by the board slot
// that holds it.
type Piece struct {
	colour     Colour
	isKing     bool
	isCaptured bool
}

// NewPiece creates an uncaptured man of the given colour.
func NewPiece(colour Colour) *Piece {
	return &Piece{colour: colour}
}

// SetColour sets the colour from a case-insensitive name.
// The piece is unchanged when the name is invalid.
func (p *Piece) SetColour(name string) error {
	colour, err := ParseColour(name)
	if err != nil {
		return err
	}
	p.colour = colour
	return nil
}

// Colour returns the piece colour.
func (p *Piece) Colour() Colour {
	return p.colour
}

// Type returns Man or King.
func (p *Piece) Type() PieceType {
	if p.isKing {
		return King
	}
	return Man
}

// IsKing reports whether the piece has been promoted.
func (p *Piece) IsKing() bool {
	return p.isKing
}

// IsCaptured reports whether the piece has been captured.
func (p *Piece) IsCaptured() bool {
	return p.isCaptured
}

// PromoteToKing makes this piece a king.
func (p *Piece) PromoteToKing() {
	p.isKing = true
}

// Capture marks the piece as captured.
func (p *Piece) Capture() {
	p.isCaptured = true
}

// describe returns the value record for this piece at loc.
func (p *Piece) describe(loc Slot) PieceInfo {
	return PieceInfo{Location: loc, Colour: p.colour, Type: p.Type()}
}
