// Package draughts provides core draughts types and coordinate geometry.
package draughts

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// BoardSize is the number of squares along one edge of the board.
const BoardSize = 8

// Piece represents a single draughts piece. Pieces are immutable values;
// crowning produces a new piece rather than mutating in place.
type Piece struct {
	Colour  Colour
	Crowned bool
}

// NewPiece creates an un-crowned piece of the given colour.
func NewPiece(colour Colour) Piece {
	return Piece{Colour: colour}
}

// Crown returns the crowned form of the given piece.
func Crown(p Piece) Piece {
	return Piece{Colour: p.Colour, Crowned: true}
}

// Move represents a single atomic relocation: either a one-step diagonal
// move or a two-step jump. Multi-jump sequences are not a single Move.
type Move struct {
	From Coordinate
	To   Coordinate
}

// NewMove creates a move between two (x, y) pairs.
func NewMove(fromX, fromY, toX, toY int) Move {
	return Move{
		From: Coordinate{X: fromX, Y: fromY},
		To:   Coordinate{X: toX, Y: toY},
	}
}
