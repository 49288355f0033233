// Package engine provides draughts move generation, validation, and
// application.
package engine

import (
	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/errors"
)

// Engine owns the board, the side to move, and the move counter. It is not
// safe for concurrent use; callers that share an Engine must enforce
// single-writer/multiple-reader discipline themselves.
type Engine struct {
	// board[x][y]; nil means the square is empty.
	board     [draughts.BoardSize][draughts.BoardSize]*draughts.Piece
	toMove    draughts.Colour
	moveCount uint
}

// MoveResult describes a successfully applied move.
type MoveResult struct {
	Move draughts.Move
	// Crowned is true if the moved piece was promoted on arrival.
	Crowned bool
	// Captured holds the cleared midpoint square for jump moves, nil for
	// simple moves.
	Captured *draughts.Coordinate
}

// New creates an engine with the standard starting layout: White on rows
// 0-2, Black on rows 5-7, Black to move.
func New() *Engine {
	e := NewEmpty()
	e.initialisePieces()
	return e
}

// NewEmpty creates an engine with an empty board, Black to move. Intended
// for tests and for restoring saved positions.
func NewEmpty() *Engine {
	return &Engine{toMove: draughts.Black}
}

func (e *Engine) initialisePieces() {
	whiteX := []int{1, 3, 5, 7, 0, 2, 4, 6, 1, 3, 5, 7}
	whiteY := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	for i := range whiteX {
		piece := draughts.NewPiece(draughts.White)
		e.board[whiteX[i]][whiteY[i]] = &piece
	}

	blackX := []int{0, 2, 4, 6, 1, 3, 5, 7, 0, 2, 4, 6}
	blackY := []int{5, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 7}
	for i := range blackX {
		piece := draughts.NewPiece(draughts.Black)
		e.board[blackX[i]][blackY[i]] = &piece
	}
}

// CurrentTurn returns the colour of the side to move.
func (e *Engine) CurrentTurn() draughts.Colour {
	return e.toMove
}

// MoveCount returns the number of successfully applied moves.
func (e *Engine) MoveCount() uint {
	return e.moveCount
}

// PieceAt returns the piece at coord. The bool reports whether the square is
// occupied. An off-board coordinate is an error, distinct from an empty
// square.
func (e *Engine) PieceAt(coord draughts.Coordinate) (draughts.Piece, bool, error) {
	if !coord.OnBoard() {
		return draughts.Piece{}, false, errors.ErrInvalidCoordinate
	}
	p := e.board[coord.X][coord.Y]
	if p == nil {
		return draughts.Piece{}, false, nil
	}
	return *p, true, nil
}

// PlacePiece puts a piece on an on-board square, overwriting any occupant.
// Intended for tests and for restoring saved positions.
func (e *Engine) PlacePiece(coord draughts.Coordinate, piece draughts.Piece) error {
	if !coord.OnBoard() {
		return errors.ErrInvalidCoordinate
	}
	p := piece
	e.board[coord.X][coord.Y] = &p
	return nil
}

// RemovePiece clears an on-board square.
func (e *Engine) RemovePiece(coord draughts.Coordinate) error {
	if !coord.OnBoard() {
		return errors.ErrInvalidCoordinate
	}
	e.board[coord.X][coord.Y] = nil
	return nil
}

// LegalMoves returns every move available to the side to move, scanning the
// board x-major then y, with each square's jumps listed before its simple
// moves. The resulting order is part of the contract and is pinned by tests.
func (e *Engine) LegalMoves() []draughts.Move {
	var moves []draughts.Move
	for x := 0; x < draughts.BoardSize; x++ {
		for y := 0; y < draughts.BoardSize; y++ {
			piece := e.board[x][y]
			if piece == nil || piece.Colour != e.toMove {
				continue
			}
			loc := draughts.Coordinate{X: x, Y: y}
			moves = append(moves, e.ValidMovesFrom(loc)...)
		}
	}
	return moves
}

// ValidMovesFrom returns the moves available to the piece on loc: valid
// jumps first, then valid simple moves, each in the fixed geometry order.
// An empty or off-board square yields no moves.
func (e *Engine) ValidMovesFrom(loc draughts.Coordinate) []draughts.Move {
	if !loc.OnBoard() {
		return nil
	}
	piece := e.board[loc.X][loc.Y]
	if piece == nil {
		return nil
	}

	var moves []draughts.Move
	for _, target := range draughts.JumpTargetsFrom(loc) {
		if e.validJump(*piece, loc, target) {
			moves = append(moves, draughts.Move{From: loc, To: target})
		}
	}
	for _, target := range draughts.MoveTargetsFrom(loc) {
		if e.validMove(*piece, loc, target) {
			moves = append(moves, draughts.Move{From: loc, To: target})
		}
	}
	return moves
}

// validJump reports whether moving piece from from to to is a legal jump:
// both squares on the board and the midpoint holding an opposing piece.
// Destination occupancy is deliberately not checked, matching the behaviour
// this engine reproduces.
func (e *Engine) validJump(piece draughts.Piece, from, to draughts.Coordinate) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	mid, ok := draughts.MidpointCoordinate(from, to)
	if !ok {
		return false
	}
	midPiece := e.board[mid.X][mid.Y]
	return midPiece != nil && midPiece.Colour != piece.Colour
}

// validMove reports whether moving piece from from to to is a legal simple
// move: both squares on the board, destination empty, and direction allowed
// for the piece. Crowned pieces move in both directions; un-crowned White
// only toward increasing y, un-crowned Black only toward decreasing y.
func (e *Engine) validMove(piece draughts.Piece, from, to draughts.Coordinate) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	if e.board[to.X][to.Y] != nil {
		return false
	}

	if to.Y > from.Y && piece.Colour == draughts.White {
		return true
	}
	if to.Y < from.Y && piece.Colour == draughts.Black {
		return true
	}
	if piece.Crowned && (to.Y > from.Y || to.Y < from.Y) {
		return true
	}
	return false
}

// MovePiece validates move against the current legal-move set and applies
// it: the captured midpoint (if any) is cleared, the piece relocated,
// crowned on reaching its far row, and the turn advanced. An illegal move
// returns errors.ErrIllegalMove with no state change.
func (e *Engine) MovePiece(move draughts.Move) (MoveResult, error) {
	legal := false
	for _, m := range e.LegalMoves() {
		if m == move {
			legal = true
			break
		}
	}
	if !legal {
		return MoveResult{}, errors.ErrIllegalMove
	}

	piece := *e.board[move.From.X][move.From.Y]
	result := MoveResult{Move: move}

	if mid, ok := draughts.MidpointCoordinate(move.From, move.To); ok {
		e.board[mid.X][mid.Y] = nil
		captured := mid
		result.Captured = &captured
	}

	moved := piece
	e.board[move.To.X][move.To.Y] = &moved
	e.board[move.From.X][move.From.Y] = nil

	if e.shouldCrown(piece, move.To) {
		e.CrownPiece(move.To)
		result.Crowned = true
	}

	e.advanceTurn()
	return result, nil
}

// shouldCrown reports whether piece arriving on coord reaches its far row:
// y=0 for Black, y=7 for White.
func (e *Engine) shouldCrown(piece draughts.Piece, coord draughts.Coordinate) bool {
	return (coord.Y == 0 && piece.Colour == draughts.Black) ||
		(coord.Y == draughts.BoardSize-1 && piece.Colour == draughts.White)
}

// CrownPiece replaces the piece at coord with its crowned form. It returns
// false if the square is empty.
func (e *Engine) CrownPiece(coord draughts.Coordinate) bool {
	if !coord.OnBoard() {
		return false
	}
	piece := e.board[coord.X][coord.Y]
	if piece == nil {
		return false
	}
	crowned := draughts.Crown(*piece)
	e.board[coord.X][coord.Y] = &crowned
	return true
}

// IsCrowned reports whether the piece at coord is crowned. Empty and
// off-board squares report false.
func (e *Engine) IsCrowned(coord draughts.Coordinate) bool {
	if !coord.OnBoard() {
		return false
	}
	piece := e.board[coord.X][coord.Y]
	return piece != nil && piece.Crowned
}

// advanceTurn toggles the side to move and increments the move counter.
func (e *Engine) advanceTurn() {
	e.toMove = e.toMove.Opposite()
	e.moveCount++
}
