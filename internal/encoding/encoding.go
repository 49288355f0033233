// Package encoding implements the numeric piece encoding used across the
// host boundary. The core piece model stays boundary-agnostic; this is the
// only place the bit-flag convention appears.
package encoding

import "github.com/lgbarn/draughts-go/internal/draughts"

// Bit flags composing an encoded piece.
const (
	FlagBlack = 1
	FlagWhite = 2
	FlagCrown = 4
)

// Boundary sentinels. Empty squares and off-board coordinates are distinct
// values so callers can tell them apart.
const (
	EncodedEmpty   = 0
	EncodedInvalid = -1
)

// EncodePiece returns the bit-flag sum for a piece: Black=1, White=2,
// +4 if crowned.
func EncodePiece(p draughts.Piece) int {
	val := 0
	if p.Colour == draughts.Black {
		val += FlagBlack
	} else {
		val += FlagWhite
	}
	if p.Crowned {
		val += FlagCrown
	}
	return val
}

// EncodeColour returns the encoding of an un-crowned piece of the given
// colour, as used for the current-turn query.
func EncodeColour(c draughts.Colour) int {
	return EncodePiece(draughts.NewPiece(c))
}

// DecodePiece reverses EncodePiece. It reports false for the sentinels and
// for values that name no colour.
func DecodePiece(val int) (draughts.Piece, bool) {
	crowned := val&FlagCrown != 0
	switch val &^ FlagCrown {
	case FlagBlack:
		return draughts.Piece{Colour: draughts.Black, Crowned: crowned}, true
	case FlagWhite:
		return draughts.Piece{Colour: draughts.White, Crowned: crowned}, true
	}
	return draughts.Piece{}, false
}
