// Package testutil provides shared test utilities for the draughts-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
)

// Placement names one piece for a constructed test position.
type Placement struct {
	X, Y    int
	Colour  draughts.Colour
	Crowned bool
}

// NewTestEngine builds an engine holding exactly the given pieces, with
// toMove set from the first argument. It calls t.Fatal on an invalid
// placement.
func NewTestEngine(t *testing.T, toMove draughts.Colour, placements ...Placement) *engine.Engine {
	t.Helper()

	eng := engine.NewEmpty()
	for _, p := range placements {
		piece := draughts.NewPiece(p.Colour)
		if p.Crowned {
			piece = draughts.Crown(piece)
		}
		coord := draughts.Coordinate{X: p.X, Y: p.Y}
		if err := eng.PlacePiece(coord, piece); err != nil {
			t.Fatalf("invalid test placement at (%d,%d): %v", p.X, p.Y, err)
		}
	}

	snap := eng.Snapshot()
	snap.ToMove = toMove
	eng.RestoreSnapshot(snap)
	return eng
}

// MustMove applies a move and calls t.Fatal if the engine rejects it.
func MustMove(t *testing.T, eng *engine.Engine, move draughts.Move) engine.MoveResult {
	t.Helper()

	result, err := eng.MovePiece(move)
	if err != nil {
		t.Fatalf("move %v rejected: %v", move, err)
	}
	return result
}
