package worker

import (
	"fmt"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
	"github.com/lgbarn/draughts-go/internal/errors"
)

// Replay replays a stored game's history through a fresh engine from the
// standard opening position and verifies the recorded snapshot matches the
// replayed one. Any divergence reports errors.ErrCorruptGame with the
// offending move in context.
func Replay(item WorkItem) ProcessResult {
	rec := item.Record
	result := ProcessResult{GameID: rec.ID, Index: item.Index}

	eng := engine.New()
	for i, mr := range rec.History {
		res, err := eng.MovePiece(mr.Move)
		if err != nil {
			result.Err = &errors.GameError{
				Err:      errors.ErrCorruptGame,
				GameID:   rec.ID,
				MoveNum:  i + 1,
				MoveText: formatMove(mr.Move),
			}
			return result
		}
		if res.Crowned != mr.Crowned || !capturesEqual(res.Captured, mr.Captured) {
			result.Err = &errors.GameError{
				Err:      errors.ErrCorruptGame,
				GameID:   rec.ID,
				MoveNum:  i + 1,
				MoveText: formatMove(mr.Move),
			}
			return result
		}
		result.Moves++
	}

	if !snapshotsEqual(eng.Snapshot(), rec.Snapshot) {
		result.Err = &errors.GameError{Err: errors.ErrCorruptGame, GameID: rec.ID}
	}
	return result
}

func formatMove(m draughts.Move) string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.From.X, m.From.Y, m.To.X, m.To.Y)
}

func capturesEqual(a, b *draughts.Coordinate) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func snapshotsEqual(a, b engine.Snapshot) bool {
	if a.ToMove != b.ToMove || a.MoveCount != b.MoveCount {
		return false
	}
	for x := 0; x < draughts.BoardSize; x++ {
		for y := 0; y < draughts.BoardSize; y++ {
			pa, pb := a.Board[x][y], b.Board[x][y]
			if (pa == nil) != (pb == nil) {
				return false
			}
			if pa != nil && *pa != *pb {
				return false
			}
		}
	}
	return true
}
