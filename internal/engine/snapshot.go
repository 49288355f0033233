package engine

import "github.com/lgbarn/draughts-go/internal/draughts"

// Snapshot captures all mutable engine state for rendering, persistence,
// and save/restore. The board array holds deep copies of the pieces, so a
// snapshot is unaffected by later engine mutation.
type Snapshot struct {
	// Board[x][y]; nil means the square is empty.
	Board     [draughts.BoardSize][draughts.BoardSize]*draughts.Piece `json:"board"`
	ToMove    draughts.Colour                                         `json:"to_move"`
	MoveCount uint                                                    `json:"move_count"`
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		ToMove:    e.toMove,
		MoveCount: e.moveCount,
	}
	for x := 0; x < draughts.BoardSize; x++ {
		for y := 0; y < draughts.BoardSize; y++ {
			if p := e.board[x][y]; p != nil {
				piece := *p
				s.Board[x][y] = &piece
			}
		}
	}
	return s
}

// RestoreSnapshot restores the engine to a previously captured state.
func (e *Engine) RestoreSnapshot(s Snapshot) {
	for x := 0; x < draughts.BoardSize; x++ {
		for y := 0; y < draughts.BoardSize; y++ {
			if p := s.Board[x][y]; p != nil {
				piece := *p
				e.board[x][y] = &piece
			} else {
				e.board[x][y] = nil
			}
		}
	}
	e.toMove = s.ToMove
	e.moveCount = s.MoveCount
}
