// Package session owns a rules engine on behalf of a host: it serialises
// access, records move history, and notifies observers of state changes.
// It replaces the process-global engine of the original boundary with an
// explicit value the host holds.
package session

import (
	"sync"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/encoding"
	"github.com/lgbarn/draughts-go/internal/engine"
)

// Observer receives state-change notifications. On a successful move,
// PieceMoved fires first; PieceCrowned follows only if the move promoted.
// Nothing fires for rejected moves. Observers are called with the session
// lock held and must not call back into the session.
type Observer interface {
	PieceMoved(fromX, fromY, toX, toY int)
	PieceCrowned(x, y int)
}

// MoveRecord is one applied move in a session's history.
type MoveRecord struct {
	Move     draughts.Move        `json:"move"`
	Crowned  bool                 `json:"crowned"`
	Captured *draughts.Coordinate `json:"captured,omitempty"`
}

// Session wraps an engine with a read/write lock, observers, and a move
// history. Reads may run concurrently; a move excludes everything else for
// its duration.
type Session struct {
	mu        sync.RWMutex
	eng       *engine.Engine
	observers []Observer
	history   []MoveRecord
}

// New creates a session over a freshly initialised engine.
func New() *Session {
	return &Session{eng: engine.New()}
}

// Restore creates a session from a saved snapshot and history.
func Restore(snap engine.Snapshot, history []MoveRecord) *Session {
	eng := engine.NewEmpty()
	eng.RestoreSnapshot(snap)
	s := &Session{eng: eng}
	s.history = append(s.history, history...)
	return s
}

// AddObserver registers an observer for subsequent moves.
func (s *Session) AddObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Move applies a move, returning the engine's result. On success the move
// is recorded and observers are notified in order.
func (s *Session) Move(move draughts.Move) (engine.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.eng.MovePiece(move)
	if err != nil {
		return engine.MoveResult{}, err
	}

	s.history = append(s.history, MoveRecord{
		Move:     result.Move,
		Crowned:  result.Crowned,
		Captured: result.Captured,
	})

	for _, o := range s.observers {
		o.PieceMoved(move.From.X, move.From.Y, move.To.X, move.To.Y)
		if result.Crowned {
			o.PieceCrowned(move.To.X, move.To.Y)
		}
	}
	return result, nil
}

// MovePiece is the numeric boundary form of Move: it returns 1 if the move
// was applied and 0 if it was rejected.
func (s *Session) MovePiece(fromX, fromY, toX, toY int) int {
	if _, err := s.Move(draughts.NewMove(fromX, fromY, toX, toY)); err != nil {
		return 0
	}
	return 1
}

// GetPiece returns the encoded piece at (x, y), encoding.EncodedEmpty for an
// empty square, or encoding.EncodedInvalid for an off-board coordinate.
func (s *Session) GetPiece(x, y int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	piece, ok, err := s.eng.PieceAt(draughts.Coordinate{X: x, Y: y})
	if err != nil {
		return encoding.EncodedInvalid
	}
	if !ok {
		return encoding.EncodedEmpty
	}
	return encoding.EncodePiece(piece)
}

// CurrentTurn returns the encoded colour of the side to move.
func (s *Session) CurrentTurn() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return encoding.EncodeColour(s.eng.CurrentTurn())
}

// LegalMoves returns the deterministic legal-move list for the side to move.
func (s *Session) LegalMoves() []draughts.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.LegalMoves()
}

// MoveCount returns the number of applied moves.
func (s *Session) MoveCount() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.MoveCount()
}

// Snapshot captures the current engine state.
func (s *Session) Snapshot() engine.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.Snapshot()
}

// History returns a copy of the applied-move history.
func (s *Session) History() []MoveRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MoveRecord, len(s.history))
	copy(out, s.history)
	return out
}
